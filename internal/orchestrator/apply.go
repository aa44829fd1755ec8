package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
	"github.com/onlook-dev/fixpack-pipeline/internal/metrics"
	"github.com/onlook-dev/fixpack-pipeline/internal/patch"
	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/service"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

// Attempt tells the orchestrator where a job stands in its retry budget.
type Attempt struct {
	Number int
	Max    int
}

func (a Attempt) Final() bool {
	return a.Max <= 0 || a.Number >= a.Max
}

type Config struct {
	BranchPrefix string
	// MonitorMaxAttempts is the queue-level attempt budget of the monitor job.
	MonitorMaxAttempts int
}

type Orchestrator struct {
	fixPacks FixPackStore
	runs     StatusRecorder
	jobs     JobEnqueuer
	hosting  service.Factory
	cfg      Config
	logger   *slog.Logger
	now      func() time.Time
}

func New(fixPacks FixPackStore, runs StatusRecorder, jobs JobEnqueuer, hosting service.Factory, cfg Config, logger *slog.Logger) *Orchestrator {
	if cfg.MonitorMaxAttempts <= 0 {
		cfg.MonitorMaxAttempts = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		fixPacks: fixPacks,
		runs:     runs,
		jobs:     jobs,
		hosting:  hosting,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Apply takes a run from queued to checks_running and hands it to the CI monitor.
//
// Errors that cannot succeed on retry, and any error on the final attempt, move the
// run to failed and come back wrapped in queue.Permanent. Other errors are returned
// as is so the queue retries the whole sequence; every step is safe to repeat.
// When ctx is cancelled the run is left untouched for the next attempt.
func (o *Orchestrator) Apply(ctx context.Context, req models.ApplyJobPayload, attempt Attempt) error {
	logger := o.logger.With("apply_run_id", req.ApplyRunID, "attempt", attempt.Number)

	run, err := o.runs.Get(ctx, req.ApplyRunID)
	if errors.Is(err, store.ErrNotFound) {
		return queue.Permanent(fmt.Errorf("apply run %s: %w", req.ApplyRunID, err))
	}
	if err != nil {
		return fmt.Errorf("loading apply run: %w", err)
	}

	t := &tracker{runs: o.runs, run: run, log: newRunLog(logger, o.now), logger: logger}

	switch {
	case run.Status.Terminal():
		logger.Info("apply run already finished", "status", run.Status)
		return nil
	case run.Status.Reached(models.StatusChecksRunning):
		// An earlier attempt got this far; only the monitor hand-off may be missing.
		return o.settle(ctx, t, attempt, o.enqueueMonitor(ctx, req, run))
	}

	if run.UserID != req.UserID || run.FixPackID != req.FixPackID {
		return o.settle(ctx, t, attempt, queue.Permanent(errRunMismatch))
	}

	return o.settle(ctx, t, attempt, o.apply(ctx, t, req, attempt))
}

func (o *Orchestrator) apply(ctx context.Context, t *tracker, req models.ApplyJobPayload, attempt Attempt) error {
	run := t.run

	fp, err := o.fixPacks.Get(ctx, req.FixPackID)
	if errors.Is(err, store.ErrNotFound) {
		return queue.Permanent(fmt.Errorf("fix pack %s not found", req.FixPackID))
	}
	if err != nil {
		return fmt.Errorf("loading fix pack: %w", err)
	}
	if fp.UserID != req.UserID {
		return queue.Permanent(errOwnership)
	}
	if len(fp.PatchPreview.Diffs) == 0 {
		return queue.Permanent(fmt.Errorf("fix pack %s has no diffs", fp.ID))
	}

	if attempt.Number > 1 {
		t.log.infof("Retrying apply (attempt %d of %d)", attempt.Number, attempt.Max)
	}
	t.log.infof("Applying fix pack %q to %s", fp.Title, run.FullName())
	if err := t.advance(ctx, models.StatusRunning, models.StatusUpdate{}); err != nil {
		return err
	}

	svcs, err := o.hosting.ForInstallation(ctx, req.InstallationID)
	if errors.Is(err, github.ErrNoCredential) {
		return queue.Permanent(err)
	}
	if err != nil {
		return fmt.Errorf("connecting to GitHub: %w", err)
	}

	owner, repo := req.RepoOwner, req.RepoName

	base, err := svcs.Repos.DefaultBranch(ctx, owner, repo)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(fp.PatchPreview.Diffs))
	for _, d := range fp.PatchPreview.Diffs {
		files = append(files, d.File)
	}
	missing, err := svcs.Repos.MissingPaths(ctx, owner, repo, base, files)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return queue.Permanent(fmt.Errorf("files not found in %s@%s: %s", run.FullName(), base, strings.Join(missing, ", ")))
	}

	// Step 1: branch.
	name := BranchName(o.cfg.BranchPrefix, fp.Type, run.CreatedAt)
	branch, err := svcs.Branches.Prepare(ctx, owner, repo, name, base)
	if err != nil {
		return err
	}
	if branch.Reset {
		t.log.infof("Reset existing branch %s to %s", name, base)
	} else {
		t.log.infof("Created branch %s from %s", name, base)
	}
	if err := t.advance(ctx, models.StatusBranchCreated, models.StatusUpdate{Branch: &name}); err != nil {
		return err
	}

	// Step 2: patches, strictly in order.
	for i, diff := range fp.PatchPreview.Diffs {
		if err := svcs.Patches.ApplyDiff(ctx, owner, repo, name, diff); err != nil {
			var safety *patch.SafetyError
			if errors.As(err, &safety) {
				return queue.Permanent(fmt.Errorf("%s: %w", diff.File, safety))
			}
			return err
		}
		t.log.infof("Patched %s (%d/%d)", diff.File, i+1, len(fp.PatchPreview.Diffs))
	}
	t.note(ctx)

	// Step 3: pull request.
	pr, err := svcs.PRs.Open(ctx, owner, repo, fp, name, base)
	if err != nil {
		return err
	}
	if pr.Reused {
		t.log.infof("Reusing open pull request #%d", pr.Number)
	} else {
		t.log.infof("Opened pull request #%d", pr.Number)
	}
	if err := t.advance(ctx, models.StatusPROpened, models.StatusUpdate{PRNumber: &pr.Number, PRURL: &pr.URL}); err != nil {
		return err
	}

	// Step 4.
	if err := o.fixPacks.MarkApplied(ctx, fp.ID, o.now().UTC()); err != nil {
		return fmt.Errorf("marking fix pack applied: %w", err)
	}

	// Step 5.
	t.log.infof("Waiting for CI checks on pull request #%d", pr.Number)
	if err := t.advance(ctx, models.StatusChecksRunning, models.StatusUpdate{}); err != nil {
		return err
	}

	return o.enqueueMonitor(ctx, req, run)
}

func (o *Orchestrator) enqueueMonitor(ctx context.Context, req models.ApplyJobPayload, run *models.ApplyRun) error {
	if run.PRNumber == nil || run.Branch == nil {
		return queue.Permanent(fmt.Errorf("apply run %s reached checks_running without a pull request", run.ID))
	}

	payload := models.MonitorJobPayload{
		ApplyRunID:     run.ID,
		UserID:         run.UserID,
		RepoOwner:      req.RepoOwner,
		RepoName:       req.RepoName,
		PRNumber:       *run.PRNumber,
		Branch:         *run.Branch,
		InstallationID: req.InstallationID,
	}
	_, err := o.jobs.Enqueue(ctx, models.JobClassMonitor, models.MonitorJobKey(run.ID), payload, queue.EnqueueOptions{
		MaxAttempts: o.cfg.MonitorMaxAttempts,
	})
	if err != nil {
		return fmt.Errorf("enqueueing CI monitor: %w", err)
	}
	return nil
}

// settle decides what an apply error means for the run.
func (o *Orchestrator) settle(ctx context.Context, t *tracker, attempt Attempt, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil && !queue.IsPermanent(err) {
		t.logger.Warn("apply interrupted", "error", err)
		return err
	}

	var transition *store.TransitionError
	if errors.As(err, &transition) {
		// Someone else moved the run; its status is authoritative.
		t.logger.Warn("apply run changed underneath us", "error", err)
		return queue.Permanent(err)
	}

	if !queue.IsPermanent(err) && !attempt.Final() {
		t.log.warnf("Attempt %d failed, will retry: %v", attempt.Number, err)
		t.note(ctx)
		return err
	}

	cause := err
	var perm *queue.PermanentError
	if errors.As(err, &perm) {
		cause = perm.Err
	}
	if ferr := t.fail(ctx, cause); ferr != nil {
		t.logger.Error("persisting failed status failed", "error", ferr)
		return queue.Permanent(errors.Join(cause, ferr))
	}
	metrics.IncApplyRunFinished(string(models.StatusFailed))
	return queue.Permanent(cause)
}
