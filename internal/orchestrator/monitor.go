package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/metrics"
	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/service"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

const (
	DefaultPollAttempts = 60
	DefaultPollInterval = 20 * time.Second
)

type MonitorRequest struct {
	ApplyRunID     string
	UserID         string
	RepoOwner      string
	RepoName       string
	PRNumber       int
	Branch         string
	InstallationID string
	MaxAttempts    int
	PollInterval   time.Duration
}

type Monitor struct {
	runs    StatusRecorder
	hosting service.Factory
	waiter  Waiter
	logger  *slog.Logger
	now     func() time.Time
}

func NewMonitor(runs StatusRecorder, hosting service.Factory, waiter Waiter, logger *slog.Logger) *Monitor {
	if waiter == nil {
		waiter = PollWaiter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		runs:    runs,
		hosting: hosting,
		waiter:  waiter,
		logger:  logger,
		now:     time.Now,
	}
}

type pollResult struct {
	sha     string
	summary models.CheckRunSummary
	err     error
}

// MonitorChecks polls the pull request's checks until they resolve or the attempt
// budget runs out. Each attempt is one full PollInterval, so the run times out after
// MaxAttempts x PollInterval however many check events arrive. The head SHA is looked
// up on every poll, so a force-push moves evaluation to the new commit without
// resetting the budget.
//
// On failure the repair label is added once and one more poll is made to observe
// the result; the run stays failed whatever that poll shows.
func (m *Monitor) MonitorChecks(ctx context.Context, req MonitorRequest) error {
	if req.MaxAttempts <= 0 {
		req.MaxAttempts = DefaultPollAttempts
	}
	if req.PollInterval <= 0 {
		req.PollInterval = DefaultPollInterval
	}
	logger := m.logger.With("apply_run_id", req.ApplyRunID, "pr", req.PRNumber)

	run, err := m.runs.Get(ctx, req.ApplyRunID)
	if errors.Is(err, store.ErrNotFound) {
		return queue.Permanent(fmt.Errorf("apply run %s: %w", req.ApplyRunID, err))
	}
	if err != nil {
		return fmt.Errorf("loading apply run: %w", err)
	}
	t := &tracker{runs: m.runs, run: run, log: newRunLog(logger, m.now), logger: logger}

	if run.Status.Terminal() {
		logger.Info("apply run already finished", "status", run.Status)
		return nil
	}
	if run.Status != models.StatusChecksRunning {
		return queue.Permanent(fmt.Errorf("apply run %s is %s, not %s", run.ID, run.Status, models.StatusChecksRunning))
	}
	if run.UserID != req.UserID {
		return queue.Permanent(errRunMismatch)
	}

	svcs, err := m.hosting.ForInstallation(ctx, req.InstallationID)
	if err != nil {
		cause := fmt.Errorf("connecting to GitHub: %w", err)
		if ferr := m.finish(ctx, t, cause); ferr != nil {
			return ferr
		}
		return queue.Permanent(cause)
	}

	target := WaitTarget{Owner: req.RepoOwner, Repo: req.RepoName, PRNumber: req.PRNumber}

	for attempt := 1; attempt <= req.MaxAttempts; attempt++ {
		if done, err := m.evaluate(ctx, t, svcs, req, &target, attempt); done {
			return err
		}
		if attempt == req.MaxAttempts {
			break
		}
		if done, err := m.wait(ctx, t, svcs, req, &target, attempt); done {
			return err
		}
	}

	timeout := time.Duration(req.MaxAttempts) * req.PollInterval
	return m.finish(ctx, t, fmt.Errorf("CI monitoring timed out after %d attempts (%s)", req.MaxAttempts, timeout))
}

// evaluate polls once and settles the run when the checks have resolved.
func (m *Monitor) evaluate(ctx context.Context, t *tracker, svcs *service.Services, req MonitorRequest, target *WaitTarget, attempt int) (bool, error) {
	res := m.poll(ctx, svcs, req)
	if ctx.Err() != nil {
		return true, ctx.Err()
	}
	if res.sha != "" {
		target.SHA = res.sha
	}

	switch {
	case res.err != nil:
		t.log.warnf("Checking CI status failed (attempt %d/%d): %v", attempt, req.MaxAttempts, res.err)
		t.note(ctx)
	case !res.summary.AllCompleted:
		t.logger.Debug("checks pending", "attempt", attempt, "sha", res.sha, "status", res.summary.Status, "total", res.summary.Total)
	case !res.summary.AnyFailures:
		t.log.infof("All %d CI checks passed on %s", res.summary.Total, shortSHA(res.sha))
		if err := t.advance(ctx, models.StatusSuccess, models.StatusUpdate{}); err != nil {
			return true, m.lost(t, err)
		}
		metrics.IncApplyRunFinished(string(models.StatusSuccess))
		return true, nil
	default:
		return true, m.repair(ctx, t, svcs, req, *target)
	}
	return false, nil
}

// wait spends one poll interval. The first check event inside the interval buys one
// extra poll that is not charged to the budget; the rest of the interval is slept
// through regardless of further events.
func (m *Monitor) wait(ctx context.Context, t *tracker, svcs *service.Services, req MonitorRequest, target *WaitTarget, attempt int) (bool, error) {
	deadline := m.now().Add(req.PollInterval)

	woken, err := m.waiter.Wait(ctx, *target, req.PollInterval)
	if err != nil {
		return true, err
	}
	if !woken {
		return false, nil
	}

	if done, err := m.evaluate(ctx, t, svcs, req, target, attempt); done {
		return true, err
	}
	if _, err := (PollWaiter{}).Wait(ctx, *target, deadline.Sub(m.now())); err != nil {
		return true, err
	}
	return false, nil
}

func (m *Monitor) poll(ctx context.Context, svcs *service.Services, req MonitorRequest) pollResult {
	sha, err := svcs.PRs.HeadSHA(ctx, req.RepoOwner, req.RepoName, req.PRNumber)
	if err != nil {
		return pollResult{err: err}
	}
	summary, err := svcs.Checks.Summary(ctx, req.RepoOwner, req.RepoName, sha)
	return pollResult{sha: sha, summary: summary, err: err}
}

// repair records the CI failure, sends the repair signal once and makes one
// observation poll.
func (m *Monitor) repair(ctx context.Context, t *tracker, svcs *service.Services, req MonitorRequest, target WaitTarget) error {
	if err := t.fail(ctx, errors.New("CI checks failed")); err != nil {
		return m.lost(t, err)
	}
	metrics.IncApplyRunFinished(string(models.StatusFailed))

	added, err := svcs.Repair.Signal(ctx, req.RepoOwner, req.RepoName, req.PRNumber)
	switch {
	case err != nil:
		t.log.warnf("Could not request automated repair: %v", err)
	case added:
		metrics.IncRepairLabelAdded()
		t.log.infof("Added %s label to pull request #%d", svcs.Repair.Label(), req.PRNumber)
	default:
		t.log.infof("Repair already requested on pull request #%d", req.PRNumber)
	}
	t.note(ctx)

	if _, err := m.waiter.Wait(ctx, target, req.PollInterval); err != nil {
		return nil
	}

	res := m.poll(ctx, svcs, req)
	switch {
	case res.err != nil:
		t.log.warnf("Post-repair check failed: %v", res.err)
	case !res.summary.AllCompleted:
		t.log.infof("Post-repair checks on %s still %s", shortSHA(res.sha), res.summary.Status)
	default:
		t.log.infof("Post-repair checks on %s concluded %s", shortSHA(res.sha), res.summary.Conclusion)
	}
	t.note(context.WithoutCancel(ctx))
	return nil
}

// finish records a failure the monitor cannot recover from.
func (m *Monitor) finish(ctx context.Context, t *tracker, cause error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := t.fail(ctx, cause); err != nil {
		return m.lost(t, err)
	}
	metrics.IncApplyRunFinished(string(models.StatusFailed))
	return nil
}

// lost handles a status write that did not land. A rejected transition means the
// run was finished elsewhere, which is not a monitor failure.
func (m *Monitor) lost(t *tracker, err error) error {
	var transition *store.TransitionError
	if errors.As(err, &transition) {
		t.logger.Warn("apply run changed underneath monitor", "error", err)
		return nil
	}
	return err
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
