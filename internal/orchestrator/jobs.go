package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/metrics"
	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

// ApplyHandler adapts the orchestrator to the apply job class.
func ApplyHandler(o *Orchestrator) queue.Handler {
	return func(ctx context.Context, job *queue.Job) error {
		var payload models.ApplyJobPayload
		if err := job.Decode(&payload); err != nil {
			return queue.Permanent(err)
		}
		return o.Apply(ctx, payload, Attempt{Number: job.Attempt, Max: job.MaxAttempts})
	}
}

type MonitorSettings struct {
	PollAttempts int
	PollInterval time.Duration
}

// MonitorHandler adapts the CI monitor to the monitor job class.
func MonitorHandler(m *Monitor, settings MonitorSettings) queue.Handler {
	return func(ctx context.Context, job *queue.Job) error {
		var payload models.MonitorJobPayload
		if err := job.Decode(&payload); err != nil {
			return queue.Permanent(err)
		}
		return m.MonitorChecks(ctx, MonitorRequest{
			ApplyRunID:     payload.ApplyRunID,
			UserID:         payload.UserID,
			RepoOwner:      payload.RepoOwner,
			RepoName:       payload.RepoName,
			PRNumber:       payload.PRNumber,
			Branch:         payload.Branch,
			InstallationID: payload.InstallationID,
			MaxAttempts:    settings.PollAttempts,
			PollInterval:   settings.PollInterval,
		})
	}
}

// LostJobHandler fails the apply run behind a job the queue gave up on after its workers
// kept disappearing. Without it the run would sit in a non-terminal status forever.
func LostJobHandler(runs StatusRecorder, logger *slog.Logger) func(context.Context, *queue.Job) error {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, job *queue.Job) error {
		var ref struct {
			ApplyRunID string `json:"applyRunId"`
		}
		if err := job.Decode(&ref); err != nil {
			return err
		}
		if ref.ApplyRunID == "" {
			return nil
		}

		run, err := runs.Get(ctx, ref.ApplyRunID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading apply run %s: %w", ref.ApplyRunID, err)
		}
		if run.Status.Terminal() {
			return nil
		}

		runLogger := logger.With("apply_run", run.ID, "job", job.ID)
		t := &tracker{runs: runs, run: run, log: newRunLog(runLogger, time.Now), logger: runLogger}
		cause := fmt.Errorf("worker lost: %s job stopped reporting %d times", job.Class, job.Reclaims+1)
		if err := t.fail(ctx, cause); err != nil {
			var transition *store.TransitionError
			if errors.As(err, &transition) {
				return nil
			}
			return err
		}
		metrics.IncApplyRunFinished(string(models.StatusFailed))
		return nil
	}
}
