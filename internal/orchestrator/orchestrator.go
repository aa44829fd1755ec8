// Package orchestrator drives apply runs from a queued fix pack to a terminal CI verdict.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

const (
	DefaultBranchPrefix = "cynthia/fix"
	DefaultRepairLabel  = "agent:repair"
)

type FixPackStore interface {
	Get(ctx context.Context, id string) (*models.FixPack, error)
	MarkApplied(ctx context.Context, id string, at time.Time) error
}

// StatusRecorder persists run transitions. UpdateStatus must reject transitions the
// run's current status does not allow.
type StatusRecorder interface {
	Get(ctx context.Context, id string) (*models.ApplyRun, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplyRunStatus, upd models.StatusUpdate) error
}

type JobEnqueuer interface {
	Enqueue(ctx context.Context, class models.JobClass, key string, payload any, opts queue.EnqueueOptions) (*queue.Job, error)
}

// BranchName is derived from the run alone so every attempt of a run targets the same branch.
func BranchName(prefix string, t models.FixPackType, createdAt time.Time) string {
	if prefix == "" {
		prefix = DefaultBranchPrefix
	}
	return fmt.Sprintf("%s-%s-%d", prefix, t, createdAt.UnixMilli())
}

// runLog collects entries for the run's durable log and mirrors them to slog.
type runLog struct {
	logger  *slog.Logger
	now     func() time.Time
	entries []models.LogEntry
}

func newRunLog(logger *slog.Logger, now func() time.Time) *runLog {
	return &runLog{logger: logger, now: now}
}

func (l *runLog) add(level models.LogLevel, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.entries = append(l.entries, models.LogEntry{Timestamp: l.now().UTC(), Level: level, Message: msg})

	switch level {
	case models.LogError:
		l.logger.Error(msg)
	case models.LogWarn:
		l.logger.Warn(msg)
	default:
		l.logger.Info(msg)
	}
}

func (l *runLog) infof(format string, args ...any) { l.add(models.LogInfo, format, args...) }
func (l *runLog) warnf(format string, args ...any) { l.add(models.LogWarn, format, args...) }
func (l *runLog) errorf(format string, args ...any) { l.add(models.LogError, format, args...) }

func (l *runLog) flush() []models.LogEntry {
	out := l.entries
	l.entries = nil
	return out
}

// tracker writes one run's transitions, holding the last persisted status so
// re-entering an earlier step on retry only appends logs.
type tracker struct {
	runs   StatusRecorder
	run    *models.ApplyRun
	log    *runLog
	logger *slog.Logger
}

func (t *tracker) advance(ctx context.Context, status models.ApplyRunStatus, upd models.StatusUpdate) error {
	target := status
	if t.run.Status.Reached(status) {
		target = t.run.Status
	}
	upd.Logs = append(upd.Logs, t.log.flush()...)

	if err := t.runs.UpdateStatus(ctx, t.run.ID, target, upd); err != nil {
		return fmt.Errorf("recording status %s: %w", target, err)
	}
	t.run.Status = target
	if upd.Branch != nil {
		t.run.Branch = upd.Branch
	}
	if upd.PRNumber != nil {
		t.run.PRNumber = upd.PRNumber
		t.run.PRURL = upd.PRURL
	}
	return nil
}

// note appends pending log entries without changing status.
func (t *tracker) note(ctx context.Context) {
	if len(t.log.entries) == 0 {
		return
	}
	if err := t.runs.UpdateStatus(ctx, t.run.ID, t.run.Status, models.StatusUpdate{Logs: t.log.flush()}); err != nil {
		t.logger.Warn("appending run log failed", "error", err)
	}
}

// fail moves the run to failed with cause recorded. It uses a context that survives
// cancellation of the job so the verdict is not lost.
func (t *tracker) fail(ctx context.Context, cause error) error {
	msg := cause.Error()
	t.log.errorf("%s", msg)

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	err := t.runs.UpdateStatus(writeCtx, t.run.ID, models.StatusFailed, models.StatusUpdate{
		Error: &msg,
		Logs:  t.log.flush(),
	})
	if err != nil {
		return fmt.Errorf("recording failure: %w", err)
	}
	t.run.Status = models.StatusFailed
	t.run.Error = &msg
	return nil
}

var (
	errOwnership   = errors.New("fix pack does not belong to the requesting user")
	errRunMismatch = errors.New("job payload does not match apply run")
)
