package queue

import (
	"context"
	"log/slog"
	"time"
)

type JanitorConfig struct {
	Interval           time.Duration
	Lease              time.Duration
	CompletedRetention time.Duration
	FailedRetention    time.Duration
	// OnLost is called for each job failed because its workers kept disappearing,
	// so whatever the job was driving can be finished too.
	OnLost func(ctx context.Context, job *Job) error
}

// RunJanitor periodically reclaims expired leases and prunes finished jobs until ctx ends.
func RunJanitor(ctx context.Context, q *Queue, cfg JanitorConfig, logger *slog.Logger) error {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		Sweep(ctx, q, cfg, logger)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Sweep runs one reclaim and prune pass.
func Sweep(ctx context.Context, q *Queue, cfg JanitorConfig, logger *slog.Logger) {
	if cfg.Lease > 0 {
		res, err := q.ReclaimExpired(ctx, cfg.Lease)
		if err != nil {
			logger.Error("reclaiming expired jobs failed", "error", err)
		} else if res.Requeued > 0 {
			logger.Warn("requeued jobs with expired leases", "count", res.Requeued)
		}
		for _, job := range res.Lost {
			logger.Error("job failed after losing its worker too often", "job", job.ID, "class", job.Class, "reclaims", job.Reclaims)
			if cfg.OnLost == nil {
				continue
			}
			if err := cfg.OnLost(ctx, job); err != nil {
				logger.Error("finishing work of lost job failed", "job", job.ID, "error", err)
			}
		}
	}

	if cfg.CompletedRetention > 0 && cfg.FailedRetention > 0 {
		n, err := q.Prune(ctx, cfg.CompletedRetention, cfg.FailedRetention)
		if err != nil {
			logger.Error("pruning jobs failed", "error", err)
		} else if n > 0 {
			logger.Info("pruned finished jobs", "count", n)
		}
	}
}
