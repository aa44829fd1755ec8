package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/metrics"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

// Handler processes one claimed job. Returning nil completes the job; returning an error
// schedules a retry unless the error is Permanent or the attempt was the last one.
type Handler func(ctx context.Context, job *Job) error

type PoolConfig struct {
	Class           models.JobClass
	Concurrency     int
	Backoff         Backoff
	PollInterval    time.Duration
	Lease           time.Duration
	ShutdownTimeout time.Duration
	WorkerID        string
}

// Pool runs a fixed number of concurrent handlers for one job class.
type Pool struct {
	queue   *Queue
	cfg     PoolConfig
	handler Handler
	logger  *slog.Logger
}

func NewPool(q *Queue, cfg PoolConfig, handler Handler, logger *slog.Logger) *Pool {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.WorkerID == "" {
		host, _ := os.Hostname()
		cfg.WorkerID = fmt.Sprintf("%s-%d-%s", host, os.Getpid(), cfg.Class)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		queue:   q,
		cfg:     cfg,
		handler: handler,
		logger:  logger.With("class", string(cfg.Class)),
	}
}

// Run claims and executes jobs until ctx is cancelled. It then stops claiming, waits up to
// ShutdownTimeout for in-flight jobs, cancels the rest and hands them back to the queue.
func (p *Pool) Run(ctx context.Context) error {
	sem := make(chan struct{}, p.cfg.Concurrency)
	var wg sync.WaitGroup

	jobCtx, cancelJobs := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelJobs()

	wake, unsubscribe := p.queue.Subscribe(p.cfg.Class)
	defer unsubscribe()
	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	p.logger.Info("worker pool started", "concurrency", p.cfg.Concurrency, "worker", p.cfg.WorkerID)

pollLoop:
	for {
		p.dispatch(ctx, jobCtx, sem, &wg)

		select {
		case <-ctx.Done():
			break pollLoop
		case <-ticker.C:
		case <-wake:
		}
	}

	p.logger.Info("shutdown requested, waiting for in-flight jobs", "timeout", p.cfg.ShutdownTimeout)
	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(p.cfg.ShutdownTimeout):
		p.logger.Warn("shutdown timeout reached; interrupting in-flight jobs")
		cancelJobs()
		<-waitDone
	}
	return nil
}

// dispatch fills free slots with due jobs.
func (p *Pool) dispatch(ctx, jobCtx context.Context, sem chan struct{}, wg *sync.WaitGroup) {
	for ctx.Err() == nil {
		select {
		case sem <- struct{}{}:
		default:
			return
		}

		job, err := p.queue.Claim(ctx, p.cfg.Class, p.cfg.WorkerID)
		if err != nil || job == nil {
			<-sem
			if err != nil && ctx.Err() == nil {
				p.logger.Error("claim failed", "error", err)
			}
			return
		}

		metrics.IncJobClaimed(string(p.cfg.Class))
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			p.execute(jobCtx, job)
		}()
	}
}

func (p *Pool) execute(ctx context.Context, job *Job) {
	logger := p.logger.With("job_id", job.ID, "key", job.Key, "attempt", job.Attempt)
	logger.Info("job started")

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	go p.heartbeat(hbCtx, job, logger)

	start := time.Now()
	err := p.invoke(ctx, job)
	stopHeartbeat()
	metrics.ObserveJobDuration(time.Since(start))

	bookkeeping, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	class := string(p.cfg.Class)
	switch {
	case err == nil:
		if cerr := p.queue.Complete(bookkeeping, job); cerr != nil {
			logger.Error("recording completion failed", "error", cerr)
		}
		metrics.IncJobFinished(class, metrics.OutcomeCompleted)
		logger.Info("job completed", "duration", time.Since(start))

	case ctx.Err() != nil && !IsPermanent(err):
		if rerr := p.queue.Release(bookkeeping, job); rerr != nil {
			logger.Error("releasing interrupted job failed", "error", rerr)
		}
		metrics.IncJobFinished(class, metrics.OutcomeInterrupted)
		logger.Warn("job interrupted by shutdown", "error", err)

	case IsPermanent(err) || job.FinalAttempt():
		if ferr := p.queue.Fail(bookkeeping, job, err); ferr != nil {
			logger.Error("recording failure failed", "error", ferr)
		}
		metrics.IncJobFinished(class, metrics.OutcomeFailed)
		logger.Error("job failed", "error", err, "permanent", IsPermanent(err))

	default:
		delay := p.cfg.Backoff.Delay(job.Attempt)
		if rerr := p.queue.Retry(bookkeeping, job, err, delay); rerr != nil {
			logger.Error("scheduling retry failed", "error", rerr)
		}
		metrics.IncJobFinished(class, metrics.OutcomeRetried)
		logger.Warn("job failed, will retry", "error", err, "delay", delay)
	}
}

// invoke runs the handler, turning a panic into a permanent failure.
func (p *Pool) invoke(ctx context.Context, job *Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("handler panic", "job_id", job.ID, "panic", r, "stack", string(debug.Stack()))
			err = Permanent(fmt.Errorf("handler panic: %v", r))
		}
	}()
	if p.handler == nil {
		return Permanent(errors.New("no handler registered"))
	}
	return p.handler(ctx, job)
}

func (p *Pool) heartbeat(ctx context.Context, job *Job, logger *slog.Logger) {
	if p.cfg.Lease <= 0 {
		return
	}
	interval := p.cfg.Lease / 3
	if interval <= 0 {
		interval = p.cfg.Lease
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.queue.Heartbeat(ctx, job, p.cfg.WorkerID); err != nil && ctx.Err() == nil {
				logger.Warn("heartbeat failed", "error", err)
			}
		}
	}
}
