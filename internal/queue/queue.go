package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/onlook-dev/fixpack-pipeline/internal/metrics"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var ErrNotFound = errors.New("job not found")

// Job is one durable unit of work. A key identifies the logical job; while a job
// with that key is pending or active no second one is created.
type Job struct {
	ID          string
	Class       models.JobClass
	Key         string
	Payload     json.RawMessage
	Status      Status
	Attempt     int
	MaxAttempts int
	Reclaims    int
	RunAt       time.Time
	LockedAt    *time.Time
	LockedBy    string
	LastError   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FinishedAt  *time.Time
}

func (j *Job) Decode(v any) error {
	if err := json.Unmarshal(j.Payload, v); err != nil {
		return fmt.Errorf("decoding %s payload for job %s: %w", j.Class, j.ID, err)
	}
	return nil
}

// FinalAttempt reports whether a failure of the current attempt exhausts the job.
func (j *Job) FinalAttempt() bool {
	return j.Attempt >= j.MaxAttempts
}

type EnqueueOptions struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultMaxReclaims bounds how often one job may lose its worker before it is failed.
const DefaultMaxReclaims = 3

// Queue is a database-backed job queue shared by every pool.
type Queue struct {
	db  *sql.DB
	Now func() time.Time
	// MaxReclaims overrides DefaultMaxReclaims when positive.
	MaxReclaims int

	mu      sync.Mutex
	signals map[models.JobClass][]chan struct{}
}

func New(db *sql.DB) *Queue {
	return &Queue{db: db, signals: make(map[models.JobClass][]chan struct{})}
}

// Subscribe returns a channel that receives a token whenever a job of class is enqueued
// by this process, so pools can claim without waiting for their next poll. The returned
// func releases the subscription.
func (q *Queue) Subscribe(class models.JobClass) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	q.mu.Lock()
	if q.signals == nil {
		q.signals = make(map[models.JobClass][]chan struct{})
	}
	q.signals[class] = append(q.signals[class], ch)
	q.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() { q.unsubscribe(class, ch) })
	}
}

func (q *Queue) unsubscribe(class models.JobClass, ch chan struct{}) {
	q.mu.Lock()
	defer q.mu.Unlock()
	subs := q.signals[class]
	for i, c := range subs {
		if c == ch {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(q.signals, class)
		return
	}
	q.signals[class] = subs
}

func (q *Queue) signal(class models.JobClass) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, ch := range q.signals[class] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (q *Queue) now() time.Time {
	if q.Now != nil {
		return q.Now().UTC()
	}
	return time.Now().UTC()
}

const jobColumns = `id, class, idempotency_key, payload, status, attempt, max_attempts, run_at,
       locked_at, locked_by, last_error, created_at, updated_at, finished_at, reclaims`

// Enqueue inserts a job unless one with the same key is still pending or active, in which
// case the live job is returned unchanged.
func (q *Queue) Enqueue(ctx context.Context, class models.JobClass, key string, payload any, opts EnqueueOptions) (*Job, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", class, err)
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}

	// A live job can finish between the insert and the lookup; try again then.
	for i := 0; i < 3; i++ {
		now := q.now()
		id := uuid.NewString()
		res, err := q.db.ExecContext(ctx, `
INSERT INTO jobs (id, class, idempotency_key, payload, status, attempt, max_attempts, run_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 0, $6, $7, $8, $8)
ON CONFLICT (idempotency_key) WHERE status IN ('pending', 'active') DO NOTHING`,
			id, class, key, string(body), StatusPending, opts.MaxAttempts,
			formatTime(now.Add(opts.Delay)), formatTime(now))
		if err != nil {
			return nil, fmt.Errorf("enqueueing %s: %w", key, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if n == 1 {
			metrics.IncJobEnqueued(string(class), false)
			q.signal(class)
			return q.Get(ctx, id)
		}

		job, err := q.live(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err == nil {
			metrics.IncJobEnqueued(string(class), true)
		}
		return job, err
	}
	return nil, fmt.Errorf("enqueueing %s: live job kept changing", key)
}

func (q *Queue) Get(ctx context.Context, id string) (*Job, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading job %s: %w", id, err)
	}
	return job, nil
}

// Latest returns the most recent job for key in any status.
func (q *Queue) Latest(ctx context.Context, key string) (*Job, error) {
	row := q.db.QueryRowContext(ctx, `
SELECT `+jobColumns+` FROM jobs WHERE idempotency_key = $1
ORDER BY created_at DESC LIMIT 1`, key)
	job, err := scanJob(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading job %s: %w", key, err)
	}
	return job, nil
}

func (q *Queue) live(ctx context.Context, key string) (*Job, error) {
	row := q.db.QueryRowContext(ctx, `
SELECT `+jobColumns+` FROM jobs
WHERE idempotency_key = $1 AND status IN ('pending', 'active')`, key)
	job, err := scanJob(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading job %s: %w", key, err)
	}
	return job, nil
}

// Claim atomically moves the oldest due pending job of class to active and starts a new
// attempt. It returns nil when nothing is due.
func (q *Queue) Claim(ctx context.Context, class models.JobClass, worker string) (*Job, error) {
	now := formatTime(q.now())
	row := q.db.QueryRowContext(ctx, `
UPDATE jobs SET status = 'active', attempt = attempt + 1, locked_at = $1, locked_by = $2, updated_at = $1
WHERE id = (
    SELECT id FROM jobs
    WHERE class = $3 AND status = 'pending' AND run_at <= $1
    ORDER BY run_at, created_at
    LIMIT 1
) AND status = 'pending'
RETURNING `+jobColumns, now, worker, class)

	job, err := scanJob(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("claiming %s job: %w", class, err)
	}
	return job, nil
}

// Heartbeat extends the lease of an active job held by worker.
func (q *Queue) Heartbeat(ctx context.Context, job *Job, worker string) error {
	now := formatTime(q.now())
	_, err := q.db.ExecContext(ctx, `
UPDATE jobs SET locked_at = $1, updated_at = $1
WHERE id = $2 AND status = 'active' AND locked_by = $3`, now, job.ID, worker)
	if err != nil {
		return fmt.Errorf("heartbeat for job %s: %w", job.ID, err)
	}
	return nil
}

func (q *Queue) Complete(ctx context.Context, job *Job) error {
	now := formatTime(q.now())
	_, err := q.db.ExecContext(ctx, `
UPDATE jobs SET status = 'completed', locked_at = NULL, locked_by = NULL, updated_at = $1, finished_at = $1
WHERE id = $2 AND status = 'active'`, now, job.ID)
	if err != nil {
		return fmt.Errorf("completing job %s: %w", job.ID, err)
	}
	return nil
}

// Retry puts an active job back to pending, due after delay.
func (q *Queue) Retry(ctx context.Context, job *Job, cause error, delay time.Duration) error {
	now := q.now()
	_, err := q.db.ExecContext(ctx, `
UPDATE jobs SET status = 'pending', run_at = $1, last_error = $2, locked_at = NULL, locked_by = NULL, updated_at = $3
WHERE id = $4 AND status = 'active'`, formatTime(now.Add(delay)), errorText(cause), formatTime(now), job.ID)
	if err != nil {
		return fmt.Errorf("scheduling retry of job %s: %w", job.ID, err)
	}
	return nil
}

func (q *Queue) Fail(ctx context.Context, job *Job, cause error) error {
	now := formatTime(q.now())
	_, err := q.db.ExecContext(ctx, `
UPDATE jobs SET status = 'failed', last_error = $1, locked_at = NULL, locked_by = NULL, updated_at = $2, finished_at = $2
WHERE id = $3 AND status = 'active'`, errorText(cause), now, job.ID)
	if err != nil {
		return fmt.Errorf("failing job %s: %w", job.ID, err)
	}
	return nil
}

// Release hands an interrupted job back to pending without charging the attempt.
func (q *Queue) Release(ctx context.Context, job *Job) error {
	now := formatTime(q.now())
	_, err := q.db.ExecContext(ctx, `
UPDATE jobs SET status = 'pending', attempt = attempt - 1, run_at = $1, locked_at = NULL, locked_by = NULL, updated_at = $1
WHERE id = $2 AND status = 'active' AND attempt > 0`, now, job.ID)
	if err != nil {
		return fmt.Errorf("releasing job %s: %w", job.ID, err)
	}
	return nil
}

// Reclaimed reports one ReclaimExpired pass.
type Reclaimed struct {
	Requeued int64
	// Lost holds the jobs failed because they kept losing their worker.
	Lost []*Job
}

const errWorkerLost = "worker lost: lease expired"

// ReclaimExpired recovers active jobs whose lease is older than lease, as left behind by a
// crashed worker. Such jobs go back to pending without charging the attempt. A job that
// has already been reclaimed MaxReclaims times fails instead and is returned in Lost.
func (q *Queue) ReclaimExpired(ctx context.Context, lease time.Duration) (Reclaimed, error) {
	now := q.now()
	cutoff := formatTime(now.Add(-lease))
	stamp := formatTime(now)
	maxReclaims := q.MaxReclaims
	if maxReclaims <= 0 {
		maxReclaims = DefaultMaxReclaims
	}

	var out Reclaimed
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return Reclaimed{}, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
UPDATE jobs SET status = 'failed', last_error = $1, locked_at = NULL, locked_by = NULL,
    updated_at = $2, finished_at = $2
WHERE status = 'active' AND locked_at < $3 AND reclaims >= $4
RETURNING `+jobColumns, errWorkerLost, stamp, cutoff, maxReclaims)
	if err != nil {
		return Reclaimed{}, fmt.Errorf("failing lost jobs: %w", err)
	}
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			rows.Close()
			return Reclaimed{}, fmt.Errorf("scanning lost job: %w", err)
		}
		out.Lost = append(out.Lost, job)
	}
	if err := rows.Close(); err != nil {
		return Reclaimed{}, err
	}
	if err := rows.Err(); err != nil {
		return Reclaimed{}, fmt.Errorf("failing lost jobs: %w", err)
	}

	requeued, err := tx.ExecContext(ctx, `
UPDATE jobs SET status = 'pending', attempt = CASE WHEN attempt > 0 THEN attempt - 1 ELSE 0 END,
    reclaims = reclaims + 1, run_at = $1, last_error = 'lease expired', locked_at = NULL, locked_by = NULL,
    updated_at = $1
WHERE status = 'active' AND locked_at < $2`, stamp, cutoff)
	if err != nil {
		return Reclaimed{}, fmt.Errorf("requeueing expired jobs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Reclaimed{}, err
	}

	out.Requeued, _ = requeued.RowsAffected()
	for _, job := range out.Lost {
		metrics.IncJobFinished(string(job.Class), metrics.OutcomeFailed)
	}
	return out, nil
}

// Prune deletes finished jobs past their retention window.
func (q *Queue) Prune(ctx context.Context, completedRetention, failedRetention time.Duration) (int64, error) {
	now := q.now()
	res, err := q.db.ExecContext(ctx, `
DELETE FROM jobs
WHERE (status = 'completed' AND finished_at < $1)
   OR (status = 'failed' AND finished_at < $2)`,
		formatTime(now.Add(-completedRetention)), formatTime(now.Add(-failedRetention)))
	if err != nil {
		return 0, fmt.Errorf("pruning jobs: %w", err)
	}
	return res.RowsAffected()
}

// Counts returns the number of jobs per class and status.
func (q *Queue) Counts(ctx context.Context) (map[models.JobClass]map[Status]int, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT class, status, COUNT(*) FROM jobs GROUP BY class, status`)
	if err != nil {
		return nil, fmt.Errorf("counting jobs: %w", err)
	}
	defer rows.Close()

	out := make(map[models.JobClass]map[Status]int)
	for rows.Next() {
		var (
			class  models.JobClass
			status Status
			n      int
		)
		if err := rows.Scan(&class, &status, &n); err != nil {
			return nil, err
		}
		if out[class] == nil {
			out[class] = make(map[Status]int)
		}
		out[class][status] = n
	}
	return out, rows.Err()
}

type scanFunc func(dest ...any) error

func scanJob(scan scanFunc) (*Job, error) {
	var (
		job                  Job
		payload, runAt       string
		createdAt, updatedAt string
		lockedAt, finishedAt sql.NullString
		lockedBy, lastError  sql.NullString
	)
	err := scan(
		&job.ID, &job.Class, &job.Key, &payload, &job.Status, &job.Attempt, &job.MaxAttempts,
		&runAt, &lockedAt, &lockedBy, &lastError, &createdAt, &updatedAt, &finishedAt, &job.Reclaims,
	)
	if err != nil {
		return nil, err
	}

	job.Payload = json.RawMessage(payload)
	job.RunAt = parseTime(runAt)
	job.LockedAt = timePtr(lockedAt)
	job.LockedBy = lockedBy.String
	job.LastError = lastError.String
	job.CreatedAt = parseTime(createdAt)
	job.UpdatedAt = parseTime(updatedAt)
	job.FinishedAt = timePtr(finishedAt)
	return &job, nil
}

const timeLayout = "2006-01-02T15:04:05.000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func timePtr(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t := parseTime(s.String)
	return &t
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
