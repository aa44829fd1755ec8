package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/models"
)

// ApplyRuns is the durable status recorder for apply runs.
type ApplyRuns struct {
	DB  *sql.DB
	Now func() time.Time
}

func (r *ApplyRuns) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *ApplyRuns) Create(ctx context.Context, run *models.ApplyRun) error {
	if run.Status == "" {
		run.Status = models.StatusQueued
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = r.now()
	}
	run.UpdatedAt = run.CreatedAt

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO apply_runs (id, user_id, audit_id, fix_pack_id, repo_owner, repo_name,
                        installation_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		run.ID, run.UserID, run.AuditID, run.FixPackID, run.RepoOwner, run.RepoName,
		run.InstallationID, run.Status, formatTime(run.CreatedAt), formatTime(run.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("creating apply run %s: %w", run.ID, err)
	}

	if err := appendLogs(ctx, tx, run.ID, run.Logs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ApplyRuns) Get(ctx context.Context, id string) (*models.ApplyRun, error) {
	row := r.DB.QueryRowContext(ctx, `
SELECT id, user_id, audit_id, fix_pack_id, repo_owner, repo_name, installation_id,
       status, branch, pr_number, pr_url, error, created_at, updated_at
FROM apply_runs WHERE id = $1`, id)

	run, err := scanApplyRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading apply run %s: %w", id, err)
	}

	rows, err := r.DB.QueryContext(ctx, `
SELECT ts, level, message FROM apply_run_logs WHERE run_id = $1 ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("loading apply run logs %s: %w", id, err)
	}
	defer rows.Close()

	run.Logs = []models.LogEntry{}
	for rows.Next() {
		var (
			entry models.LogEntry
			ts    string
		)
		if err := rows.Scan(&ts, &entry.Level, &entry.Message); err != nil {
			return nil, fmt.Errorf("scanning apply run log: %w", err)
		}
		entry.Timestamp = parseTime(ts)
		run.Logs = append(run.Logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return run, nil
}

// UpdateStatus moves a run to status and appends the given log entries in one transaction.
// The write only lands if the stored status may legally precede the target, so concurrent
// writers can never move a run backwards or out of a terminal state. Writing the current
// status again only appends logs.
func (r *ApplyRuns) UpdateStatus(ctx context.Context, id string, status models.ApplyRunStatus, upd models.StatusUpdate) error {
	if !status.Valid() {
		return fmt.Errorf("unknown apply run status %q", status)
	}
	preds := models.Predecessors(status)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	args := []any{status, nullString(upd.Branch), nullInt(upd.PRNumber), nullString(upd.PRURL),
		nullString(upd.Error), formatTime(r.now()), id}
	for _, p := range preds {
		args = append(args, p)
	}

	res, err := tx.ExecContext(ctx, `
UPDATE apply_runs SET
    status = $1,
    branch = COALESCE($2, branch),
    pr_number = COALESCE($3, pr_number),
    pr_url = COALESCE($4, pr_url),
    error = COALESCE($5, error),
    updated_at = $6
WHERE id = $7 AND status IN (`+placeholders(8, len(preds))+`)`, args...)
	if err != nil {
		return fmt.Errorf("updating apply run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var current models.ApplyRunStatus
		err := tx.QueryRowContext(ctx, `SELECT status FROM apply_runs WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return &TransitionError{From: current, To: status}
	}

	if err := appendLogs(ctx, tx, id, upd.Logs); err != nil {
		return err
	}
	return tx.Commit()
}

func appendLogs(ctx context.Context, tx *sql.Tx, runID string, logs []models.LogEntry) error {
	for _, entry := range logs {
		ts := entry.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO apply_run_logs (run_id, seq, ts, level, message)
VALUES ($1, (SELECT COALESCE(MAX(seq), 0) + 1 FROM apply_run_logs WHERE run_id = $1), $2, $3, $4)`,
			runID, formatTime(ts), entry.Level, entry.Message)
		if err != nil {
			return fmt.Errorf("appending apply run log: %w", err)
		}
	}
	return nil
}

func scanApplyRun(scan scanFunc) (*models.ApplyRun, error) {
	var (
		run                   models.ApplyRun
		branch, prURL, errMsg sql.NullString
		prNumber              sql.NullInt64
		createdAt, updatedAt  string
	)
	err := scan(
		&run.ID, &run.UserID, &run.AuditID, &run.FixPackID, &run.RepoOwner, &run.RepoName,
		&run.InstallationID, &run.Status, &branch, &prNumber, &prURL, &errMsg,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if branch.Valid {
		run.Branch = &branch.String
	}
	if prNumber.Valid {
		n := int(prNumber.Int64)
		run.PRNumber = &n
	}
	if prURL.Valid {
		run.PRURL = &prURL.String
	}
	if errMsg.Valid {
		run.Error = &errMsg.String
	}
	run.CreatedAt = parseTime(createdAt)
	run.UpdatedAt = parseTime(updatedAt)
	return &run, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
