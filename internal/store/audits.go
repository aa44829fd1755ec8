package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/models"
)

type Audits struct {
	DB *sql.DB
}

func (r *Audits) Get(ctx context.Context, id string) (*models.Audit, error) {
	var a models.Audit
	err := r.DB.QueryRowContext(ctx, `
SELECT id, user_id, status FROM audits WHERE id = $1`, id).Scan(&a.ID, &a.UserID, &a.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading audit %s: %w", id, err)
	}
	return &a, nil
}

// Save upserts an audit. Audits are produced elsewhere; the pipeline only imports them.
func (r *Audits) Save(ctx context.Context, a models.Audit) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO audits (id, user_id, status, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id, status = excluded.status`,
		a.ID, a.UserID, a.Status, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("saving audit %s: %w", a.ID, err)
	}
	return nil
}
