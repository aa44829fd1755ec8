package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/models"
)

type FixPacks struct {
	DB *sql.DB
}

func (r *FixPacks) Get(ctx context.Context, id string) (*models.FixPack, error) {
	row := r.DB.QueryRowContext(ctx, `
SELECT id, audit_id, user_id, type, title, description, patch_preview,
       files_affected, issues_fixed, applied_at, created_at
FROM fix_packs WHERE id = $1`, id)

	fp, err := scanFixPack(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading fix pack %s: %w", id, err)
	}
	return fp, nil
}

func (r *FixPacks) Save(ctx context.Context, fp *models.FixPack) error {
	preview, err := json.Marshal(fp.PatchPreview)
	if err != nil {
		return err
	}
	files, err := json.Marshal(nonNil(fp.FilesAffected))
	if err != nil {
		return err
	}
	issues, err := json.Marshal(nonNil(fp.IssuesFixed))
	if err != nil {
		return err
	}

	createdAt := fp.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = r.DB.ExecContext(ctx, `
INSERT INTO fix_packs (id, audit_id, user_id, type, title, description, patch_preview,
                       files_affected, issues_fixed, applied_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    audit_id = excluded.audit_id,
    user_id = excluded.user_id,
    type = excluded.type,
    title = excluded.title,
    description = excluded.description,
    patch_preview = excluded.patch_preview,
    files_affected = excluded.files_affected,
    issues_fixed = excluded.issues_fixed`,
		fp.ID, fp.AuditID, fp.UserID, fp.Type, fp.Title, fp.Description, string(preview),
		string(files), string(issues), nullTime(fp.AppliedAt), formatTime(createdAt),
	)
	if err != nil {
		return fmt.Errorf("saving fix pack %s: %w", fp.ID, err)
	}
	return nil
}

// MarkApplied records when the fix pack's patches landed on a branch.
func (r *FixPacks) MarkApplied(ctx context.Context, id string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
UPDATE fix_packs SET applied_at = $1 WHERE id = $2`, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("marking fix pack %s applied: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanFixPack(scan scanFunc) (*models.FixPack, error) {
	var (
		fp                     models.FixPack
		preview, files, issues string
		appliedAt              sql.NullString
		createdAt              string
	)
	err := scan(
		&fp.ID, &fp.AuditID, &fp.UserID, &fp.Type, &fp.Title, &fp.Description,
		&preview, &files, &issues, &appliedAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(preview), &fp.PatchPreview); err != nil {
		return nil, fmt.Errorf("decoding patch preview: %w", err)
	}
	if err := json.Unmarshal([]byte(files), &fp.FilesAffected); err != nil {
		return nil, fmt.Errorf("decoding files affected: %w", err)
	}
	if err := json.Unmarshal([]byte(issues), &fp.IssuesFixed); err != nil {
		return nil, fmt.Errorf("decoding issues fixed: %w", err)
	}
	fp.AppliedAt = timePtr(appliedAt)
	fp.CreatedAt = parseTime(createdAt)
	return &fp, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
