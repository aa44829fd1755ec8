package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Credits is the entitlement ledger. Only balance checks and debits are modelled.
type Credits struct {
	DB *sql.DB
}

// Check returns the user's balance. Unknown users have zero credits.
func (r *Credits) Check(ctx context.Context, userID string) (int, error) {
	var balance int
	err := r.DB.QueryRowContext(ctx, `
SELECT balance FROM credits WHERE user_id = $1`, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("loading credits for %s: %w", userID, err)
	}
	return balance, nil
}

// Consume debits n credits, failing with ErrInsufficientBalance without touching the row.
func (r *Credits) Consume(ctx context.Context, userID string, n int) error {
	if n <= 0 {
		return nil
	}
	res, err := r.DB.ExecContext(ctx, `
UPDATE credits SET balance = balance - $1, updated_at = $2
WHERE user_id = $3 AND balance >= $1`, n, formatTime(time.Now()), userID)
	if err != nil {
		return fmt.Errorf("consuming credits for %s: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// Grant adds n credits and returns the new balance.
func (r *Credits) Grant(ctx context.Context, userID string, n int) (int, error) {
	var balance int
	err := r.DB.QueryRowContext(ctx, `
INSERT INTO credits (user_id, balance, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET balance = credits.balance + excluded.balance, updated_at = excluded.updated_at
RETURNING balance`, userID, n, formatTime(time.Now())).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("granting credits to %s: %w", userID, err)
	}
	return balance, nil
}
