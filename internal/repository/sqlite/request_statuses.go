package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetRequestStatus returns the HTTP status persisted for an idempotency key.
func (r *Repository) GetRequestStatus(ctx context.Context, idempotencyKey string) (status int, found bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_request_status", err, started)
	}()

	err = r.db.QueryRowContext(ctx,
		`SELECT http_status FROM request_statuses WHERE idempotency_key = ?`, idempotencyKey,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query request status: %w", err)
	}
	return status, true, nil
}

// SaveRequestStatus persists the outcome of a settlement request. The caller
// must invoke it at most once per key; a duplicate insert is a programming
// error and surfaces as a constraint violation.
func (r *Repository) SaveRequestStatus(ctx context.Context, idempotencyKey string, status int) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_request_status", err, started)
	}()

	if _, err = r.db.ExecContext(ctx,
		`INSERT INTO request_statuses (idempotency_key, http_status) VALUES (?, ?)`, idempotencyKey, status,
	); err != nil {
		return fmt.Errorf("insert request status: %w", err)
	}
	return nil
}
