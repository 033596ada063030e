package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/interledger-go/iroha-settlement/internal/model"
	"github.com/shopspring/decimal"
)

// GetLeftover returns the accumulated precision-loss leftover for a
// settlement account, or zero when none is stored.
func (r *Repository) GetLeftover(ctx context.Context, sid model.SettlementAccountID) (leftover decimal.Decimal, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_leftover", err, started)
	}()

	var raw string
	err = r.db.QueryRowContext(ctx,
		`SELECT amount FROM leftovers WHERE settlement_account_id = ?`, string(sid),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("query leftover: %w", err)
	}

	leftover, err = decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("stored leftover %q is not a decimal: %w", raw, err)
	}
	return leftover, nil
}

// SaveLeftover overwrites the leftover for a settlement account.
func (r *Repository) SaveLeftover(ctx context.Context, sid model.SettlementAccountID, leftover decimal.Decimal) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_leftover", err, started)
	}()

	if _, err = r.db.ExecContext(ctx,
		`INSERT INTO leftovers (settlement_account_id, amount) VALUES (?, ?)
		 ON CONFLICT (settlement_account_id) DO UPDATE SET amount = excluded.amount`,
		string(sid), leftover.String(),
	); err != nil {
		return fmt.Errorf("upsert leftover: %w", err)
	}
	return nil
}
