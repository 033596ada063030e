package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/interledger-go/iroha-settlement/internal/model"
)

// GetPeerLedgerAccount returns the ledger account bound to a settlement
// account, if any.
func (r *Repository) GetPeerLedgerAccount(ctx context.Context, sid model.SettlementAccountID) (account model.LedgerAccountID, found bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_peer_ledger_account", err, started)
	}()

	var raw string
	err = r.db.QueryRowContext(ctx,
		`SELECT peer_ledger_account_id FROM settlement_accounts WHERE settlement_account_id = ?`, string(sid),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query peer ledger account: %w", err)
	}
	return model.LedgerAccountID(raw), true, nil
}

// SavePeerLedgerAccount binds a settlement account to a peer's ledger
// account. Saving an identical binding is a no-op; a conflicting binding is
// rejected with ErrPeerAccountMismatch.
func (r *Repository) SavePeerLedgerAccount(ctx context.Context, sid model.SettlementAccountID, account model.LedgerAccountID) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_peer_ledger_account", err, started)
	}()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save peer ledger account: %w", err)
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRowContext(ctx,
		`SELECT peer_ledger_account_id FROM settlement_accounts WHERE settlement_account_id = ?`, string(sid),
	).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO settlement_accounts (settlement_account_id, peer_ledger_account_id) VALUES (?, ?)`,
			string(sid), string(account),
		); err != nil {
			return fmt.Errorf("insert peer ledger account: %w", err)
		}
	case err != nil:
		return fmt.Errorf("query peer ledger account: %w", err)
	case existing != string(account):
		err = fmt.Errorf("%w: %s is bound to %s", ErrPeerAccountMismatch, sid, existing)
		return err
	default:
		// Identical binding; the inbound handshake is idempotent.
		return nil
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save peer ledger account: %w", err)
	}
	return nil
}

// GetSettlementAccountID reverse-looks-up the settlement account for a peer's
// ledger account. The observer uses it to classify incoming transfers.
func (r *Repository) GetSettlementAccountID(ctx context.Context, account model.LedgerAccountID) (sid model.SettlementAccountID, found bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_settlement_account_id", err, started)
	}()

	var raw string
	err = r.db.QueryRowContext(ctx,
		`SELECT settlement_account_id FROM settlement_accounts WHERE peer_ledger_account_id = ?`, string(account),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query settlement account id: %w", err)
	}
	return model.SettlementAccountID(raw), true, nil
}

// ExistsSettlementAccount reports whether a settlement account is known.
func (r *Repository) ExistsSettlementAccount(ctx context.Context, sid model.SettlementAccountID) (exists bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("exists_settlement_account", err, started)
	}()

	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM settlement_accounts WHERE settlement_account_id = ?)`, string(sid),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query settlement account existence: %w", err)
	}
	return exists, nil
}

// DeleteSettlementAccount removes the peer binding and the associated
// leftover. Idempotency records and the transaction sets are global to the
// instance and stay untouched.
func (r *Repository) DeleteSettlementAccount(ctx context.Context, sid model.SettlementAccountID) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("delete_settlement_account", err, started)
	}()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete settlement account: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM settlement_accounts WHERE settlement_account_id = ?`, string(sid),
	); err != nil {
		return fmt.Errorf("delete settlement account: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM leftovers WHERE settlement_account_id = ?`, string(sid),
	); err != nil {
		return fmt.Errorf("delete leftover: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete settlement account: %w", err)
	}
	return nil
}
