package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetLastCheckedTxHash returns the observer's paging cursor: the hash of the
// most recent transaction it advanced past.
func (r *Repository) GetLastCheckedTxHash(ctx context.Context) (hash string, found bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_last_checked_tx_hash", err, started)
	}()

	err = r.db.QueryRowContext(ctx, `SELECT tx_hash FROM observer_cursor WHERE id = 1`).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query observer cursor: %w", err)
	}
	return hash, true, nil
}

// SetLastCheckedTxHash advances the observer's paging cursor.
func (r *Repository) SetLastCheckedTxHash(ctx context.Context, hash string) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("set_last_checked_tx_hash", err, started)
	}()

	if _, err = r.db.ExecContext(ctx,
		`INSERT INTO observer_cursor (id, tx_hash) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET tx_hash = excluded.tx_hash`, hash,
	); err != nil {
		return fmt.Errorf("upsert observer cursor: %w", err)
	}
	return nil
}

// WasTxChecked reports whether a transaction was already fully processed.
func (r *Repository) WasTxChecked(ctx context.Context, hash string) (checked bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("was_tx_checked", err, started)
	}()

	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM checked_txs WHERE tx_hash = ?)`, hash,
	).Scan(&checked)
	if err != nil {
		return false, fmt.Errorf("query checked tx: %w", err)
	}
	return checked, nil
}

// SaveCheckedTx marks a transaction as fully processed and drops it from the
// unchecked set in the same transaction, so a hash is never in both sets.
func (r *Repository) SaveCheckedTx(ctx context.Context, hash string) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_checked_tx", err, started)
	}()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save checked tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO checked_txs (tx_hash) VALUES (?)`, hash,
	); err != nil {
		return fmt.Errorf("insert checked tx: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM unchecked_txs WHERE tx_hash = ?`, hash,
	); err != nil {
		return fmt.Errorf("remove unchecked tx: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save checked tx: %w", err)
	}
	return nil
}

// SaveUncheckedTx records a transaction whose connector notification failed,
// for re-processing on later observer ticks. Already-checked transactions are
// never added.
func (r *Repository) SaveUncheckedTx(ctx context.Context, hash string) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_unchecked_tx", err, started)
	}()

	if _, err = r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO unchecked_txs (tx_hash)
		 SELECT ? WHERE NOT EXISTS (SELECT 1 FROM checked_txs WHERE tx_hash = ?)`, hash, hash,
	); err != nil {
		return fmt.Errorf("insert unchecked tx: %w", err)
	}
	return nil
}

// GetUncheckedTxHashes lists transactions awaiting a notification retry.
func (r *Repository) GetUncheckedTxHashes(ctx context.Context) (hashes []string, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_unchecked_tx_hashes", err, started)
	}()

	rows, err := r.db.QueryContext(ctx, `SELECT tx_hash FROM unchecked_txs ORDER BY tx_hash`)
	if err != nil {
		return nil, fmt.Errorf("query unchecked txs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hash string
		if err = rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("scan unchecked tx: %w", err)
		}
		hashes = append(hashes, hash)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unchecked txs: %w", err)
	}
	return hashes, nil
}

// RemoveUncheckedTx drops a hash from the unchecked set.
func (r *Repository) RemoveUncheckedTx(ctx context.Context, hash string) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("remove_unchecked_tx", err, started)
	}()

	if _, err = r.db.ExecContext(ctx,
		`DELETE FROM unchecked_txs WHERE tx_hash = ?`, hash,
	); err != nil {
		return fmt.Errorf("delete unchecked tx: %w", err)
	}
	return nil
}
