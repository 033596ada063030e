// Package observer polls the ledger for transfers into the engine's account
// and credits them with the connector. Every transaction is checked exactly
// once: a persistent cursor walks the account-asset history forward, and
// transactions whose notification failed are parked in an unchecked set and
// re-driven on later ticks.
package observer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/interledger-go/iroha-settlement/internal/clock"
	"github.com/interledger-go/iroha-settlement/internal/ledger"
	"github.com/interledger-go/iroha-settlement/internal/model"
	"go.uber.org/zap"
)

const (
	defaultPollInterval  = time.Second
	transactionsPageSize = 10
)

// Observer watches the engine account for incoming settlements.
type Observer struct {
	logger      *zap.Logger
	store       Store
	ledger      LedgerClient
	notifier    Notifier
	metrics     Metrics
	selfAccount model.LedgerAccountID
	asset       model.AssetID
	assetScale  int32
	interval    time.Duration
	pageSize    int
}

// NewObserver builds an Observer for the engine's ledger identity.
func NewObserver(
	store Store,
	ledgerClient LedgerClient,
	notifier Notifier,
	metrics Metrics,
	selfAccount model.LedgerAccountID,
	asset model.AssetID,
	assetScale int32,
	logger *zap.Logger,
) (*Observer, error) {
	if metrics == nil {
		return nil, errors.New("observer metrics is required")
	}
	if err := model.ValidateAssetScale(assetScale); err != nil {
		return nil, err
	}

	return &Observer{
		logger:      logger.Named("observer"),
		store:       store,
		ledger:      ledgerClient,
		notifier:    notifier,
		metrics:     metrics,
		selfAccount: selfAccount,
		asset:       asset,
		assetScale:  assetScale,
		interval:    defaultPollInterval,
		pageSize:    transactionsPageSize,
	}, nil
}

// Run polls until ctx is canceled. Ticks never overlap; a slow poll simply
// delays the next one.
func (o *Observer) Run(ctx context.Context) error {
	o.logger.Info("starting incoming settlement observer",
		zap.String("account", string(o.selfAccount)),
		zap.String("asset", string(o.asset)),
		zap.Duration("interval", o.interval),
	)
	return clock.Every(ctx, o.interval, o.tick)
}

func (o *Observer) tick(ctx context.Context) {
	started := time.Now()

	cursor, _, err := o.store.GetLastCheckedTxHash(ctx)
	if err != nil {
		o.metrics.ObservePoll(err, 0, started)
		o.logger.Error("failed to load poll cursor", zap.Error(err))
		return
	}

	txs, err := o.ledger.ListAccountAssetTransactions(ctx, o.selfAccount, o.asset, o.pageSize, cursor)
	o.metrics.ObservePoll(err, len(txs), started)
	if err != nil {
		o.logger.Error("failed to poll ledger", zap.Error(err))
		return
	}
	for _, tx := range txs {
		// The cursor must never advance past a transaction that is in
		// neither the checked nor the unchecked set, or it would never be
		// re-fetched. Stop the page on the first such transaction and let
		// the next tick retry from the old cursor.
		if !o.processTx(ctx, tx, true) {
			break
		}
	}

	o.retryUnchecked(ctx)
}

func (o *Observer) retryUnchecked(ctx context.Context) {
	hashes, err := o.store.GetUncheckedTxHashes(ctx)
	if err != nil {
		o.logger.Error("failed to load unchecked transactions", zap.Error(err))
		return
	}
	if len(hashes) == 0 {
		return
	}

	txs, err := o.ledger.ListTransactionsByHashes(ctx, hashes)
	if err != nil {
		o.logger.Error("failed to fetch unchecked transactions", zap.Error(err))
		return
	}
	for _, tx := range txs {
		o.processTx(ctx, tx, false)
	}
}

// processTx checks one transaction and reports whether it ended up recorded
// in the checked or unchecked set. advanceCursor is set on the forward
// polling path, where the cursor tracks the newest checked transaction;
// unchecked retries never move the cursor. A false return means the
// transaction is in neither set and the forward page must not continue past
// it.
func (o *Observer) processTx(ctx context.Context, tx ledger.Transaction, advanceCursor bool) bool {
	checked, err := o.store.WasTxChecked(ctx, tx.Hash)
	if err != nil {
		o.logger.Error("failed to look up transaction", zap.String("tx_hash", tx.Hash), zap.Error(err))
		return false
	}

	if !checked {
		for _, cmd := range tx.Commands {
			if cmd.TransferAsset == nil {
				continue
			}
			if err := o.handleTransfer(ctx, cmd.TransferAsset); err != nil {
				o.logger.Error("failed to credit incoming settlement, parking transaction",
					zap.String("tx_hash", tx.Hash),
					zap.Error(err),
				)
				if err := o.store.SaveUncheckedTx(ctx, tx.Hash); err != nil {
					o.logger.Error("failed to park transaction", zap.String("tx_hash", tx.Hash), zap.Error(err))
					return false
				}
				// Parked: safe to leave behind, the unchecked pass
				// re-fetches it by hash.
				return true
			}
		}
		if err := o.store.SaveCheckedTx(ctx, tx.Hash); err != nil {
			o.logger.Error("failed to mark transaction checked", zap.String("tx_hash", tx.Hash), zap.Error(err))
			return false
		}
	}

	if advanceCursor {
		// A cursor write failure only makes the next tick re-scan checked
		// transactions, which is idempotent.
		if err := o.store.SetLastCheckedTxHash(ctx, tx.Hash); err != nil {
			o.logger.Error("failed to advance poll cursor", zap.String("tx_hash", tx.Hash), zap.Error(err))
		}
	}
	return true
}

// handleTransfer credits a transfer with the connector when it is an
// incoming settlement: our memo, a known peer as source, our account as
// destination, our asset. Anything else is ignored.
func (o *Observer) handleTransfer(ctx context.Context, transfer *ledger.Transfer) error {
	if transfer.Description != model.TransferDescription {
		return nil
	}
	if transfer.Dst != o.selfAccount || transfer.Asset != o.asset {
		return nil
	}

	sid, found, err := o.store.GetSettlementAccountID(ctx, transfer.Src)
	if err != nil {
		return fmt.Errorf("look up settlement account for %s: %w", transfer.Src, err)
	}
	if !found {
		o.logger.Debug("ignoring settlement transfer from unknown account",
			zap.String("src", string(transfer.Src)),
		)
		return nil
	}

	o.logger.Info("crediting incoming settlement",
		zap.String("settlement_account_id", string(sid)),
		zap.String("src", string(transfer.Src)),
		zap.String("amount", transfer.Amount.String()),
	)

	quantity := model.SettlementQuantity{Amount: transfer.Amount.String(), Scale: o.assetScale}
	started := time.Now()
	err = o.notifier.NotifySettlement(ctx, sid, quantity)
	o.metrics.ObserveNotify(err, started)
	if err != nil {
		return fmt.Errorf("notify connector: %w", err)
	}
	return nil
}
