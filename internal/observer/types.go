package observer

import (
	"context"
	"time"

	"github.com/interledger-go/iroha-settlement/internal/ledger"
	"github.com/interledger-go/iroha-settlement/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the observer's persistent state: the poll cursor and the
	// checked/unchecked transaction sets.
	Store interface {
		GetSettlementAccountID(ctx context.Context, account model.LedgerAccountID) (model.SettlementAccountID, bool, error)
		GetLastCheckedTxHash(ctx context.Context) (string, bool, error)
		SetLastCheckedTxHash(ctx context.Context, hash string) error
		WasTxChecked(ctx context.Context, hash string) (bool, error)
		SaveCheckedTx(ctx context.Context, hash string) error
		SaveUncheckedTx(ctx context.Context, hash string) error
		GetUncheckedTxHashes(ctx context.Context) ([]string, error)
	}

	// LedgerClient reads the engine account's transaction history.
	LedgerClient interface {
		ListAccountAssetTransactions(ctx context.Context, account model.LedgerAccountID, asset model.AssetID, pageSize int, afterHash string) ([]ledger.Transaction, error)
		ListTransactionsByHashes(ctx context.Context, hashes []string) ([]ledger.Transaction, error)
	}

	// Notifier credits incoming settlements with the connector.
	Notifier interface {
		NotifySettlement(ctx context.Context, sid model.SettlementAccountID, quantity model.SettlementQuantity) error
	}

	// Metrics records poll and notification outcomes.
	Metrics interface {
		ObservePoll(err error, txs int, started time.Time)
		ObserveNotify(err error, started time.Time)
	}
)
