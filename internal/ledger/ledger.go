// Package ledger defines the contract the settlement engine has with the
// underlying asset ledger. The wire protocol is a detail of the concrete
// client; the engine and the observer only consume these types.
package ledger

import (
	"context"
	"fmt"

	"github.com/interledger-go/iroha-settlement/internal/model"
	"github.com/shopspring/decimal"
)

// Transfer is a single asset-transfer command. Amount is an integer count of
// units at the ledger's asset scale.
type Transfer struct {
	Src         model.LedgerAccountID
	Dst         model.LedgerAccountID
	Asset       model.AssetID
	Description string
	Amount      decimal.Decimal
}

// Command is one command within a ledger transaction. Settlements are only
// performed via transfer commands; other command kinds leave TransferAsset
// nil.
type Command struct {
	TransferAsset *Transfer
}

// Transaction is a committed ledger transaction as returned by history
// queries.
type Transaction struct {
	Hash     string
	Commands []Command
}

// Client is the ledger client consumed by the engine and the observer.
type Client interface {
	// GetAccount probes the ledger for the given account. It is used as a
	// liveness and authentication check at startup.
	GetAccount(ctx context.Context, account model.LedgerAccountID) error

	// SubmitTransfer submits a signed transfer and blocks until the ledger
	// commits it. Any terminal or transient failure observable before commit
	// is reported as *Error.
	SubmitTransfer(ctx context.Context, transfer Transfer) error

	// ListAccountAssetTransactions returns up to pageSize transactions
	// involving the account and asset, strictly after afterHash (exclusive).
	// An empty afterHash starts from the oldest transaction.
	ListAccountAssetTransactions(ctx context.Context, account model.LedgerAccountID, asset model.AssetID, pageSize int, afterHash string) ([]Transaction, error)

	// ListTransactionsByHashes fetches transactions by their hashes.
	ListTransactionsByHashes(ctx context.Context, hashes []string) ([]Transaction, error)
}

// Error wraps any failure surfaced by the ledger while submitting or querying.
// The outgoing settlement engine retries submissions that fail with an *Error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
