package engine

import (
	"context"
	"time"

	"github.com/interledger-go/iroha-settlement/internal/ledger"
	"github.com/interledger-go/iroha-settlement/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the state the settler reads and writes.
	Store interface {
		GetRequestStatus(ctx context.Context, idempotencyKey string) (int, bool, error)
		SaveRequestStatus(ctx context.Context, idempotencyKey string, status int) error
		GetPeerLedgerAccount(ctx context.Context, sid model.SettlementAccountID) (model.LedgerAccountID, bool, error)
		GetLeftover(ctx context.Context, sid model.SettlementAccountID) (decimal.Decimal, error)
		SaveLeftover(ctx context.Context, sid model.SettlementAccountID, leftover decimal.Decimal) error
	}

	// LedgerClient submits transfers to the ledger.
	LedgerClient interface {
		SubmitTransfer(ctx context.Context, transfer ledger.Transfer) error
	}

	// Metrics records settlement outcomes.
	Metrics interface {
		ObserveSettle(err error, started time.Time)
		ObserveTransfer(err error, started time.Time)
	}
)
