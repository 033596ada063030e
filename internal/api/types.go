package api

import (
	"context"

	"github.com/interledger-go/iroha-settlement/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the account state the control surface reads and writes.
	Store interface {
		GetPeerLedgerAccount(ctx context.Context, sid model.SettlementAccountID) (model.LedgerAccountID, bool, error)
		SavePeerLedgerAccount(ctx context.Context, sid model.SettlementAccountID, account model.LedgerAccountID) error
		ExistsSettlementAccount(ctx context.Context, sid model.SettlementAccountID) (bool, error)
		DeleteSettlementAccount(ctx context.Context, sid model.SettlementAccountID) error
	}

	// Settler performs outgoing settlements.
	Settler interface {
		Settle(ctx context.Context, sid model.SettlementAccountID, idempotencyKey string, amount decimal.Decimal, fromScale int32) (int, error)
	}

	// PeerMessenger exchanges payment details with the peer through the
	// connector's message channel.
	PeerMessenger interface {
		SendPaymentDetails(ctx context.Context, sid model.SettlementAccountID, details model.PaymentDetailsMessage) (model.PaymentDetailsMessage, error)
	}
)
