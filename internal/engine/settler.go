// Package engine drives outgoing settlements: it converts the connector's
// settlement commands into committed ledger transfers, exactly once per
// idempotency key.
package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/interledger-go/iroha-settlement/internal/ledger"
	"github.com/interledger-go/iroha-settlement/internal/model"
	"github.com/interledger-go/iroha-settlement/internal/scale"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	transferMaxAttempts     = 10
	transferInitialInterval = time.Second
	transferMultiplier      = 2
)

// Settler performs outgoing settlements against the ledger.
type Settler struct {
	logger      *zap.Logger
	store       Store
	ledger      LedgerClient
	metrics     Metrics
	selfAccount model.LedgerAccountID
	asset       model.AssetID
	assetScale  int32

	// mu serializes settlement requests. Two concurrent deliveries of the
	// same idempotency key must produce exactly one ledger effect, and the
	// leftover read-modify-write must not interleave.
	mu sync.Mutex

	newBackOff func() backoff.BackOff
}

// NewSettler builds a Settler for the engine's ledger identity.
func NewSettler(
	store Store,
	ledgerClient LedgerClient,
	metrics Metrics,
	selfAccount model.LedgerAccountID,
	asset model.AssetID,
	assetScale int32,
	logger *zap.Logger,
) (*Settler, error) {
	if metrics == nil {
		return nil, errors.New("settler metrics is required")
	}
	if err := model.ValidateAssetScale(assetScale); err != nil {
		return nil, err
	}

	return &Settler{
		logger:      logger.Named("settler"),
		store:       store,
		ledger:      ledgerClient,
		metrics:     metrics,
		selfAccount: selfAccount,
		asset:       asset,
		assetScale:  assetScale,
		newBackOff:  newTransferBackOff,
	}, nil
}

func newTransferBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = transferInitialInterval
	b.Multiplier = transferMultiplier
	b.RandomizationFactor = 0
	b.MaxInterval = 10 * time.Minute
	b.MaxElapsedTime = 0
	return b
}

// Settle converts amount (an integer count of units at fromScale, plus any
// stored leftover) into a ledger transfer to the peer bound to sid. The
// returned status is what the control surface answers with: a replayed
// idempotency key returns its stored status verbatim without side effects.
// The idempotency record is persisted only after the ledger effect is
// durable; any earlier failure leaves the request replayable.
func (s *Settler) Settle(ctx context.Context, sid model.SettlementAccountID, idempotencyKey string, amount decimal.Decimal, fromScale int32) (status int, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSettle(err, started)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	status, found, err := s.store.GetRequestStatus(ctx, idempotencyKey)
	if err != nil {
		return http.StatusInternalServerError, fmt.Errorf("look up request status: %w", err)
	}
	if found {
		s.logger.Info("skipping settlement request, already processed",
			zap.String("idempotency_key", idempotencyKey),
			zap.Int("status", status),
		)
		return status, nil
	}

	peer, found, err := s.store.GetPeerLedgerAccount(ctx, sid)
	if err != nil {
		return http.StatusInternalServerError, fmt.Errorf("look up peer ledger account: %w", err)
	}
	if !found {
		// The peer handshake has not completed; without an idempotency
		// record the connector's retry succeeds once it has.
		err = fmt.Errorf("settlement account %s has no peer ledger account", sid)
		return http.StatusInternalServerError, err
	}

	leftover, err := s.store.GetLeftover(ctx, sid)
	if err != nil {
		return http.StatusInternalServerError, fmt.Errorf("load leftover: %w", err)
	}

	representable, newLeftover := scale.Convert(amount.Add(leftover), fromScale, s.assetScale)
	units := scale.ToLedgerUnits(representable, fromScale, s.assetScale)

	if units.IsPositive() {
		s.logger.Info("performing settlement",
			zap.String("settlement_account_id", string(sid)),
			zap.String("peer", string(peer)),
			zap.String("amount", units.String()),
		)
		if err = s.transfer(ctx, peer, units); err != nil {
			return http.StatusInternalServerError, err
		}
	}

	if err = s.store.SaveLeftover(ctx, sid, newLeftover); err != nil {
		return http.StatusInternalServerError, fmt.Errorf("save leftover: %w", err)
	}
	if err = s.store.SaveRequestStatus(ctx, idempotencyKey, http.StatusCreated); err != nil {
		return http.StatusInternalServerError, fmt.Errorf("save request status: %w", err)
	}
	return http.StatusCreated, nil
}

func (s *Settler) transfer(ctx context.Context, peer model.LedgerAccountID, units decimal.Decimal) error {
	transfer := ledger.Transfer{
		Src:         s.selfAccount,
		Dst:         peer,
		Asset:       s.asset,
		Description: model.TransferDescription,
		Amount:      units,
	}

	operation := func() error {
		attemptStarted := time.Now()
		err := s.ledger.SubmitTransfer(ctx, transfer)
		s.metrics.ObserveTransfer(err, attemptStarted)
		if err == nil {
			return nil
		}

		var lerr *ledger.Error
		if !errors.As(err, &lerr) {
			return backoff.Permanent(err)
		}
		s.logger.Warn("ledger transfer failed, retrying", zap.Error(err))
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), transferMaxAttempts-1), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return fmt.Errorf("submit transfer to %s: %w", peer, err)
	}
	return nil
}
