// Package model holds the domain types shared by the settlement engine
// components.
package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransferDescription marks settlement-related transfers on the ledger. It is
// a protocol constant shared with peer engines; transfers carrying any other
// description are ignored by the incoming observer.
const TransferDescription = "ILP Settlement"

// MinAssetScale and MaxAssetScale bound the number of decimal digits an
// integer ledger amount represents.
const (
	MinAssetScale = 0
	MaxAssetScale = 18
)

// SettlementAccountID is the opaque account identifier assigned by the
// connector.
type SettlementAccountID string

// LedgerAccountID is a fully qualified Iroha account id (name@domain).
type LedgerAccountID string

// ParseLedgerAccountID validates the name@domain shape of an Iroha account id.
func ParseLedgerAccountID(s string) (LedgerAccountID, error) {
	name, domain, ok := strings.Cut(s, "@")
	if !ok || name == "" || domain == "" {
		return "", fmt.Errorf("ledger account id %q is not of the form name@domain", s)
	}
	return LedgerAccountID(s), nil
}

// AssetID is an Iroha asset id (code#domain).
type AssetID string

// ParseAssetID validates the code#domain shape of an Iroha asset id.
func ParseAssetID(s string) (AssetID, error) {
	code, domain, ok := strings.Cut(s, "#")
	if !ok || code == "" || domain == "" {
		return "", fmt.Errorf("asset id %q is not of the form code#domain", s)
	}
	return AssetID(s), nil
}

// ValidateAssetScale rejects scales outside the supported range.
func ValidateAssetScale(scale int32) error {
	if scale < MinAssetScale || scale > MaxAssetScale {
		return fmt.Errorf("asset scale %d out of range [%d, %d]", scale, MinAssetScale, MaxAssetScale)
	}
	return nil
}

// SettlementAccount is the body of POST /accounts.
type SettlementAccount struct {
	ID SettlementAccountID `json:"id"`
}

// SettlementQuantity is the amount/scale pair exchanged with the connector.
// The connector requires the amount to be a JSON string, not a number.
type SettlementQuantity struct {
	Amount string `json:"amount"`
	Scale  int32  `json:"scale"`
}

// AmountDecimal parses the amount as a non-negative integer count of units at
// the quantity's scale.
func (q SettlementQuantity) AmountDecimal() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(q.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse quantity amount %q: %w", q.Amount, err)
	}
	if !amount.Equal(amount.Truncate(0)) {
		return decimal.Decimal{}, fmt.Errorf("quantity amount %q is not an integer", q.Amount)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("quantity amount %q is negative", q.Amount)
	}
	return amount, nil
}

// PaymentDetailsMessage is the symmetric request/response payload of the
// peer-identity handshake. The field name is part of the wire contract.
type PaymentDetailsMessage struct {
	IrohaAccountID LedgerAccountID `json:"iroha_account_id"`
}
