// Package scale converts fixed-point amounts between asset scales without
// losing value: whatever cannot be represented at the destination scale is
// returned as a leftover for later aggregation.
package scale

import "github.com/shopspring/decimal"

// Convert splits amount, an integer count of units at fromScale, into the
// largest part exactly representable at toScale and the discarded remainder.
// Both results stay expressed at fromScale so they can be summed with the
// next incoming amount. Scaling down truncates toward zero; over-settling a
// peer is never acceptable, so no rounding mode other than truncation is
// used.
func Convert(amount decimal.Decimal, fromScale, toScale int32) (representable, leftover decimal.Decimal) {
	if toScale >= fromScale {
		return amount, decimal.Zero
	}

	drop := fromScale - toScale
	representable = amount.Shift(-drop).Truncate(0).Shift(drop)
	leftover = amount.Sub(representable)
	return representable, leftover
}

// ToLedgerUnits re-expresses a representable amount at fromScale as an
// integer count of units at toScale, ready for a ledger transfer command.
// The amount must already be representable at toScale (see Convert).
func ToLedgerUnits(representable decimal.Decimal, fromScale, toScale int32) decimal.Decimal {
	return representable.Shift(toScale - fromScale)
}
