package domain

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places every stored amount carries.
const AmountScale = 2

// MaxAmount is the largest magnitude a numeric(14,2) column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// RoundAmount converts a JSON number into the fixed-point amount that is persisted.
//
// The float is first turned into its shortest decimal representation, so 12.345
// becomes the decimal 12.345 (not 12.3449999...), and is then rounded half away
// from zero to two places: 12.345 -> 12.35, -12.345 -> -12.35.
// The sign is kept as supplied; transaction type never flips it.
func RoundAmount(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(AmountScale)
}

// NewAmount rounds amount like RoundAmount and rejects results that no longer
// fit the stored precision, e.g. 999999999999.995 rounds up to 1e12.
func NewAmount(amount float64) (decimal.Decimal, error) {
	d := RoundAmount(amount)
	if d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount must be between -%s and %s",
			ErrValidation, MaxAmount.StringFixed(AmountScale), MaxAmount.StringFixed(AmountScale))
	}
	return d, nil
}

// NormalizeAmount rounds an already-decimal amount to the stored precision.
// RoundAmount(x) == NormalizeAmount(RoundAmount(x)) for every x.
func NormalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountScale)
}

// FormatAmount renders an amount with exactly two decimals ("5.00").
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountScale)
}

// IsValidCurrencyCode reports whether code looks like an ISO 4217 alphabetic code.
func IsValidCurrencyCode(code string) bool {
	return currencyCodeRe.MatchString(code)
}
