package money

import (
	"github.com/shopspring/decimal"
)

// USD is the only currency the core settles in today.
const USD = "USD"

var (
	Zero    = decimal.Zero
	Cent    = decimal.New(1, -2)
	Hundred = decimal.New(100, 0)
)

// D parses a decimal literal. It panics on malformed input, so it is only
// for constants and test fixtures.
func D(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RoundCents rounds to whole cents using banker's rounding.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// TruncCents drops everything beyond the cents place.
func TruncCents(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(2)
}

// FracCents returns the sub-cent remainder of d, used to decide which lines
// were closest to rolling over into another penny.
func FracCents(d decimal.Decimal) decimal.Decimal {
	return d.Sub(d.Truncate(2))
}

// PercentMultiplier converts a human percentage (8 means 8%) into a
// multiplier (0.08).
func PercentMultiplier(percentage decimal.Decimal) decimal.Decimal {
	return percentage.Div(Hundred)
}

// IsCents reports whether d is representable as a real monetary value, that
// is, no more fractionalized than cents.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(2))
}
