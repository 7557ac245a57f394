package rating

import "github.com/shopspring/decimal"

// =============================================================================
// MONEY HELPERS - Whole-currency-unit rounding, applied per line item
// =============================================================================

// RoundAmount rounds a monetary value to whole currency units, half away
// from zero. This is applied to every line item as it is computed; the
// annual total is the sum of already-rounded lines. Summing first and
// rounding once would produce different totals and would not match the
// carriers' reference quotes.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Money constructs a whole-unit amount from an int. Used by catalog
// definitions and tests.
func Money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Percent constructs a fractional rate from a float (0.15 == 15%).
func Percent(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// daysInYear is fixed at 365 for proration. Leap years are intentionally
// not special-cased; carrier quotes use a 365-day year in all years.
var daysInYear = decimal.NewFromInt(365)
