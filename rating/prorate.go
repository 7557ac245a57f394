/*
prorate.go - Pro-rating an annual premium over an inclusive date range

PURPOSE:
  Computes the day count and premium owed for a specific date range.
  Both boundary dates are inclusive: a same-day range is one billable
  day, never zero.

THE YEAR IS 365 DAYS:
  periodPremium = round(annualTotal / 365 × days), in every year. Leap
  years are intentionally ignored; this matches how the carriers quote
  short periods and must not be "corrected".

FALLBACK, NOT FAILURE:
  A missing or malformed date, or an end date before the start, yields
  {days: 0, premium: 0}. This is a defined result for a partially filled
  form, not an error.
*/
package rating

import (
	"math"

	"github.com/shopspring/decimal"
)

// PeriodQuote is the prorated premium for an inclusive date range.
type PeriodQuote struct {
	Days    int
	Premium decimal.Decimal
}

// Prorate computes the inclusive day count for [start, end] and the
// portion of the annual premium owed for it. Dates are yyyy-mm-dd
// strings; see the fallback rules in the package comment above.
func Prorate(annualTotal decimal.Decimal, startDate, endDate string) PeriodQuote {
	start, okStart := ParseDate(startDate)
	end, okEnd := ParseDate(endDate)
	if !okStart || !okEnd {
		return PeriodQuote{Days: 0, Premium: decimal.Zero}
	}

	// Inclusive bounds: one day of elapsed time is two billable days,
	// and a same-day range is one.
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days <= 0 {
		return PeriodQuote{Days: 0, Premium: decimal.Zero}
	}

	premium := RoundAmount(annualTotal.Div(daysInYear).Mul(decimal.NewFromInt(int64(days))))
	return PeriodQuote{Days: days, Premium: premium}
}
