/*
request.go - The rating request value object and lenient input parsing

PURPOSE:
  A RatingRequest captures everything the user selected for one quote.
  It is a request-scoped value object: no identity, no persistence, no
  mutation after construction.

LENIENT PARSING:
  Unit counts arrive as free text from partially filled forms. A count
  that is absent, unparseable, or negative is 0 - never an error. Dates
  arrive as yyyy-mm-dd strings; an absent or malformed date simply makes
  the period quote {0, 0}. The engine must always have a number to show.

SEE ALSO:
  - composer.go: Consumes RatingRequest
  - prorate.go: Consumes the date range
*/
package rating

import (
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// RATING REQUEST
// =============================================================================

// RiderSelection is the user's choice for one rider.
type RiderSelection struct {
	// Selected activates the rider. Unselected riders contribute nothing.
	Selected bool

	// OptionKey picks the bracket for options riders.
	OptionKey string

	// Units is the free-text unit count for UsesUnits riders.
	Units string

	// BaseOverride, when the rider is overridable and this is non-nil,
	// replaces the rider's default base-only behavior for this quote.
	BaseOverride *bool
}

// RatingRequest is one quote's worth of user selections.
type RatingRequest struct {
	Product Product
	Carrier Carrier
	Subtype Subtype
	Tier    Tier

	// Riders maps rider ID to the user's selection. Riders absent from
	// the map are inactive.
	Riders map[string]RiderSelection

	Stacking StackingMode

	// Optional inclusive date range, yyyy-mm-dd. Either may be empty.
	StartDate string
	EndDate   string
}

// selection returns the request's selection for a rider ID (zero value if
// the rider was never touched).
func (req RatingRequest) selection(id string) RiderSelection {
	return req.Riders[id]
}

// baseOnly resolves the effective base-only flag for a rider under this
// request: the per-quote override when the rider allows one and the
// request supplies one, the rider's default otherwise.
func (req RatingRequest) baseOnly(r Rider) bool {
	sel := req.selection(r.ID)
	if r.Overridable && sel.BaseOverride != nil {
		return *sel.BaseOverride
	}
	return r.DefaultBaseOnly
}

// =============================================================================
// LENIENT INPUT PARSING
// =============================================================================

// ParseCount parses a free-text unit count. Absent, unparseable, or
// negative input is 0 - a partially filled form must never block the
// quote.
func ParseCount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// dateLayout is the wire format for quote date ranges.
const dateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd date string. The second return is false
// for absent or malformed input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
