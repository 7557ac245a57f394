/*
rider.go - Rider definitions and per-kind amount evaluation

PURPOSE:
  A Rider is an optional or conditional premium adjustment layered on top
  of the tier base premium. Each rider has a kind (the tagged variant that
  decides its formula), a value, and stacking metadata. All four kinds are
  evaluated by one dispatch function so adding a product or rider is a
  catalog-data change, not new control flow.

RIDER KINDS:
  PercentOfBase:      amount = round(effectiveBase × value × units)
                      The only kind that participates in stacking: in
                      cumulative mode its effective base is the running
                      total unless the rider is pinned to the base.
  PercentOfFixedBase: amount = round(originalBase × value × units)
                      Contractually fixed to the tier premium regardless
                      of stacking mode (e.g. additional instructors at
                      50% of the tier premium each).
  PerUnitFlat:        amount = round(units × value)
                      Independent of any base. Multiple unit classes
                      (e.g. administrative vs general employees) are
                      sibling riders, each with its own value and line.
  FixedFlat:          amount = value (whole currency units by construction)

STACKING METADATA:
  DefaultBaseOnly: the rider's default stacking behavior - when true it
  computes off (and is excluded from) the original base even in
  cumulative mode.
  Overridable: the quote may flip the base-only behavior per rider.

SEE ALSO:
  - composer.go: Applies riders in catalog order and grows the chain
  - catalog.go: Availability rules (RidersFor)
*/
package rating

import "github.com/shopspring/decimal"

// =============================================================================
// RIDER KIND - Tagged variant deciding the amount formula
// =============================================================================

type RiderKind string

const (
	PercentOfBase      RiderKind = "percent_of_base"
	PercentOfFixedBase RiderKind = "percent_of_fixed_base"
	PerUnitFlat        RiderKind = "per_unit_flat"
	FixedFlat          RiderKind = "fixed_flat"
)

// KnownKind reports whether k is one of the four rider kinds.
func KnownKind(k RiderKind) bool {
	switch k {
	case PercentOfBase, PercentOfFixedBase, PerUnitFlat, FixedFlat:
		return true
	}
	return false
}

// =============================================================================
// RIDER - Catalog entry for one optional adjustment
// =============================================================================

// Rider is declared once per catalog, in display order. The declared order
// is also the compounding order for cumulative stacking.
type Rider struct {
	ID    string
	Label string
	Kind  RiderKind

	// Value is the rider's rate: a fraction for percent kinds (0.15 = 15%),
	// a per-unit price for PerUnitFlat, a whole amount for FixedFlat.
	// For riders with Options, Value is unused and the selected option
	// supplies the rate.
	Value decimal.Decimal

	// Options, when non-empty, make the rider's rate depend on a selected
	// bracket (e.g. headcount bands each carrying their own percentage).
	// A selection with no or an unknown option key contributes zero.
	Options []RiderOption

	// UsesUnits scales the amount by a unit count taken from the request
	// (free text, leniently parsed; absent/invalid/negative counts as 0).
	UsesUnits bool

	// DefaultBaseOnly pins the rider to the original tier base in
	// cumulative mode: it computes off the base and its amount is kept
	// out of the running total.
	DefaultBaseOnly bool

	// Overridable allows the quote to flip base-only behavior per rider.
	Overridable bool

	// OnlyForSubtype restricts availability to one product subtype.
	// Empty means the rider is always available.
	OnlyForSubtype Subtype
}

// RiderOption is one selectable bracket of an options rider.
type RiderOption struct {
	Key   string
	Label string
	Value decimal.Decimal
}

// AvailableFor reports whether the rider can be offered for the given
// subtype. Availability is a function of already-chosen request fields,
// not post-hoc filtering by the UI.
func (r Rider) AvailableFor(subtype Subtype) bool {
	return r.OnlyForSubtype == "" || r.OnlyForSubtype == subtype
}

// rate resolves the rider's effective rate for a selection. Options
// riders take their rate from the selected bracket; a missing or unknown
// bracket resolves to zero rather than failing.
func (r Rider) rate(sel RiderSelection) decimal.Decimal {
	if len(r.Options) == 0 {
		return r.Value
	}
	for _, opt := range r.Options {
		if opt.Key == sel.OptionKey {
			return opt.Value
		}
	}
	return decimal.Zero
}

// amount evaluates the rider's line amount. This is the single dispatch
// point for all rider kinds.
//
//	originalBase:  the immutable tier base premium
//	effectiveBase: originalBase, or the running total in cumulative mode
func (r Rider) amount(originalBase, effectiveBase decimal.Decimal, sel RiderSelection) decimal.Decimal {
	units := decimal.NewFromInt(1)
	if r.UsesUnits {
		units = decimal.NewFromInt(ParseCount(sel.Units))
	}

	switch r.Kind {
	case PercentOfBase:
		return RoundAmount(effectiveBase.Mul(r.rate(sel)).Mul(units))
	case PercentOfFixedBase:
		return RoundAmount(originalBase.Mul(r.rate(sel)).Mul(units))
	case PerUnitFlat:
		return RoundAmount(units.Mul(r.rate(sel)))
	case FixedFlat:
		return r.rate(sel)
	default:
		return decimal.Zero
	}
}
