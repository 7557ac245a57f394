/*
Package rating provides the core premium rating engine.

PURPOSE:
  This package contains the pure calculation core that turns a set of
  user-selected rating factors (coverage tier, optional riders, per-unit
  counts, a stacking mode) into an itemized premium breakdown and a
  date-range-prorated premium. It knows nothing about HTTP, storage, or
  rendering.

KEY CONCEPTS IN THIS FILE (types.go):
  - Product/Carrier/Tier: Type-safe identifiers for the quoting axes
  - StackingMode: Whether riders compound off the original base premium
    or off the running cumulative total
  - CatalogKey: The (product, carrier) pair a catalog is scoped to

DESIGN PRINCIPLES:
  1. Purity: Every computation is a pure function of its request
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Rounding where the money is: Amounts are rounded at each line item,
     never only at the grand total
  4. Graceful input: Malformed counts and dates degrade to zero, never
     to an error

USAGE:
  catalog := ... // from factory or products package
  breakdown, err := rating.ComputeBreakdown(catalog, request)
  quote := rating.Prorate(breakdown.AnnualTotal, "2025-01-01", "2025-03-15")

SEE ALSO:
  - catalog.go: Tier rate tables and rider catalogs
  - composer.go: The stacking algorithm
  - prorate.go: Inclusive-day proration
*/
package rating

// =============================================================================
// IDENTIFIERS - The axes a quote is keyed on
// =============================================================================

// Product is one of the insured lines of business.
type Product string

const (
	ProductHorse      Product = "horse"      // Private horse owners
	ProductFarm       Product = "farm"       // Horse farms / stables
	ProductInstructor Product = "instructor" // Riding instructors
	ProductTrainer    Product = "trainer"    // Fitness and martial-arts trainers
)

// Carrier is the insurance company underwriting the policy.
type Carrier string

const (
	CarrierMenora    Carrier = "menora"
	CarrierHachshara Carrier = "hachshara"
)

// Tier is a discrete coverage/liability bracket, scoped to a product and
// carrier. It is an opaque key into that catalog's rate table.
type Tier string

// Subtype narrows a product for availability rules (e.g. an instructor
// policy is either "certified" or "professional"). Empty means the product
// has no subtypes.
type Subtype string

// =============================================================================
// STACKING MODE
// =============================================================================

// StackingMode selects, once per quote, which base percentage riders are
// computed from. Individual riders may override it (see Rider).
type StackingMode string

const (
	// StackBase: every rider computes off the untouched tier base premium.
	StackBase StackingMode = "base"

	// StackCumulative: each rider computes off the base plus all prior
	// un-overridden rider amounts, in catalog order.
	StackCumulative StackingMode = "cumulative"
)

// CatalogKey identifies one catalog: a product sold through a carrier.
type CatalogKey struct {
	Product Product
	Carrier Carrier
}

func (k CatalogKey) String() string {
	return string(k.Product) + "/" + string(k.Carrier)
}
