/*
catalog.go - Rate tables and rider catalogs

PURPOSE:
  A Catalog bundles everything needed to rate one product/carrier pair:
  the ordered tier rate table and the ordered rider list. Catalogs are
  immutable value objects; the engine never mutates them.

INVARIANTS:
  - Every tier the UI offers for a product/carrier must exist in its
    catalog. BaseFor never defaults: a miss is an UnknownTierError.
  - Tier and rider order is declared once in the catalog and is
    significant: it is both display order and, for cumulative stacking,
    the compounding order.

SEE ALSO:
  - factory package: Parses catalog JSON into this type
  - products package: Canonical catalog definitions
*/
package rating

import "github.com/shopspring/decimal"

// =============================================================================
// TIER RATE - One row of the rate table
// =============================================================================

// TierRate maps a coverage tier to its base annual premium.
type TierRate struct {
	ID    Tier
	Label string
	Base  decimal.Decimal
}

// =============================================================================
// CATALOG - Everything needed to rate one product/carrier pair
// =============================================================================

type Catalog struct {
	Product Product
	Carrier Carrier
	Name    string

	// Subtypes the product is sold as (empty for products without
	// subtypes). Used by rider availability rules.
	Subtypes []Subtype

	// Tiers in display order. Closed set: lookups never default.
	Tiers []TierRate

	// Riders in display and compounding order.
	Riders []Rider
}

// Key returns the (product, carrier) pair this catalog is scoped to.
func (c *Catalog) Key() CatalogKey {
	return CatalogKey{Product: c.Product, Carrier: c.Carrier}
}

// BaseFor looks up the base annual premium for a tier. A tier absent from
// the table is a hard error, never a default: a silent wrong default
// would misprice a policy.
func (c *Catalog) BaseFor(tier Tier) (decimal.Decimal, error) {
	for _, tr := range c.Tiers {
		if tr.ID == tier {
			return tr.Base, nil
		}
	}
	return decimal.Zero, &UnknownTierError{Product: c.Product, Carrier: c.Carrier, Tier: tier}
}

// TierLabel returns the display label for a tier, or the tier key itself
// when the tier is unknown (labels are presentation only).
func (c *Catalog) TierLabel(tier Tier) string {
	for _, tr := range c.Tiers {
		if tr.ID == tier {
			return tr.Label
		}
	}
	return string(tier)
}

// RidersFor returns the riders available for the given subtype, in
// catalog order. Conditional riders are filtered here, as a function of
// the already-chosen subtype, so the UI never has to post-filter.
func (c *Catalog) RidersFor(subtype Subtype) []Rider {
	out := make([]Rider, 0, len(c.Riders))
	for _, r := range c.Riders {
		if r.AvailableFor(subtype) {
			out = append(out, r)
		}
	}
	return out
}

// RiderByID returns the rider with the given ID, if declared.
func (c *Catalog) RiderByID(id string) (Rider, bool) {
	for _, r := range c.Riders {
		if r.ID == id {
			return r, true
		}
	}
	return Rider{}, false
}
