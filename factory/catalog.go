/*
Package factory provides JSON to Go catalog conversion.

PURPOSE:
  Converts JSON catalog documents into rating.Catalog values. This keeps
  rate tables and rider catalogs as configuration: product owners can
  adjust rates through the admin API, and the same validation runs for
  the built-in defaults and for edited documents.

WHY JSON?
  - Rate changes without code changes
  - Easy integration with the admin UI
  - Version control and database storage of catalog documents

JSON SCHEMA:
  {
    "product": "farm",
    "carrier": "menora",
    "name": "Horse Farm - Menora",
    "subtypes": ["certified", "professional"],
    "tiers": [
      {"id": "liability-1m", "label": "Liability up to 1,000,000", "base": 4000}
    ],
    "riders": [
      {
        "id": "trips",
        "label": "Trips and outings",
        "kind": "percent_of_base",
        "value": 0.10,
        "options": [{"key": "small", "label": "...", "value": 0.15}],
        "uses_units": false,
        "default_base_only": false,
        "overridable": true,
        "only_for_subtype": ""
      }
    ]
  }

VALIDATION:
  The factory is the integrity gate for the one fatal error class the
  engine has (catalog/UI mismatches). It rejects empty tier tables,
  duplicate tier or rider IDs, unknown rider kinds, negative bases and
  out-of-range percentages, so a stored catalog can always be rated
  against.

USAGE:
  f := factory.NewCatalogFactory()
  catalog, err := f.ParseCatalog(jsonStr)

SEE ALSO:
  - rating/catalog.go: The parsed catalog type
  - products package: Canonical catalog JSON definitions
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/equisure/rating-engine/rating"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// CatalogJSON is the JSON representation of a catalog.
type CatalogJSON struct {
	Product  string      `json:"product"`
	Carrier  string      `json:"carrier"`
	Name     string      `json:"name"`
	Subtypes []string    `json:"subtypes,omitempty"`
	Tiers    []TierJSON  `json:"tiers"`
	Riders   []RiderJSON `json:"riders"`
}

// TierJSON is one rate table row.
type TierJSON struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Base  float64 `json:"base"`
}

// RiderJSON is one rider declaration.
type RiderJSON struct {
	ID              string       `json:"id"`
	Label           string       `json:"label"`
	Kind            string       `json:"kind"`
	Value           float64      `json:"value,omitempty"`
	Options         []OptionJSON `json:"options,omitempty"`
	UsesUnits       bool         `json:"uses_units,omitempty"`
	DefaultBaseOnly bool         `json:"default_base_only,omitempty"`
	Overridable     bool         `json:"overridable,omitempty"`
	OnlyForSubtype  string       `json:"only_for_subtype,omitempty"`
}

// OptionJSON is one selectable bracket of an options rider.
type OptionJSON struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// =============================================================================
// CATALOG FACTORY
// =============================================================================

// CatalogFactory converts JSON catalogs to rating.Catalog values.
type CatalogFactory struct{}

// NewCatalogFactory creates a new catalog factory.
func NewCatalogFactory() *CatalogFactory {
	return &CatalogFactory{}
}

// ParseCatalog parses and validates a JSON catalog document.
func (f *CatalogFactory) ParseCatalog(jsonStr string) (*rating.Catalog, error) {
	var cj CatalogJSON
	if err := json.Unmarshal([]byte(jsonStr), &cj); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return f.FromJSON(cj)
}

// FromJSON converts CatalogJSON to a rating.Catalog, validating catalog
// integrity along the way.
func (f *CatalogFactory) FromJSON(cj CatalogJSON) (*rating.Catalog, error) {
	if err := validate(cj); err != nil {
		return nil, err
	}

	cat := &rating.Catalog{
		Product: rating.Product(cj.Product),
		Carrier: rating.Carrier(cj.Carrier),
		Name:    cj.Name,
	}
	for _, s := range cj.Subtypes {
		cat.Subtypes = append(cat.Subtypes, rating.Subtype(s))
	}
	for _, tj := range cj.Tiers {
		cat.Tiers = append(cat.Tiers, rating.TierRate{
			ID:    rating.Tier(tj.ID),
			Label: tj.Label,
			Base:  decimal.NewFromFloat(tj.Base),
		})
	}
	for _, rj := range cj.Riders {
		rider := rating.Rider{
			ID:              rj.ID,
			Label:           rj.Label,
			Kind:            rating.RiderKind(rj.Kind),
			Value:           decimal.NewFromFloat(rj.Value),
			UsesUnits:       rj.UsesUnits,
			DefaultBaseOnly: rj.DefaultBaseOnly,
			Overridable:     rj.Overridable,
			OnlyForSubtype:  rating.Subtype(rj.OnlyForSubtype),
		}
		for _, oj := range rj.Options {
			rider.Options = append(rider.Options, rating.RiderOption{
				Key:   oj.Key,
				Label: oj.Label,
				Value: decimal.NewFromFloat(oj.Value),
			})
		}
		cat.Riders = append(cat.Riders, rider)
	}
	return cat, nil
}

// =============================================================================
// VALIDATION
// =============================================================================

func validate(cj CatalogJSON) error {
	if cj.Product == "" {
		return fmt.Errorf("catalog missing product")
	}
	if cj.Carrier == "" {
		return fmt.Errorf("catalog missing carrier")
	}
	if len(cj.Tiers) == 0 {
		return fmt.Errorf("catalog %s/%s has no tiers", cj.Product, cj.Carrier)
	}

	subtypes := make(map[string]bool, len(cj.Subtypes))
	for _, s := range cj.Subtypes {
		subtypes[s] = true
	}

	tierIDs := make(map[string]bool, len(cj.Tiers))
	for _, tj := range cj.Tiers {
		if tj.ID == "" {
			return fmt.Errorf("catalog %s/%s: tier with empty id", cj.Product, cj.Carrier)
		}
		if tierIDs[tj.ID] {
			return fmt.Errorf("catalog %s/%s: duplicate tier %q", cj.Product, cj.Carrier, tj.ID)
		}
		tierIDs[tj.ID] = true
		if tj.Base < 0 {
			return fmt.Errorf("catalog %s/%s: tier %q has negative base", cj.Product, cj.Carrier, tj.ID)
		}
	}

	riderIDs := make(map[string]bool, len(cj.Riders))
	for _, rj := range cj.Riders {
		if rj.ID == "" {
			return fmt.Errorf("catalog %s/%s: rider with empty id", cj.Product, cj.Carrier)
		}
		if riderIDs[rj.ID] {
			return fmt.Errorf("catalog %s/%s: duplicate rider %q", cj.Product, cj.Carrier, rj.ID)
		}
		riderIDs[rj.ID] = true

		if !rating.KnownKind(rating.RiderKind(rj.Kind)) {
			return fmt.Errorf("catalog %s/%s: rider %q has unknown kind %q", cj.Product, cj.Carrier, rj.ID, rj.Kind)
		}
		if err := validateRate(cj, rj); err != nil {
			return err
		}
		if rj.OnlyForSubtype != "" && !subtypes[rj.OnlyForSubtype] {
			return fmt.Errorf("catalog %s/%s: rider %q restricted to undeclared subtype %q",
				cj.Product, cj.Carrier, rj.ID, rj.OnlyForSubtype)
		}
	}
	return nil
}

func validateRate(cj CatalogJSON, rj RiderJSON) error {
	percent := rj.Kind == string(rating.PercentOfBase) || rj.Kind == string(rating.PercentOfFixedBase)

	check := func(label string, v float64) error {
		if v < 0 {
			return fmt.Errorf("catalog %s/%s: rider %q has negative %s", cj.Product, cj.Carrier, rj.ID, label)
		}
		// Percent rates are fractions; anything above 100% in these
		// product lines is a typo in the document, not a real rate.
		if percent && v > 1 {
			return fmt.Errorf("catalog %s/%s: rider %q has out-of-range %s %v", cj.Product, cj.Carrier, rj.ID, label, v)
		}
		return nil
	}

	if len(rj.Options) == 0 {
		return check("value", rj.Value)
	}
	for _, oj := range rj.Options {
		if oj.Key == "" {
			return fmt.Errorf("catalog %s/%s: rider %q has option with empty key", cj.Product, cj.Carrier, rj.ID)
		}
		if err := check("option value", oj.Value); err != nil {
			return err
		}
	}
	return nil
}
