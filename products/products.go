/*
Package products holds the canonical catalog definitions for each product
line and carrier.

These functions construct JSON catalog documents directly (maps marshaled
to strings) rather than rating.Catalog values, so the definitions flow
through the same factory validation path as catalogs edited over the
admin API, and so this package needs no import of the factory package.

USAGE:
  import "github.com/equisure/rating-engine/products"

  jsonStr := products.FarmMenoraJSON()
  catalog, err := factory.NewCatalogFactory().ParseCatalog(jsonStr)

SEE ALSO:
  - factory/catalog.go: JSON schema and validation
  - rating/catalog.go: The parsed catalog type
*/
package products

import "encoding/json"

// Definition pairs a catalog key with its canonical JSON document. Used
// to seed the catalog store on first startup and on admin reseed.
type Definition struct {
	Product string
	Carrier string
	Name    string
	JSON    string
}

// Defaults returns every canonical catalog, one per product/carrier pair.
func Defaults() []Definition {
	return []Definition{
		{Product: "horse", Carrier: "menora", Name: "Private Horse - Menora", JSON: HorseMenoraJSON()},
		{Product: "horse", Carrier: "hachshara", Name: "Private Horse - Hachshara", JSON: HorseHachsharaJSON()},
		{Product: "farm", Carrier: "menora", Name: "Horse Farm - Menora", JSON: FarmMenoraJSON()},
		{Product: "farm", Carrier: "hachshara", Name: "Horse Farm - Hachshara", JSON: FarmHachsharaJSON()},
		{Product: "instructor", Carrier: "menora", Name: "Riding Instructors - Menora", JSON: InstructorMenoraJSON()},
		{Product: "instructor", Carrier: "hachshara", Name: "Riding Instructors - Hachshara", JSON: InstructorHachsharaJSON()},
		{Product: "trainer", Carrier: "menora", Name: "Fitness & Martial-Arts Trainers - Menora", JSON: TrainerMenoraJSON()},
		{Product: "trainer", Carrier: "hachshara", Name: "Fitness & Martial-Arts Trainers - Hachshara", JSON: TrainerHachsharaJSON()},
	}
}

// =============================================================================
// BUILDER HELPERS
// =============================================================================

func tier(id, label string, base int) map[string]interface{} {
	return map[string]interface{}{"id": id, "label": label, "base": base}
}

func option(key, label string, value float64) map[string]interface{} {
	return map[string]interface{}{"key": key, "label": label, "value": value}
}

func catalogJSON(product, carrier, name string, subtypes []string, tiers, riders []map[string]interface{}) string {
	cj := map[string]interface{}{
		"product": product,
		"carrier": carrier,
		"name":    name,
		"tiers":   tiers,
		"riders":  riders,
	}
	if len(subtypes) > 0 {
		cj["subtypes"] = subtypes
	}
	b, _ := json.MarshalIndent(cj, "", "  ")
	return string(b)
}
