package products

// Private horse catalogs. Two divergent horse rate sheets circulated
// before this tool existed - a simplified example sheet and the detailed
// tiered one below. The tiered sheet is what sales quotes against today
// and is the one implemented here; see DESIGN.md for the open question
// on the legacy sheet.

// HorseMenoraJSON returns the canonical private-horse catalog for Menora.
func HorseMenoraJSON() string {
	tiers := []map[string]interface{}{
		tier("liability-250k", "Liability up to 250,000", 900),
		tier("liability-500k", "Liability up to 500,000", 1400),
		tier("liability-1m", "Liability up to 1,000,000", 2000),
	}
	riders := []map[string]interface{}{
		{
			"id": "transport", "label": "Transport and trips",
			"kind": "percent_of_base", "value": 0.10,
			"overridable": true,
		},
		{
			"id": "loaned-out", "label": "Loaned-out use by third parties",
			"kind": "percent_of_base", "value": 0.15,
		},
		{
			"id": "competition", "label": "Competition use",
			"kind": "fixed_flat", "value": 180,
		},
		{
			"id": "additional-horses", "label": "Additional horses",
			"kind": "per_unit_flat", "value": 320, "uses_units": true,
		},
	}
	return catalogJSON("horse", "menora", "Private Horse - Menora", nil, tiers, riders)
}

// HorseHachsharaJSON returns the canonical private-horse catalog for
// Hachshara.
func HorseHachsharaJSON() string {
	tiers := []map[string]interface{}{
		tier("liability-250k", "Liability up to 250,000", 850),
		tier("liability-500k", "Liability up to 500,000", 1300),
		tier("liability-1m", "Liability up to 1,000,000", 1850),
	}
	riders := []map[string]interface{}{
		{
			"id": "transport", "label": "Transport and trips",
			"kind": "percent_of_base", "value": 0.09,
			"overridable": true,
		},
		{
			"id": "loaned-out", "label": "Loaned-out use by third parties",
			"kind": "percent_of_base", "value": 0.14,
		},
		{
			"id": "competition", "label": "Competition use",
			"kind": "fixed_flat", "value": 160,
		},
		{
			"id": "additional-horses", "label": "Additional horses",
			"kind": "per_unit_flat", "value": 300, "uses_units": true,
		},
	}
	return catalogJSON("horse", "hachshara", "Private Horse - Hachshara", nil, tiers, riders)
}
