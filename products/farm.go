package products

// Horse farm catalogs. The headcount rider's percentage depends on the
// size bracket of the operation (instructors on staff / horses on site),
// so it is declared as an options rider rather than three separate ones.

// FarmMenoraJSON returns the canonical farm catalog for Menora.
func FarmMenoraJSON() string {
	tiers := []map[string]interface{}{
		tier("liability-500k", "Liability up to 500,000", 2600),
		tier("liability-1m", "Liability up to 1,000,000", 4000),
		tier("liability-2m", "Liability up to 2,000,000", 5800),
		tier("liability-4m", "Liability up to 4,000,000", 8200),
	}
	riders := []map[string]interface{}{
		{
			"id": "trips", "label": "Trips and outings",
			"kind": "percent_of_base", "value": 0.10,
			"overridable": true,
		},
		{
			"id": "headcount", "label": "Instructors and horses on site",
			"kind": "percent_of_base",
			"options": []map[string]interface{}{
				option("small", "1-5 instructors / 6-10 horses", 0.15),
				option("medium", "6-10 instructors / 11-20 horses", 0.25),
				option("large", "11+ instructors / 21+ horses", 0.35),
			},
			"overridable": true,
		},
		{
			"id": "admin-employees", "label": "Administrative employees",
			"kind": "per_unit_flat", "value": 120, "uses_units": true,
		},
		{
			"id": "general-employees", "label": "General employees",
			"kind": "per_unit_flat", "value": 240, "uses_units": true,
		},
		{
			"id": "events", "label": "Public events",
			"kind": "fixed_flat", "value": 350,
		},
	}
	return catalogJSON("farm", "menora", "Horse Farm - Menora", nil, tiers, riders)
}

// FarmHachsharaJSON returns the canonical farm catalog for Hachshara.
func FarmHachsharaJSON() string {
	tiers := []map[string]interface{}{
		tier("liability-500k", "Liability up to 500,000", 2400),
		tier("liability-1m", "Liability up to 1,000,000", 3700),
		tier("liability-2m", "Liability up to 2,000,000", 5400),
		tier("liability-4m", "Liability up to 4,000,000", 7800),
	}
	riders := []map[string]interface{}{
		{
			"id": "trips", "label": "Trips and outings",
			"kind": "percent_of_base", "value": 0.08,
			"overridable": true,
		},
		{
			"id": "headcount", "label": "Instructors and horses on site",
			"kind": "percent_of_base",
			"options": []map[string]interface{}{
				option("small", "1-5 instructors / 6-10 horses", 0.12),
				option("medium", "6-10 instructors / 11-20 horses", 0.22),
				option("large", "11+ instructors / 21+ horses", 0.32),
			},
			"overridable": true,
		},
		{
			"id": "admin-employees", "label": "Administrative employees",
			"kind": "per_unit_flat", "value": 100, "uses_units": true,
		},
		{
			"id": "general-employees", "label": "General employees",
			"kind": "per_unit_flat", "value": 210, "uses_units": true,
		},
		{
			"id": "events", "label": "Public events",
			"kind": "fixed_flat", "value": 300,
		},
	}
	return catalogJSON("farm", "hachshara", "Horse Farm - Hachshara", nil, tiers, riders)
}
