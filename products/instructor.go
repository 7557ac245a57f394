package products

// Riding instructor catalogs. Instructor policies come in two subtypes
// (certified, professional); the liability limit extension rider is only
// written for professionals, which is expressed as catalog data rather
// than UI filtering. Additional instructors are contractually priced at
// a percentage of the tier premium each, so that rider is fixed to the
// base regardless of the quote's stacking mode.

// InstructorMenoraJSON returns the canonical instructor catalog for
// Menora.
func InstructorMenoraJSON() string {
	subtypes := []string{"certified", "professional"}
	tiers := []map[string]interface{}{
		tier("certified-1m", "Certified, liability 1,000,000", 2100),
		tier("certified-2m", "Certified, liability 2,000,000", 3000),
		tier("professional-1m", "Professional, liability 1,000,000", 2800),
		tier("professional-2m", "Professional, liability 2,000,000", 3900),
	}
	riders := []map[string]interface{}{
		{
			"id": "third-party", "label": "Third-party property damage",
			"kind": "percent_of_base", "value": 0.12,
			"overridable": true,
		},
		{
			"id": "additional-instructors", "label": "Additional instructors",
			"kind": "percent_of_fixed_base", "value": 0.5, "uses_units": true,
		},
		{
			"id": "limit-extension", "label": "Liability limit extension",
			"kind": "fixed_flat", "value": 400,
			"only_for_subtype": "professional",
		},
	}
	return catalogJSON("instructor", "menora", "Riding Instructors - Menora", subtypes, tiers, riders)
}

// InstructorHachsharaJSON returns the canonical instructor catalog for
// Hachshara.
func InstructorHachsharaJSON() string {
	subtypes := []string{"certified", "professional"}
	tiers := []map[string]interface{}{
		tier("certified-1m", "Certified, liability 1,000,000", 1950),
		tier("certified-2m", "Certified, liability 2,000,000", 2800),
		tier("professional-1m", "Professional, liability 1,000,000", 2600),
		tier("professional-2m", "Professional, liability 2,000,000", 3650),
	}
	riders := []map[string]interface{}{
		{
			"id": "third-party", "label": "Third-party property damage",
			"kind": "percent_of_base", "value": 0.10,
			"overridable": true,
		},
		{
			"id": "additional-instructors", "label": "Additional instructors",
			"kind": "percent_of_fixed_base", "value": 0.5, "uses_units": true,
		},
		{
			"id": "limit-extension", "label": "Liability limit extension",
			"kind": "fixed_flat", "value": 350,
			"only_for_subtype": "professional",
		},
	}
	return catalogJSON("instructor", "hachshara", "Riding Instructors - Hachshara", subtypes, tiers, riders)
}
