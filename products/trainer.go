package products

// Fitness and martial-arts trainer catalogs.

func trainerTiers() []map[string]interface{} {
	return []map[string]interface{}{
		tier("liability-500k", "Liability up to 500,000", 750),
		tier("liability-1m", "Liability up to 1,000,000", 980),
		tier("liability-2m", "Liability up to 2,000,000", 1400),
	}
}

func trainerRiders() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id": "outdoor", "label": "Outdoor and field activities",
			"kind": "fixed_flat", "value": 150,
		},
		{
			"id": "apprentices", "label": "Apprentice trainers",
			"kind": "per_unit_flat", "value": 95, "uses_units": true,
		},
		{
			"id": "equipment", "label": "Training equipment",
			"kind": "percent_of_base", "value": 0.08,
			"overridable": true,
		},
	}
}

// TrainerMenoraJSON returns the canonical trainer catalog for Menora.
func TrainerMenoraJSON() string {
	return catalogJSON("trainer", "menora", "Fitness & Martial-Arts Trainers - Menora", nil, trainerTiers(), trainerRiders())
}

// TrainerHachsharaJSON returns the trainer catalog for Hachshara.
// Hachshara has not supplied its own trainer rates yet, so this reuses
// the Menora table verbatim; swap in real rates here when they arrive.
func TrainerHachsharaJSON() string {
	return catalogJSON("trainer", "hachshara", "Fitness & Martial-Arts Trainers - Hachshara", nil, trainerTiers(), trainerRiders())
}
