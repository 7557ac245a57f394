package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equisure/rating-engine/factory"
	"github.com/equisure/rating-engine/rating"
)

const validCatalog = `{
  "product": "farm",
  "carrier": "menora",
  "name": "Horse Farm - Menora",
  "tiers": [
    {"id": "liability-1m", "label": "Liability up to 1,000,000", "base": 4000}
  ],
  "riders": [
    {"id": "trips", "label": "Trips and outings", "kind": "percent_of_base", "value": 0.10, "overridable": true},
    {"id": "events", "label": "Public events", "kind": "fixed_flat", "value": 350}
  ]
}`

func TestParseCatalog_Valid(t *testing.T) {
	f := factory.NewCatalogFactory()

	cat, err := f.ParseCatalog(validCatalog)
	require.NoError(t, err)

	assert.Equal(t, rating.ProductFarm, cat.Product)
	assert.Equal(t, rating.CarrierMenora, cat.Carrier)
	require.Len(t, cat.Tiers, 1)
	assert.Equal(t, int64(4000), cat.Tiers[0].Base.IntPart())
	require.Len(t, cat.Riders, 2)
	assert.Equal(t, rating.PercentOfBase, cat.Riders[0].Kind)
	assert.True(t, cat.Riders[0].Overridable)
	assert.Equal(t, rating.FixedFlat, cat.Riders[1].Kind)
}

func TestParseCatalog_RiderOrderPreserved(t *testing.T) {
	// Rider order is the compounding order; the factory must never
	// reorder what the document declares.
	f := factory.NewCatalogFactory()
	cat, err := f.ParseCatalog(validCatalog)
	require.NoError(t, err)

	assert.Equal(t, "trips", cat.Riders[0].ID)
	assert.Equal(t, "events", cat.Riders[1].ID)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{"product":`},
		{"missing product", `{"carrier": "menora", "tiers": [{"id": "t", "label": "T", "base": 1}]}`},
		{"missing carrier", `{"product": "farm", "tiers": [{"id": "t", "label": "T", "base": 1}]}`},
		{"no tiers", `{"product": "farm", "carrier": "menora", "tiers": []}`},
		{
			"duplicate tier",
			`{"product": "farm", "carrier": "menora",
			  "tiers": [{"id": "t", "label": "T", "base": 1}, {"id": "t", "label": "T2", "base": 2}]}`,
		},
		{
			"negative base",
			`{"product": "farm", "carrier": "menora",
			  "tiers": [{"id": "t", "label": "T", "base": -5}]}`,
		},
		{
			"unknown rider kind",
			`{"product": "farm", "carrier": "menora",
			  "tiers": [{"id": "t", "label": "T", "base": 1}],
			  "riders": [{"id": "r", "label": "R", "kind": "percent_of_total", "value": 0.1}]}`,
		},
		{
			"duplicate rider",
			`{"product": "farm", "carrier": "menora",
			  "tiers": [{"id": "t", "label": "T", "base": 1}],
			  "riders": [
			    {"id": "r", "label": "R", "kind": "fixed_flat", "value": 10},
			    {"id": "r", "label": "R2", "kind": "fixed_flat", "value": 20}
			  ]}`,
		},
		{
			"percent above one",
			`{"product": "farm", "carrier": "menora",
			  "tiers": [{"id": "t", "label": "T", "base": 1}],
			  "riders": [{"id": "r", "label": "R", "kind": "percent_of_base", "value": 15}]}`,
		},
		{
			"option with empty key",
			`{"product": "farm", "carrier": "menora",
			  "tiers": [{"id": "t", "label": "T", "base": 1}],
			  "riders": [{"id": "r", "label": "R", "kind": "percent_of_base",
			    "options": [{"key": "", "label": "O", "value": 0.1}]}]}`,
		},
		{
			"rider restricted to undeclared subtype",
			`{"product": "instructor", "carrier": "menora",
			  "subtypes": ["certified"],
			  "tiers": [{"id": "t", "label": "T", "base": 1}],
			  "riders": [{"id": "r", "label": "R", "kind": "fixed_flat", "value": 10,
			    "only_for_subtype": "professional"}]}`,
		},
	}

	f := factory.NewCatalogFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ParseCatalog(tt.json)
			assert.Error(t, err)
		})
	}
}

func TestParseCatalog_FlatRateAboveOne_IsFine(t *testing.T) {
	// The >1 range check is for percent kinds only; flat values are
	// whole currency amounts.
	f := factory.NewCatalogFactory()
	_, err := f.ParseCatalog(`{"product": "farm", "carrier": "menora",
	  "tiers": [{"id": "t", "label": "T", "base": 1}],
	  "riders": [{"id": "r", "label": "R", "kind": "per_unit_flat", "value": 240, "uses_units": true}]}`)
	assert.NoError(t, err)
}
