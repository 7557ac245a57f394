/*
handlers_test.go - End-to-end tests for the HTTP API

Tests run against a seeded :memory: store through the real router, so
they cover routing, JSON mapping, catalog caching and error status
mapping in one pass.
*/
package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equisure/rating-engine/api"
	"github.com/equisure/rating-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	h := api.NewHandler(store)
	require.NoError(t, h.LoadCatalogs(context.Background()))

	srv := httptest.NewServer(api.NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// =============================================================================
// CATALOG ENDPOINTS
// =============================================================================

func TestListCatalogs_SeededDefaults(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/catalogs")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	catalogs := decode[[]api.CatalogSummaryDTO](t, resp)
	assert.Len(t, catalogs, 8)
	for _, c := range catalogs {
		assert.Equal(t, 1, c.Version)
	}
}

func TestGetCatalog(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/catalogs/farm/menora")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cat := decode[api.CatalogDTO](t, resp)
	assert.Equal(t, "farm", cat.Product)
	assert.Equal(t, "menora", cat.Carrier)
	assert.NotEmpty(t, cat.Config.Tiers)
	assert.NotEmpty(t, cat.Config.Riders)
}

func TestGetCatalog_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/catalogs/yacht/menora")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// QUOTE ENDPOINT
// =============================================================================

func TestComputeQuote_CumulativeFarmQuote(t *testing.T) {
	// GIVEN: The seeded farm/menora catalog
	// WHEN: Quoting the 1M tier with trips and the small headcount
	//       bracket in cumulative mode, over a one-day period
	// THEN: 4000 + 400 + 660 = 5060 annual, 1 day, round(5060/365) = 14

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/quotes", api.QuoteRequest{
		Product: "farm",
		Carrier: "menora",
		Tier:    "liability-1m",
		Riders: map[string]api.RiderSelectionDTO{
			"trips":     {Selected: true},
			"headcount": {Selected: true, OptionKey: "small"},
		},
		Stacking:  "cumulative",
		StartDate: "2025-01-01",
		EndDate:   "2025-01-01",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	quote := decode[api.QuoteDTO](t, resp)
	require.Len(t, quote.LineItems, 3)
	assert.Equal(t, int64(4000), quote.LineItems[0].Amount)
	assert.Equal(t, int64(400), quote.LineItems[1].Amount)
	assert.Equal(t, int64(660), quote.LineItems[2].Amount)
	assert.Equal(t, int64(5060), quote.AnnualTotal)
	assert.Equal(t, 1, quote.Days)
	assert.Equal(t, int64(14), quote.PeriodPremium)
}

func TestComputeQuote_NoDates_ZeroPeriod(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/quotes", api.QuoteRequest{
		Product: "trainer", Carrier: "hachshara", Tier: "liability-500k",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	quote := decode[api.QuoteDTO](t, resp)
	assert.Equal(t, int64(750), quote.AnnualTotal)
	assert.Equal(t, 0, quote.Days)
	assert.Equal(t, int64(0), quote.PeriodPremium)
}

func TestComputeQuote_UnknownTier_Unprocessable(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/quotes", api.QuoteRequest{
		Product: "farm", Carrier: "menora", Tier: "liability-9m",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestComputeQuote_UnknownCatalog_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/quotes", api.QuoteRequest{
		Product: "yacht", Carrier: "menora", Tier: "liability-1m",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestComputeQuote_MalformedBody_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/quotes", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// ADMIN ENDPOINTS
// =============================================================================

func TestUpsertCatalog_NewRatesAffectQuotes(t *testing.T) {
	// GIVEN: A catalog edit raising the trainer 500K base to 800
	// WHEN: Upserting it and quoting again
	// THEN: The version bumps and the quote uses the new rate

	srv := newTestServer(t)

	edit := map[string]any{
		"product": "trainer",
		"carrier": "menora",
		"name":    "Fitness & Martial-Arts Trainers - Menora",
		"tiers": []map[string]any{
			{"id": "liability-500k", "label": "Liability up to 500,000", "base": 800},
		},
		"riders": []map[string]any{
			{"id": "outdoor", "label": "Outdoor and field activities", "kind": "fixed_flat", "value": 150},
		},
	}
	resp := postJSON(t, srv.URL+"/api/admin/catalogs", edit)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	summary := decode[api.CatalogSummaryDTO](t, resp)
	assert.Equal(t, 2, summary.Version)

	resp = postJSON(t, srv.URL+"/api/quotes", api.QuoteRequest{
		Product: "trainer", Carrier: "menora", Tier: "liability-500k",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	quote := decode[api.QuoteDTO](t, resp)
	assert.Equal(t, int64(800), quote.AnnualTotal)
}

func TestUpsertCatalog_InvalidDocument_Rejected(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/admin/catalogs", map[string]any{
		"product": "trainer",
		"carrier": "menora",
		"tiers":   []map[string]any{},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestReseed_RestoresDefaults(t *testing.T) {
	srv := newTestServer(t)

	// Drift a catalog away from the defaults first.
	edit := map[string]any{
		"product": "trainer",
		"carrier": "menora",
		"name":    "Trainers",
		"tiers": []map[string]any{
			{"id": "liability-500k", "label": "Liability up to 500,000", "base": 9999},
		},
		"riders": []map[string]any{},
	}
	resp := postJSON(t, srv.URL+"/api/admin/catalogs", edit)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/admin/reseed", map[string]any{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/quotes", api.QuoteRequest{
		Product: "trainer", Carrier: "menora", Tier: "liability-500k",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	quote := decode[api.QuoteDTO](t, resp)
	assert.Equal(t, int64(750), quote.AnnualTotal)
}

// =============================================================================
// SCENARIO ENDPOINTS
// =============================================================================

func TestScenarios_ListAndLoad(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/scenarios")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]api.ScenarioDTO](t, resp)
	assert.NotEmpty(t, list)

	resp = postJSON(t, srv.URL+"/api/scenarios/load", api.LoadScenarioRequest{ScenarioID: "farm-cumulative"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[api.ScenarioResultDTO](t, resp)
	assert.Equal(t, "farm-cumulative", result.Scenario.ID)
	assert.Equal(t, int64(5060), result.Quote.AnnualTotal)
}

func TestScenarios_BaseVsCumulative(t *testing.T) {
	// The paired farm scenarios exist to show the stacking difference:
	// cumulative compounds the headcount rider on 4400, base does not.
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/scenarios/load", api.LoadScenarioRequest{ScenarioID: "farm-base"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	base := decode[api.ScenarioResultDTO](t, resp)

	resp = postJSON(t, srv.URL+"/api/scenarios/load", api.LoadScenarioRequest{ScenarioID: "farm-cumulative"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cumulative := decode[api.ScenarioResultDTO](t, resp)

	assert.Equal(t, int64(5000), base.Quote.AnnualTotal)
	assert.Equal(t, int64(5060), cumulative.Quote.AnnualTotal)
}

func TestScenarios_UnknownID(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/scenarios/load", api.LoadScenarioRequest{ScenarioID: "no-such"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
