/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:
  Provides pre-built rating requests that demonstrate specific engine
  behaviors against the seeded catalogs. Loading a scenario computes its
  quote on the spot and returns both; nothing is persisted.

AVAILABLE SCENARIOS:
  farm-cumulative:        Farm quote where riders compound on a running total
  farm-base:              The same selections in base mode, for comparison
  instructor-additional:  Additional instructors priced off the fixed tier base
  trainer-prorated:       Short-period trainer policy with inclusive day count

ADDING NEW SCENARIOS:
 1. Add to the 'scenarios' slice with ID, name, description
 2. Add its request to scenarioRequests

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
  - products package: The catalogs these requests rate against
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/equisure/rating-engine/rating"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "farm-cumulative",
		Name:        "Farm, Cumulative Stacking",
		Description: "1M farm policy where the headcount rider compounds on the base plus the trips rider",
		Product:     "farm",
	},
	{
		ID:          "farm-base",
		Name:        "Farm, Base Stacking",
		Description: "The same farm selections with every rider computed off the untouched base",
		Product:     "farm",
	},
	{
		ID:          "instructor-additional",
		Name:        "Instructor with Additional Instructors",
		Description: "Professional instructor with two additional instructors at 50% of the tier premium each",
		Product:     "instructor",
	},
	{
		ID:          "trainer-prorated",
		Name:        "Trainer, Ten-Day Period",
		Description: "Trainer policy prorated over a ten-day inclusive range",
		Product:     "trainer",
	},
}

var scenarioRequests = map[string]QuoteRequest{
	"farm-cumulative": {
		Product: "farm",
		Carrier: "menora",
		Tier:    "liability-1m",
		Riders: map[string]RiderSelectionDTO{
			"trips":     {Selected: true},
			"headcount": {Selected: true, OptionKey: "small"},
		},
		Stacking: string(rating.StackCumulative),
	},
	"farm-base": {
		Product: "farm",
		Carrier: "menora",
		Tier:    "liability-1m",
		Riders: map[string]RiderSelectionDTO{
			"trips":     {Selected: true},
			"headcount": {Selected: true, OptionKey: "small"},
		},
		Stacking: string(rating.StackBase),
	},
	"instructor-additional": {
		Product: "instructor",
		Carrier: "menora",
		Subtype: "professional",
		Tier:    "professional-1m",
		Riders: map[string]RiderSelectionDTO{
			"additional-instructors": {Selected: true, Units: "2"},
		},
		Stacking: string(rating.StackBase),
	},
	"trainer-prorated": {
		Product:   "trainer",
		Carrier:   "hachshara",
		Tier:      "liability-500k",
		Stacking:  string(rating.StackBase),
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
	},
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns available scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario computes and returns the quote for a named scenario.
// POST /api/scenarios/load
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	qr, ok := scenarioRequests[req.ScenarioID]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scenario", nil)
		return
	}

	var dto ScenarioDTO
	for _, s := range scenarios {
		if s.ID == req.ScenarioID {
			dto = s
			break
		}
	}

	rr := qr.toRatingRequest()
	cat, found := h.catalogFor(rating.CatalogKey{Product: rr.Product, Carrier: rr.Carrier})
	if !found {
		writeError(w, http.StatusNotFound, "catalog not found", nil)
		return
	}

	quote, err := rating.ComputeQuote(cat, rr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute scenario quote", err)
		return
	}

	writeJSON(w, http.StatusOK, ScenarioResultDTO{
		Scenario: dto,
		Request:  qr,
		Quote:    toQuoteDTO(quote),
	})
}
