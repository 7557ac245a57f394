/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract: the UI gets
  whole-unit integer amounts and plain strings, while the engine keeps
  decimals and typed identifiers.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  DTOs are pure data carriers; validation happens in handlers and in the
  factory. Quote inputs are deliberately lenient (counts/dates degrade to
  zero), so there is little to validate on that path.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/catalog.go: CatalogJSON, reused as the catalog wire format
*/
package api

import (
	"github.com/equisure/rating-engine/factory"
	"github.com/equisure/rating-engine/rating"
)

// =============================================================================
// CATALOG TYPES
// =============================================================================

// CatalogSummaryDTO is one row of the catalog listing.
type CatalogSummaryDTO struct {
	Product string `json:"product"`
	Carrier string `json:"carrier"`
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// CatalogDTO is the full catalog document plus storage metadata.
type CatalogDTO struct {
	Product   string              `json:"product"`
	Carrier   string              `json:"carrier"`
	Name      string              `json:"name"`
	Version   int                 `json:"version"`
	Config    factory.CatalogJSON `json:"config"`
	UpdatedAt string              `json:"updated_at,omitempty"`
}

// =============================================================================
// QUOTE TYPES
// =============================================================================

// RiderSelectionDTO is the user's choice for one rider.
type RiderSelectionDTO struct {
	Selected     bool   `json:"selected"`
	OptionKey    string `json:"option_key,omitempty"`
	Units        string `json:"units,omitempty"`
	BaseOverride *bool  `json:"base_override,omitempty"`
}

// QuoteRequest is the rating request as submitted by the quoting UI.
type QuoteRequest struct {
	Product  string                       `json:"product"`
	Carrier  string                       `json:"carrier"`
	Subtype  string                       `json:"subtype,omitempty"`
	Tier     string                       `json:"tier"`
	Riders   map[string]RiderSelectionDTO `json:"riders,omitempty"`
	Stacking string                       `json:"stacking,omitempty"` // "base" (default) or "cumulative"

	// Optional inclusive date range, yyyy-mm-dd.
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// LineItemDTO is one row of the premium breakdown.
type LineItemDTO struct {
	RiderID string `json:"rider_id,omitempty"`
	Label   string `json:"label"`
	Amount  int64  `json:"amount"`
}

// QuoteDTO is the computed quote: the itemized annual premium and, when
// a valid date range was given, the prorated period premium.
type QuoteDTO struct {
	LineItems     []LineItemDTO `json:"line_items"`
	AnnualTotal   int64         `json:"annual_total"`
	Days          int           `json:"days"`
	PeriodPremium int64         `json:"period_premium"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// SCENARIO TYPES
// =============================================================================

// ScenarioDTO describes one demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Product     string `json:"product"`
}

// ScenarioResultDTO is a loaded scenario: its request and computed quote.
type ScenarioResultDTO struct {
	Scenario ScenarioDTO  `json:"scenario"`
	Request  QuoteRequest `json:"request"`
	Quote    QuoteDTO     `json:"quote"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// =============================================================================
// MAPPING HELPERS
// =============================================================================

// toRatingRequest converts the wire request to the engine's value object.
func (q QuoteRequest) toRatingRequest() rating.RatingRequest {
	req := rating.RatingRequest{
		Product:   rating.Product(q.Product),
		Carrier:   rating.Carrier(q.Carrier),
		Subtype:   rating.Subtype(q.Subtype),
		Tier:      rating.Tier(q.Tier),
		Stacking:  rating.StackBase,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	}
	if q.Stacking == string(rating.StackCumulative) {
		req.Stacking = rating.StackCumulative
	}
	if len(q.Riders) > 0 {
		req.Riders = make(map[string]rating.RiderSelection, len(q.Riders))
		for id, sel := range q.Riders {
			req.Riders[id] = rating.RiderSelection{
				Selected:     sel.Selected,
				OptionKey:    sel.OptionKey,
				Units:        sel.Units,
				BaseOverride: sel.BaseOverride,
			}
		}
	}
	return req
}

// toQuoteDTO flattens the engine quote for the wire: decimals become
// whole-unit integers (every amount is already rounded by the engine).
func toQuoteDTO(q *rating.Quote) QuoteDTO {
	dto := QuoteDTO{
		LineItems:     make([]LineItemDTO, 0, len(q.Breakdown.Lines)),
		AnnualTotal:   q.Breakdown.AnnualTotal.IntPart(),
		Days:          q.Period.Days,
		PeriodPremium: q.Period.Premium.IntPart(),
	}
	for _, line := range q.Breakdown.Lines {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			RiderID: line.RiderID,
			Label:   line.Label,
			Amount:  line.Amount.IntPart(),
		})
	}
	return dto
}
