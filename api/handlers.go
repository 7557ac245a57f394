/*
handlers.go - HTTP API handlers for the premium rating engine

PURPOSE:
  Exposes the rating engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates all computation to the rating
  package. Quotes are computed per request and never stored.

ENDPOINTS:
  Catalogs:
    GET    /api/catalogs                      List catalogs
    GET    /api/catalogs/{product}/{carrier}  Full catalog document

  Quotes:
    POST   /api/quotes                        Compute a quote

  Admin:
    POST   /api/admin/catalogs                Upsert a catalog document
    POST   /api/admin/reseed                  Reset + reseed defaults

  Scenarios:
    GET    /api/scenarios                     List demo scenarios
    POST   /api/scenarios/load                Compute a demo quote

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: catalog persistence
  - CatalogFactory: JSON to rating.Catalog conversion
  - Cached parsed catalogs, reloaded on admin mutation

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed request body
  - 404: Catalog not found
  - 422: Catalog-integrity violation (unknown tier, invalid document)
  - 500: Internal errors

SECURITY NOTE:
  Internal tool: no authentication, all endpoints are public inside the
  office network.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario definitions
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/equisure/rating-engine/factory"
	"github.com/equisure/rating-engine/products"
	"github.com/equisure/rating-engine/rating"
	"github.com/equisure/rating-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store          *sqlite.Store
	CatalogFactory *factory.CatalogFactory

	// Cached parsed catalogs for quote computation. Guarded by mu so
	// admin upserts can reload while quotes are being served.
	mu       sync.RWMutex
	catalogs map[rating.CatalogKey]*rating.Catalog
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:          store,
		CatalogFactory: factory.NewCatalogFactory(),
		catalogs:       make(map[rating.CatalogKey]*rating.Catalog),
	}
}

// LoadCatalogs loads all catalogs from the database into cache, seeding
// the canonical defaults first when the table is empty (first startup).
func (h *Handler) LoadCatalogs(ctx context.Context) error {
	records, err := h.Store.ListCatalogs(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		if err := h.seedDefaults(ctx); err != nil {
			return err
		}
		records, err = h.Store.ListCatalogs(ctx)
		if err != nil {
			return err
		}
	}

	catalogs := make(map[rating.CatalogKey]*rating.Catalog, len(records))
	for _, rec := range records {
		cat, err := h.CatalogFactory.ParseCatalog(rec.ConfigJSON)
		if err != nil {
			// A stored document that no longer validates is skipped, not
			// fatal: the remaining products stay quotable.
			continue
		}
		catalogs[cat.Key()] = cat
	}

	h.mu.Lock()
	h.catalogs = catalogs
	h.mu.Unlock()
	return nil
}

func (h *Handler) seedDefaults(ctx context.Context) error {
	for _, def := range products.Defaults() {
		rec := sqlite.CatalogRecord{
			Product:    def.Product,
			Carrier:    def.Carrier,
			Name:       def.Name,
			ConfigJSON: def.JSON,
		}
		if err := h.Store.SaveCatalog(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed catalog %s/%s: %w", def.Product, def.Carrier, err)
		}
	}
	return nil
}

// catalogFor returns the cached catalog for a key, if loaded.
func (h *Handler) catalogFor(key rating.CatalogKey) (*rating.Catalog, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cat, ok := h.catalogs[key]
	return cat, ok
}

// =============================================================================
// CATALOG HANDLERS
// =============================================================================

// ListCatalogs returns all catalogs.
// GET /api/catalogs
func (h *Handler) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListCatalogs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list catalogs", err)
		return
	}

	dtos := make([]CatalogSummaryDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, CatalogSummaryDTO{
			Product: rec.Product,
			Carrier: rec.Carrier,
			Name:    rec.Name,
			Version: rec.Version,
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCatalog returns one full catalog document.
// GET /api/catalogs/{product}/{carrier}
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	product := chi.URLParam(r, "product")
	carrier := chi.URLParam(r, "carrier")

	rec, err := h.Store.GetCatalog(r.Context(), product, carrier)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load catalog", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "catalog not found", nil)
		return
	}

	var cj factory.CatalogJSON
	if err := json.Unmarshal([]byte(rec.ConfigJSON), &cj); err != nil {
		writeError(w, http.StatusInternalServerError, "stored catalog is corrupt", err)
		return
	}

	writeJSON(w, http.StatusOK, CatalogDTO{
		Product:   rec.Product,
		Carrier:   rec.Carrier,
		Name:      rec.Name,
		Version:   rec.Version,
		Config:    cj,
		UpdatedAt: rec.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

// =============================================================================
// QUOTE HANDLER
// =============================================================================

// ComputeQuote rates a request and returns the itemized quote.
// POST /api/quotes
func (h *Handler) ComputeQuote(w http.ResponseWriter, r *http.Request) {
	var qr QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&qr); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	req := qr.toRatingRequest()
	cat, ok := h.catalogFor(rating.CatalogKey{Product: req.Product, Carrier: req.Carrier})
	if !ok {
		writeError(w, http.StatusNotFound, "catalog not found", nil)
		return
	}

	quote, err := rating.ComputeQuote(cat, req)
	if err != nil {
		// Unknown tier means the caller and the catalog disagree about
		// what is on offer - a data-definition bug, never silently priced.
		if errors.Is(err, rating.ErrUnknownTier) {
			writeError(w, http.StatusUnprocessableEntity, "unknown tier", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to compute quote", err)
		return
	}

	writeJSON(w, http.StatusOK, toQuoteDTO(quote))
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// UpsertCatalog validates and saves a catalog document, then reloads the
// cache so subsequent quotes use the new rates.
// POST /api/admin/catalogs
func (h *Handler) UpsertCatalog(w http.ResponseWriter, r *http.Request) {
	var cj factory.CatalogJSON
	if err := json.NewDecoder(r.Body).Decode(&cj); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	// The factory is the integrity gate: nothing unratable gets stored.
	if _, err := h.CatalogFactory.FromJSON(cj); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid catalog", err)
		return
	}

	raw, err := json.MarshalIndent(cj, "", "  ")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to serialize catalog", err)
		return
	}

	rec := sqlite.CatalogRecord{
		Product:    cj.Product,
		Carrier:    cj.Carrier,
		Name:       cj.Name,
		ConfigJSON: string(raw),
	}
	if err := h.Store.SaveCatalog(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save catalog", err)
		return
	}
	if err := h.LoadCatalogs(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reload catalogs", err)
		return
	}

	saved, err := h.Store.GetCatalog(r.Context(), cj.Product, cj.Carrier)
	if err != nil || saved == nil {
		writeError(w, http.StatusInternalServerError, "failed to load saved catalog", err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogSummaryDTO{
		Product: saved.Product,
		Carrier: saved.Carrier,
		Name:    saved.Name,
		Version: saved.Version,
	})
}

// Reseed clears the catalogs table and reseeds the canonical defaults.
// Dev/demo only.
// POST /api/admin/reseed
func (h *Handler) Reseed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reset catalogs", err)
		return
	}
	if err := h.LoadCatalogs(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reseed catalogs", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reseeded"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
