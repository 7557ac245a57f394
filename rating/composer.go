/*
composer.go - The premium composer and its stacking algorithm

PURPOSE:
  Applies, in catalog order, the tier lookup and then each active rider,
  producing an ordered breakdown ledger and an annual total. This file is
  the heart of the engine: the base-vs-cumulative stacking algorithm and
  its per-rider override live here.

THE STACKING ALGORITHM:
  runningBase starts at the tier base and only ever grows in cumulative
  mode. For each active rider, in catalog order:

  1. Resolve the rider's effective base:
     - Flat kinds and PercentOfFixedBase ignore stacking entirely.
     - Base mode, or a rider pinned to the base: the untouched original.
     - Otherwise (cumulative, unpinned): the running base.
  2. Evaluate the amount, rounded at this line (see rider.go).
  3. Append {label, amount} to the ledger; add the amount to the total.
  4. Only in cumulative mode, and only when the rider is NOT pinned to
     the base: runningBase += amount. A pinned rider is included in the
     total but excluded from the compounding chain - later riders
     compound on base plus prior unpinned amounts, skipping it.

  Rounding happens at every line item, so the total is the sum of
  already-rounded lines. It is NOT round(base × (1 + Σrate)) and must
  never be "simplified" to that.

PURITY:
  ComputeBreakdown allocates a fresh Breakdown on every call and touches
  no shared state. Identical requests produce deeply equal breakdowns;
  any input change means a full recompute, never an incremental patch
  (partial updates are a correctness hazard given the order-dependent
  chain).
*/
package rating

import "github.com/shopspring/decimal"

// =============================================================================
// BREAKDOWN LEDGER - Ordered line items backing the annual total
// =============================================================================

// LineItem is one row of the premium breakdown.
type LineItem struct {
	// RiderID is empty for the tier base line.
	RiderID string
	Label   string
	Amount  decimal.Decimal
}

// Breakdown is the itemized annual premium. It is created fresh per
// computation and never mutated after construction.
type Breakdown struct {
	Lines       []LineItem
	AnnualTotal decimal.Decimal
}

// ledger is the pure recorder behind a Breakdown: it accumulates lines in
// emission order and keeps the running total. No independent logic.
type ledger struct {
	lines []LineItem
	total decimal.Decimal
}

func (l *ledger) append(riderID, label string, amount decimal.Decimal) {
	l.lines = append(l.lines, LineItem{RiderID: riderID, Label: label, Amount: amount})
	l.total = l.total.Add(amount)
}

func (l *ledger) breakdown() *Breakdown {
	return &Breakdown{Lines: l.lines, AnnualTotal: l.total}
}

// =============================================================================
// PREMIUM COMPOSER
// =============================================================================

// ComputeBreakdown rates a request against a catalog. The only failure
// mode is a catalog-integrity violation (unknown tier, mismatched
// catalog); every malformed user input degrades to a zero contribution.
func ComputeBreakdown(cat *Catalog, req RatingRequest) (*Breakdown, error) {
	if req.Product != cat.Product || req.Carrier != cat.Carrier {
		return nil, ErrCatalogMismatch
	}

	base, err := cat.BaseFor(req.Tier)
	if err != nil {
		return nil, err
	}

	led := &ledger{}
	led.append("", cat.TierLabel(req.Tier), base)

	runningBase := base
	for _, r := range cat.RidersFor(req.Subtype) {
		sel := req.selection(r.ID)
		if !sel.Selected {
			continue
		}

		baseOnly := req.baseOnly(r)

		effectiveBase := base
		if req.Stacking == StackCumulative && !baseOnly {
			effectiveBase = runningBase
		}

		amount := r.amount(base, effectiveBase, sel)
		led.append(r.ID, r.Label, amount)

		if req.Stacking == StackCumulative && !baseOnly {
			runningBase = runningBase.Add(amount)
		}
	}

	return led.breakdown(), nil
}

// =============================================================================
// QUOTE - Breakdown plus prorated period premium
// =============================================================================

// Quote bundles the annual breakdown with the period quote for the
// request's date range (zero when no valid range was given).
type Quote struct {
	Breakdown *Breakdown
	Period    PeriodQuote
}

// ComputeQuote runs the full pipeline: breakdown, then proration of its
// annual total over the request's date range.
func ComputeQuote(cat *Catalog, req RatingRequest) (*Quote, error) {
	bd, err := ComputeBreakdown(cat, req)
	if err != nil {
		return nil, err
	}
	return &Quote{
		Breakdown: bd,
		Period:    Prorate(bd.AnnualTotal, req.StartDate, req.EndDate),
	}, nil
}
