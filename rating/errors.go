/*
errors.go - Centralized error types for the rating engine

PURPOSE:
  All engine error types in one place. There is deliberately only one
  fatal error in this package: an unknown tier. Every other malformed
  input (counts, dates, option keys) degrades to a zero contribution so
  the caller always has a number to show.

USAGE:
  var ute *rating.UnknownTierError
  if errors.As(err, &ute) {
      // data-definition bug: the UI offered a tier the catalog lacks
  }

SEE ALSO:
  - catalog.go: BaseFor returns UnknownTierError
  - composer.go: aborts only on UnknownTierError
*/
package rating

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownTier is returned when a (product, carrier, tier) triple is
	// absent from the rate table. This indicates a catalog/UI mismatch, not
	// a user error: a silent default here would misprice a policy, so the
	// lookup is a hard failure.
	ErrUnknownTier = errors.New("unknown tier")

	// ErrCatalogMismatch is returned when a request is rated against a
	// catalog for a different product or carrier.
	ErrCatalogMismatch = errors.New("request does not match catalog")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownTierError reports which tier lookup failed.
type UnknownTierError struct {
	Product Product
	Carrier Carrier
	Tier    Tier
}

func (e *UnknownTierError) Error() string {
	return fmt.Sprintf("unknown tier %q for %s/%s", e.Tier, e.Product, e.Carrier)
}

func (e *UnknownTierError) Unwrap() error {
	return ErrUnknownTier
}
