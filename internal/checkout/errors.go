package checkout

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount is returned when the computed charge is not a
// positive amount, e.g. for an empty cart. The processor is never
// called with such an amount.
var ErrInvalidAmount = errors.New("charge amount must be positive")

// MissingRecordError means a cart item referenced a catalog ID that has
// no record. The whole charge fails; a missing price never silently
// contributes zero to the total.
type MissingRecordError struct {
	Kind string // "grocery", "menuitem", "topping" or "topping option"
	ID   string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("no %s record for %q", e.Kind, e.ID)
}

// MalformedItemError means a cart item is missing its ID, carries an
// unknown categoryType or a non-positive quantity. Boundary validation
// should have caught it; the aggregator rejects it instead of crashing.
type MalformedItemError struct {
	Index  int
	Reason string
}

func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("cart item %d: %s", e.Index, e.Reason)
}
