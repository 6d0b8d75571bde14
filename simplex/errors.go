package simplex

import (
	"errors"
	"fmt"
)

// ErrVertexOrder indicates a vertex set was re-submitted with an order
// conflicting with the previously recorded one. Use errors.Is to test for
// it; the concrete *VertexOrderError carries both orders.
var ErrVertexOrder = errors.New("simplex: conflicting vertex order")

// VertexOrderError reports the two conflicting orders of one vertex set.
// It unwraps to ErrVertexOrder.
type VertexOrderError struct {
	// Previous is the order recorded first (the canonical one).
	Previous Simplex
	// Given is the conflicting order of the later submission.
	Given Simplex
}

// Error implements the error interface, naming both orders.
func (e *VertexOrderError) Error() string {
	return fmt.Sprintf("simplex: conflicting vertex order: previously (%s), got (%s)",
		e.Previous.Key(), e.Given.Key())
}

// Unwrap makes errors.Is(err, ErrVertexOrder) succeed.
func (e *VertexOrderError) Unwrap() error { return ErrVertexOrder }
