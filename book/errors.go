package book

import "errors"

var (
	// ErrInvalidSide is returned when an order's Side is neither Bid nor Ask.
	// The call fails synchronously and the book is left unchanged.
	ErrInvalidSide = errors.New("book: invalid order side")

	// ErrInvalidSize is returned when an order's Size is not positive.
	// The source spec leaves this undefined (it would rest as a zero-size
	// ghost order); this implementation rejects it outright — see
	// DESIGN.md for the reasoning.
	ErrInvalidSize = errors.New("book: order size must be positive")
)
