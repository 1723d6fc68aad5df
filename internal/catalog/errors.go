package catalog

import "errors"

// ErrEmptyCatalog indicates Build was called with no prototypes.
var ErrEmptyCatalog = errors.New("catalog: prototype list must not be empty")

// ErrInvalidWeight indicates a prototype declared a non-positive weight.
var ErrInvalidWeight = errors.New("catalog: prototype weight must be >= 1")

// ErrTooManyPrototypes indicates a catalog larger than the bitset word width
// this build supports was requested.
var ErrTooManyPrototypes = errors.New("catalog: prototype count exceeds supported bitset width")
