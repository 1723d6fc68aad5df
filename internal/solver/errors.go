package solver

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by every construction-time
// validation failure, so callers can use errors.Is(err, ErrInvalidInput)
// regardless of which field failed.
var ErrInvalidInput = errors.New("solver: invalid input")

// ErrCancelled indicates the caller's context was cancelled before a grid
// was produced. No partial grid is ever returned alongside it.
var ErrCancelled = errors.New("solver: cancelled")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// RetryCountExceededError reports that the solver exhausted its retry
// budget without reaching a fully collapsed grid.
type RetryCountExceededError struct {
	RetryCount int
}

func (e *RetryCountExceededError) Error() string {
	return fmt.Sprintf("solver: exceeded retry count %d", e.RetryCount)
}
