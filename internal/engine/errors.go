package engine

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm is returned when the key is not registered.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInputTooLarge is returned when the array exceeds the configured
	// maximum size.
	ErrInputTooLarge = errors.New("input too large")

	// ErrReplayMismatch is returned when replaying the trace over the
	// initial array does not reproduce the sorted array, or when the trace
	// breaks the terminal marker rule.
	ErrReplayMismatch = errors.New("replay mismatch")

	// ErrNoStore is returned by store-backed operations on an engine built
	// without WithStore.
	ErrNoStore = errors.New("engine has no run log")
)

// RunError describes a failed run with the algorithm key that was
// requested. It unwraps to one of the sentinel errors above or to a
// context/store error.
type RunError struct {
	Algorithm string
	Err       error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return fmt.Sprintf("run %s: %v", e.Algorithm, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RunError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err was caused by the caller's request
// rather than by the engine: unknown algorithm or oversized input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnknownAlgorithm) || errors.Is(err, ErrInputTooLarge)
}

// Status returns a short label for err, suitable as a metrics label value.
func Status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnknownAlgorithm):
		return "unknown_algorithm"
	case errors.Is(err, ErrInputTooLarge):
		return "too_large"
	case errors.Is(err, ErrReplayMismatch):
		return "replay_mismatch"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
