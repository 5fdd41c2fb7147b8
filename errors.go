package sketch

import "errors"

// ErrInvalidArgument is the single error kind reported by the shape layer.
// Every validation failure wraps it, so callers can test with errors.Is.
var ErrInvalidArgument = errors.New("sketch: invalid argument")

// ArgumentError describes which operation rejected its input and why.
type ArgumentError struct {
	// Op is the constructor or function that failed, e.g. "NewCircle".
	Op string

	// Reason states the violated requirement.
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return "sketch: " + e.Op + ": " + e.Reason
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArg(op, reason string) error {
	return &ArgumentError{Op: op, Reason: reason}
}
