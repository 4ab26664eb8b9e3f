package viapattern

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is wrapped by every argument value error of this package
var ErrInvalidValue = errors.New("invalid value")

var (
	ErrInvalidCount       = fmt.Errorf("%w: the count argument must be greater or equal 1", ErrInvalidValue)
	ErrUnsupportedPattern = fmt.Errorf("%w: unsupported pattern", ErrInvalidValue)

	ErrUnsupportedDirection = fmt.Errorf("%w: unsupported direction", ErrInvalidValue)

	ErrNegativeTrackWidth = fmt.Errorf("%w: the track_width argument must be greater or equal 0", ErrInvalidValue)
	ErrNegativeExtraSpace = fmt.Errorf("%w: the extra_space argument must be greater or equal 0", ErrInvalidValue)

	ErrViaNotOnBoard = fmt.Errorf("%w: the via must be an element of the board", ErrInvalidValue)
	ErrNetNotFound   = fmt.Errorf("%w: net not found", ErrInvalidValue)

	// ErrStaggerGeometry is returned when the stagger row distance has no
	// real solution for the given via, clearance and track width.
	ErrStaggerGeometry = fmt.Errorf("%w: stagger pattern cannot be solved for these dimensions", ErrInvalidValue)

	ErrUnsupportedRotateDirection = fmt.Errorf("%w: unsupported rotate direction", ErrInvalidValue)
	ErrReferenceIndex             = fmt.Errorf("%w: reference index out of range", ErrInvalidValue)
)

// NetTypeError reports a net argument that is neither a name nor a net code.
// It is a distinct type so callers can tell a malformed argument from a
// well-formed one with a bad value.
type NetTypeError struct {
	Value any
}

func (e *NetTypeError) Error() string {
	return fmt.Sprintf("the net argument must be a string or an integer, got %T", e.Value)
}
