package rangecheck

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/rangetools/rangecheck.go/constraints"
	"github.com/rangetools/rangecheck.go/interval"
)

var (
	// ErrOutOfRange is returned if the containment test of a checked value failed. It is the class that every
	// OutOfRangeError matches via errors.Is, independent of the value type.
	ErrOutOfRange = xerrors.New("value outside of range")
)

// OutOfRangeError is the error that gets returned when a Check fails. It carries the exact Bounds that were tested
// and the value that lies outside of them, so callers can format a precise diagnostic without re-deriving context.
type OutOfRangeError[T constraints.Ordered] struct {
	// AllowedRange holds the Bounds of the Interval that was searched.
	AllowedRange interval.Bounds[T]

	// OutsideValue holds the value that lies outside of the AllowedRange.
	OutsideValue T
}

// Error returns a human-readable version of the OutOfRangeError.
func (e *OutOfRangeError[T]) Error() string {
	return fmt.Sprintf("value (%v) outside of range (%s)", e.OutsideValue, e.AllowedRange)
}

// Is makes every OutOfRangeError match the ErrOutOfRange sentinel via errors.Is, so callers can detect the error
// class without knowing the value type of the failed Check.
func (e *OutOfRangeError[T]) Is(target error) bool {
	return target == ErrOutOfRange
}
