package rangecheck

import (
	"github.com/rangetools/rangecheck.go/constraints"
	"github.com/rangetools/rangecheck.go/interval"
)

// Check tests whether the given value is within the given Interval. If it is, it re-returns the value unmodified.
// Otherwise it returns an OutOfRangeError that carries both the Bounds of the Interval and the offending value.
//
// Check is a pure decision function plus error construction: it never logs, retries or panics for any well-typed
// input.
func Check[T constraints.Ordered](value T, iv *interval.Interval[T]) (T, error) {
	if iv.Contains(value) {
		return value, nil
	}

	var zeroValue T

	return zeroValue, &OutOfRangeError[T]{
		AllowedRange: iv.Bounds(),
		OutsideValue: value,
	}
}

// Contains returns true if the given value is within the bounds of the given Interval.
func Contains[T constraints.Ordered](iv *interval.Interval[T], value T) bool {
	return iv.Contains(value)
}

// IsWithin is the symmetric convenience form of Contains that leads with the value.
func IsWithin[T constraints.Ordered](value T, iv *interval.Interval[T]) bool {
	return iv.Contains(value)
}

// Generify converts an OutOfRangeError to an OutOfRangeError over another value type using the given conversion
// function. The conversion function is expected to be value-preserving (i.e. a widening conversion), which allows
// checks over different but convertible value types to be unified under a single error type.
func Generify[T constraints.Ordered, U constraints.Ordered](err *OutOfRangeError[T], convert func(T) U) *OutOfRangeError[U] {
	return &OutOfRangeError[U]{
		AllowedRange: interval.ConvertBounds(err.AllowedRange, convert),
		OutsideValue: convert(err.OutsideValue),
	}
}
