package interval

import (
	"github.com/rangetools/rangecheck.go/constraints"
	"github.com/rangetools/rangecheck.go/stringify"
)

// EndPoint contains information about where Intervals start and end. It combines a threshold value with a BoundType.
type EndPoint[T constraints.Ordered] struct {
	value     T
	boundType BoundType
}

// NewEndPoint creates a new EndPoint from the given details.
func NewEndPoint[T constraints.Ordered](value T, boundType BoundType) *EndPoint[T] {
	return &EndPoint[T]{
		value:     value,
		boundType: boundType,
	}
}

// Value returns the threshold value of the EndPoint.
func (e *EndPoint[T]) Value() T {
	return e.value
}

// BoundType returns the BoundType of the EndPoint.
func (e *EndPoint[T]) BoundType() BoundType {
	return e.boundType
}

// String returns a human-readable version of the EndPoint.
func (e *EndPoint[T]) String() string {
	return stringify.Struct("EndPoint",
		stringify.NewStructField("value", e.value),
		stringify.NewStructField("boundType", e.boundType),
	)
}
