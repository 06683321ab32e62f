package interval

import (
	"fmt"

	"github.com/rangetools/rangecheck.go/constraints"
)

// Interval defines the boundaries around a contiguous span of values (i.e. "integers from 1 to 100 inclusive").
//
// It is not possible to iterate over the contained values. Each Interval may be bounded or unbounded. If bounded,
// there is an associated endpoint value and the Interval is considered to be either open (does not include the
// endpoint) or closed (includes the endpoint) on that side.
//
// With three possibilities on each side, this yields nine basic types of Intervals, enumerated below:
//
// Notation         Definition          Factory method
// (a .. b)         {x | a < x < b}     Open
// [a .. b]         {x | a <= x <= b}   Closed
// (a .. b]         {x | a < x <= b}    OpenClosed
// [a .. b)         {x | a <= x < b}    ClosedOpen
// (a .. +INF)      {x | x > a}         GreaterThan
// [a .. +INF)      {x | x >= a}        AtLeast
// (-INF .. b)      {x | x < b}         LessThan
// (-INF .. b]      {x | x <= b}        AtMost
// (-INF .. +INF)   {x}                 All
//
// When both endpoints exist, the upper endpoint may not be less than the lower. The endpoints may be equal only if at
// least one of the bounds is closed.
type Interval[T constraints.Ordered] struct {
	lowerEndPoint *EndPoint[T]
	upperEndPoint *EndPoint[T]
}

// All returns an Interval that contains all possible values.
func All[T constraints.Ordered]() *Interval[T] {
	return &Interval[T]{}
}

// AtLeast returns an Interval that contains all values greater than or equal to lower.
func AtLeast[T constraints.Ordered](lower T) *Interval[T] {
	return &Interval[T]{
		lowerEndPoint: &EndPoint[T]{value: lower, boundType: BoundTypeClosed},
	}
}

// AtMost returns an Interval that contains all values less than or equal to upper.
func AtMost[T constraints.Ordered](upper T) *Interval[T] {
	return &Interval[T]{
		upperEndPoint: &EndPoint[T]{value: upper, boundType: BoundTypeClosed},
	}
}

// Closed returns an Interval that contains all values greater than or equal to lower and less than or equal to upper.
func Closed[T constraints.Ordered](lower T, upper T) *Interval[T] {
	if lower > upper {
		panic("lower needs to be smaller or equal than upper")
	}

	return &Interval[T]{
		lowerEndPoint: &EndPoint[T]{value: lower, boundType: BoundTypeClosed},
		upperEndPoint: &EndPoint[T]{value: upper, boundType: BoundTypeClosed},
	}
}

// ClosedOpen returns an Interval that contains all values greater than or equal to lower and strictly less than upper.
func ClosedOpen[T constraints.Ordered](lower T, upper T) *Interval[T] {
	if lower > upper {
		panic("lower needs to be smaller or equal than upper")
	}

	return &Interval[T]{
		lowerEndPoint: &EndPoint[T]{value: lower, boundType: BoundTypeClosed},
		upperEndPoint: &EndPoint[T]{value: upper, boundType: BoundTypeOpen},
	}
}

// GreaterThan returns an Interval that contains all values strictly greater than lower.
func GreaterThan[T constraints.Ordered](lower T) *Interval[T] {
	return &Interval[T]{
		lowerEndPoint: &EndPoint[T]{value: lower, boundType: BoundTypeOpen},
	}
}

// LessThan returns an Interval that contains all values strictly less than upper.
func LessThan[T constraints.Ordered](upper T) *Interval[T] {
	return &Interval[T]{
		upperEndPoint: &EndPoint[T]{value: upper, boundType: BoundTypeOpen},
	}
}

// Open returns an Interval that contains all values strictly greater than lower and strictly less than upper.
func Open[T constraints.Ordered](lower T, upper T) *Interval[T] {
	if lower >= upper {
		panic("lower needs to be smaller than upper")
	}

	return &Interval[T]{
		lowerEndPoint: &EndPoint[T]{value: lower, boundType: BoundTypeOpen},
		upperEndPoint: &EndPoint[T]{value: upper, boundType: BoundTypeOpen},
	}
}

// OpenClosed returns an Interval that contains all values strictly greater than lower and less than or equal to upper.
func OpenClosed[T constraints.Ordered](lower T, upper T) *Interval[T] {
	if lower > upper {
		panic("lower needs to be smaller or equal than upper")
	}

	return &Interval[T]{
		lowerEndPoint: &EndPoint[T]{value: lower, boundType: BoundTypeOpen},
		upperEndPoint: &EndPoint[T]{value: upper, boundType: BoundTypeClosed},
	}
}

// Contains returns true if value is within the bounds of this Interval.
//
// Each side is tested with an affirmative comparison, so a value that is incomparable to an endpoint (float NaN)
// never counts as contained. The fully unbounded Interval contains every value.
func (i *Interval[T]) Contains(value T) bool {
	return i.aboveLowerBound(value) && i.belowUpperBound(value)
}

func (i *Interval[T]) aboveLowerBound(value T) bool {
	if i.lowerEndPoint == nil {
		return true
	}

	if i.lowerEndPoint.boundType == BoundTypeClosed {
		return value >= i.lowerEndPoint.value
	}

	return value > i.lowerEndPoint.value
}

func (i *Interval[T]) belowUpperBound(value T) bool {
	if i.upperEndPoint == nil {
		return true
	}

	if i.upperEndPoint.boundType == BoundTypeClosed {
		return value <= i.upperEndPoint.value
	}

	return value < i.upperEndPoint.value
}

// Empty returns true if this Interval is of the form [v..v) or (v..v]. This does not encompass Intervals of the form
// (v..v), because such Intervals are invalid and can't be constructed at all.
//
// Note that certain discrete Intervals such as the integer Interval (3..4) are not considered empty, even though they
// contain no actual values.
func (i *Interval[T]) Empty() bool {
	return i.lowerEndPoint != nil && i.upperEndPoint != nil && i.lowerEndPoint.value == i.upperEndPoint.value &&
		i.lowerEndPoint.boundType != i.upperEndPoint.boundType
}

// HasLowerBound returns true if this Interval has a lower EndPoint.
func (i *Interval[T]) HasLowerBound() bool {
	return i.lowerEndPoint != nil
}

// HasUpperBound returns true if this Interval has an upper EndPoint.
func (i *Interval[T]) HasUpperBound() bool {
	return i.upperEndPoint != nil
}

// LowerBoundType returns the type of this Interval's lower bound - BoundTypeClosed if the Interval includes its lower
// EndPoint and BoundTypeOpen if it does not include its lower EndPoint.
func (i *Interval[T]) LowerBoundType() BoundType {
	if i.lowerEndPoint == nil {
		panic("Interval has no lower bound - check HasLowerBound() before calling this method")
	}

	return i.lowerEndPoint.boundType
}

// LowerEndPoint returns the lower EndPoint of this Interval. It panics if the Interval has no lower EndPoint.
func (i *Interval[T]) LowerEndPoint() *EndPoint[T] {
	if i.lowerEndPoint == nil {
		panic("Interval has no lower EndPoint - check HasLowerBound() before calling this method")
	}

	return i.lowerEndPoint
}

// UpperBoundType returns the type of this Interval's upper bound - BoundTypeClosed if the Interval includes its upper
// EndPoint and BoundTypeOpen if it does not include its upper EndPoint.
func (i *Interval[T]) UpperBoundType() BoundType {
	if i.upperEndPoint == nil {
		panic("Interval has no upper bound - check HasUpperBound() before calling this method")
	}

	return i.upperEndPoint.boundType
}

// UpperEndPoint returns the upper EndPoint of this Interval. It panics if the Interval has no upper EndPoint.
func (i *Interval[T]) UpperEndPoint() *EndPoint[T] {
	if i.upperEndPoint == nil {
		panic("Interval has no upper EndPoint - check HasUpperBound() before calling this method")
	}

	return i.upperEndPoint
}

// Bounds returns the descriptive pair of Edges of this Interval. A closed EndPoint maps to an included Edge, an open
// EndPoint to an excluded Edge and a missing EndPoint to an unbounded Edge.
func (i *Interval[T]) Bounds() Bounds[T] {
	bounds := Bounds[T]{
		Lower: UnboundedEdge[T](),
		Upper: UnboundedEdge[T](),
	}

	if i.lowerEndPoint != nil {
		if i.lowerEndPoint.boundType == BoundTypeClosed {
			bounds.Lower = IncludedEdge(i.lowerEndPoint.value)
		} else {
			bounds.Lower = ExcludedEdge(i.lowerEndPoint.value)
		}
	}

	if i.upperEndPoint != nil {
		if i.upperEndPoint.boundType == BoundTypeClosed {
			bounds.Upper = IncludedEdge(i.upperEndPoint.value)
		} else {
			bounds.Upper = ExcludedEdge(i.upperEndPoint.value)
		}
	}

	return bounds
}

// String returns a human-readable version of the Interval.
func (i *Interval[T]) String() string {
	var lowerEndPoint string
	switch {
	case i.lowerEndPoint == nil:
		lowerEndPoint = "(-INF"
	case i.lowerEndPoint.boundType == BoundTypeOpen:
		lowerEndPoint = fmt.Sprintf("(%v", i.lowerEndPoint.value)
	case i.lowerEndPoint.boundType == BoundTypeClosed:
		lowerEndPoint = fmt.Sprintf("[%v", i.lowerEndPoint.value)
	}

	var upperEndPoint string
	switch {
	case i.upperEndPoint == nil:
		upperEndPoint = "+INF)"
	case i.upperEndPoint.boundType == BoundTypeOpen:
		upperEndPoint = fmt.Sprintf("%v)", i.upperEndPoint.value)
	case i.upperEndPoint.boundType == BoundTypeClosed:
		upperEndPoint = fmt.Sprintf("%v]", i.upperEndPoint.value)
	}

	return "Interval" + lowerEndPoint + " .. " + upperEndPoint
}
