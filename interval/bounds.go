package interval

import (
	"fmt"
	"strings"

	"github.com/rangetools/rangecheck.go/constraints"
)

// EdgeType indicates how an Interval expressed one of its Edges: with the threshold value included, with the
// threshold value excluded or without any threshold at all.
type EdgeType uint8

const (
	// EdgeTypeIncluded indicates that the Edge value is part of the Interval.
	EdgeTypeIncluded EdgeType = iota

	// EdgeTypeExcluded indicates that the Edge value is not part of the Interval.
	EdgeTypeExcluded

	// EdgeTypeUnbounded indicates that the Interval has no threshold on this side.
	EdgeTypeUnbounded
)

// EdgeTypeNames contains a dictionary of the names of EdgeTypes.
var EdgeTypeNames = [...]string{
	"EdgeTypeIncluded",
	"EdgeTypeExcluded",
	"EdgeTypeUnbounded",
}

// String returns a human-readable version of the EdgeType.
func (e EdgeType) String() string {
	if int(e) >= len(EdgeTypeNames) {
		return fmt.Sprintf("EdgeType(%X)", uint8(e))
	}

	return EdgeTypeNames[e]
}

// Edge is one endpoint of an Interval in its descriptive form. Unlike an EndPoint it can also express the absence of
// a threshold, so a pair of Edges captures a complete Interval shape. Edges are immutable value types that compare
// structurally.
type Edge[T constraints.Ordered] struct {
	value    T
	edgeType EdgeType
}

// IncludedEdge creates an Edge whose threshold value is part of the Interval.
func IncludedEdge[T constraints.Ordered](value T) Edge[T] {
	return Edge[T]{value: value, edgeType: EdgeTypeIncluded}
}

// ExcludedEdge creates an Edge whose threshold value is not part of the Interval.
func ExcludedEdge[T constraints.Ordered](value T) Edge[T] {
	return Edge[T]{value: value, edgeType: EdgeTypeExcluded}
}

// UnboundedEdge creates an Edge without a threshold value.
func UnboundedEdge[T constraints.Ordered]() Edge[T] {
	return Edge[T]{edgeType: EdgeTypeUnbounded}
}

// Type returns the EdgeType of the Edge.
func (e Edge[T]) Type() EdgeType {
	return e.edgeType
}

// Value returns the threshold value of the Edge. It is the zero value for unbounded Edges - check Type() first when
// that distinction matters.
func (e Edge[T]) Value() T {
	return e.value
}

// Bounds is the descriptive pair of Edges extracted from an Interval. It is used for error reporting and cross-type
// conversion and never performs the containment test itself.
type Bounds[T constraints.Ordered] struct {
	// Lower is the lower Edge of the Interval.
	Lower Edge[T]

	// Upper is the upper Edge of the Interval.
	Upper Edge[T]
}

// ConvertEdge converts the threshold value of an Edge with the given conversion function while preserving the
// EdgeType. The conversion function is expected to be value-preserving (i.e. a widening conversion).
func ConvertEdge[T constraints.Ordered, U constraints.Ordered](edge Edge[T], convert func(T) U) Edge[U] {
	switch edge.edgeType {
	case EdgeTypeIncluded:
		return IncludedEdge(convert(edge.value))
	case EdgeTypeExcluded:
		return ExcludedEdge(convert(edge.value))
	default:
		return UnboundedEdge[U]()
	}
}

// ConvertBounds converts the threshold values of both Edges of a Bounds with the given conversion function while
// preserving the EdgeTypes.
func ConvertBounds[T constraints.Ordered, U constraints.Ordered](bounds Bounds[T], convert func(T) U) Bounds[U] {
	return Bounds[U]{
		Lower: ConvertEdge(bounds.Lower, convert),
		Upper: ConvertEdge(bounds.Upper, convert),
	}
}

// String renders the Bounds in range-literal style: "0..10", "0..=10", "..10", "0.." or "..". An excluded lower Edge,
// which has no literal counterpart, renders with a trailing "=" marker ("0=..10"). Structurally equal Bounds always
// render identically.
func (b Bounds[T]) String() string {
	builder := strings.Builder{}

	switch b.Lower.edgeType {
	case EdgeTypeIncluded:
		builder.WriteString(fmt.Sprintf("%v", b.Lower.value))
	case EdgeTypeExcluded:
		builder.WriteString(fmt.Sprintf("%v=", b.Lower.value))
	}

	builder.WriteString("..")

	switch b.Upper.edgeType {
	case EdgeTypeIncluded:
		builder.WriteString(fmt.Sprintf("=%v", b.Upper.value))
	case EdgeTypeExcluded:
		builder.WriteString(fmt.Sprintf("%v", b.Upper.value))
	}

	return builder.String()
}
