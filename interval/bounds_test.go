package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEdgeType_String tests the names of the EdgeTypes including the fallback for undefined values.
func TestEdgeType_String(t *testing.T) {
	require.Equal(t, "EdgeTypeIncluded", EdgeTypeIncluded.String())
	require.Equal(t, "EdgeTypeExcluded", EdgeTypeExcluded.String())
	require.Equal(t, "EdgeTypeUnbounded", EdgeTypeUnbounded.String())
	require.Equal(t, "EdgeType(11)", EdgeType(17).String())
}

// TestEdge_Getters tests the Type and Value getters of the Edge.
func TestEdge_Getters(t *testing.T) {
	require.Equal(t, EdgeTypeIncluded, IncludedEdge(5).Type())
	require.Equal(t, EdgeTypeExcluded, ExcludedEdge(5).Type())
	require.Equal(t, EdgeTypeUnbounded, UnboundedEdge[int]().Type())

	require.Equal(t, 5, IncludedEdge(5).Value())
	require.Equal(t, 5, ExcludedEdge(5).Value())
	require.Equal(t, 0, UnboundedEdge[int]().Value())
}

// TestConvertEdge tests that the conversion preserves the EdgeType and only converts the threshold value.
func TestConvertEdge(t *testing.T) {
	widen := func(value int8) int32 { return int32(value) }

	require.Equal(t, IncludedEdge(int32(5)), ConvertEdge(IncludedEdge(int8(5)), widen))
	require.Equal(t, ExcludedEdge(int32(-5)), ConvertEdge(ExcludedEdge(int8(-5)), widen))
	require.Equal(t, UnboundedEdge[int32](), ConvertEdge(UnboundedEdge[int8](), widen))
}

// TestConvertBounds tests that the conversion preserves both EdgeTypes.
func TestConvertBounds(t *testing.T) {
	bounds := Bounds[int8]{Lower: IncludedEdge(int8(5)), Upper: ExcludedEdge(int8(10))}
	converted := ConvertBounds(bounds, func(value int8) int32 { return int32(value) })

	require.Equal(t, Bounds[int32]{Lower: IncludedEdge(int32(5)), Upper: ExcludedEdge(int32(10))}, converted)

	halfBounded := Bounds[int8]{Lower: UnboundedEdge[int8](), Upper: IncludedEdge(int8(10))}
	require.Equal(t,
		Bounds[int64]{Lower: UnboundedEdge[int64](), Upper: IncludedEdge(int64(10))},
		ConvertBounds(halfBounded, func(value int8) int64 { return int64(value) }),
	)
}

// TestBounds_String tests the range-literal rendering of every Bounds shape.
func TestBounds_String(t *testing.T) {
	require.Equal(t, "0..10", ClosedOpen(0, 10).Bounds().String())
	require.Equal(t, "0..=10", Closed(0, 10).Bounds().String())
	require.Equal(t, "0=..10", Open(0, 10).Bounds().String())
	require.Equal(t, "0=..=10", OpenClosed(0, 10).Bounds().String())
	require.Equal(t, "1..", AtLeast(1).Bounds().String())
	require.Equal(t, "1=..", GreaterThan(1).Bounds().String())
	require.Equal(t, "..5", LessThan(5).Bounds().String())
	require.Equal(t, "..=5", AtMost(5).Bounds().String())
	require.Equal(t, "..", All[int]().Bounds().String())
}

// TestBounds_StringEquality tests that structurally equal Bounds render identically.
func TestBounds_StringEquality(t *testing.T) {
	first := ClosedOpen(0, 10).Bounds()
	second := Bounds[int]{Lower: IncludedEdge(0), Upper: ExcludedEdge(10)}

	require.Equal(t, first, second)
	require.Equal(t, first.String(), second.String())
}
