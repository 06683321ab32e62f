package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEndPoint_Value tests if the getter of the value works correctly.
func TestEndPoint_Value(t *testing.T) {
	require.Equal(t, int8(1), NewEndPoint(int8(1), BoundTypeOpen).Value())
	require.Equal(t, int8(0), NewEndPoint(int8(0), BoundTypeOpen).Value())
	require.Equal(t, int8(-1), NewEndPoint(int8(-1), BoundTypeOpen).Value())
}

// TestEndPoint_BoundType tests if the getter of the BoundType works correctly.
func TestEndPoint_BoundType(t *testing.T) {
	require.Equal(t, BoundTypeOpen, NewEndPoint(1, BoundTypeOpen).BoundType())
	require.Equal(t, BoundTypeClosed, NewEndPoint(1, BoundTypeClosed).BoundType())
}

// TestEndPoint_String tests the human-readable version of the EndPoint.
func TestEndPoint_String(t *testing.T) {
	require.Equal(t, "EndPoint {\n    value: 1\n    boundType: BoundTypeClosed\n}", NewEndPoint(1, BoundTypeClosed).String())
}
