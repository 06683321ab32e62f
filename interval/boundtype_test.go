package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoundTypeOpen tests the API of the BoundTypeOpen type.
func TestBoundTypeOpen(t *testing.T) {
	require.Equal(t, "BoundTypeOpen", BoundTypeOpen.String())
}

// TestBoundTypeClosed tests the API of the BoundTypeClosed type.
func TestBoundTypeClosed(t *testing.T) {
	require.Equal(t, "BoundTypeClosed", BoundTypeClosed.String())
}

// TestBoundTypeUnknown tests the String fallback for undefined BoundTypes.
func TestBoundTypeUnknown(t *testing.T) {
	require.Equal(t, "BoundType(11)", BoundType(17).String())
}
