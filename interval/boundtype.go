package interval

import "fmt"

// BoundType indicates whether an EndPoint of some Interval is contained in the Interval itself ("closed") or not
// ("open"). If an Interval is unbounded on a side, it is neither open nor closed on that side; the bound simply does
// not exist.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the EndPoint value is not considered part of the Interval ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the EndPoint value is considered part of the Interval ("inclusive").
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeClosed",
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
