package ndarray

import "fmt"

// Boundary selects how indices outside an axis are resolved.
type Boundary int

const (
	// ZeroPad treats samples outside the axis as the view's Zero value.
	ZeroPad Boundary = iota
	// Mirror extends the axis by reflection about its edge samples with
	// period 2*extent: x[-1]=x[0], x[-2]=x[1], x[N]=x[N-1].
	Mirror
)

// Valid reports whether b is a known boundary rule.
func (b Boundary) Valid() bool {
	return b == ZeroPad || b == Mirror
}

func (b Boundary) String() string {
	switch b {
	case ZeroPad:
		return "zero-pad"
	case Mirror:
		return "mirror"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// Resolve maps index onto an axis of the given extent.
//
// For ZeroPad the index is returned unchanged together with whether it lies
// in [0, extent). For Mirror the index is reflected, as many times as needed,
// into [0, extent) and ok is true. A non-positive extent or an unknown rule
// yields (0, false).
func Resolve(index, extent int, mode Boundary) (int, bool) {
	if extent <= 0 {
		return 0, false
	}

	switch mode {
	case ZeroPad:
		return index, index >= 0 && index < extent
	case Mirror:
		return reflect(index, extent), true
	default:
		return 0, false
	}
}

func reflect(index, extent int) int {
	if index >= 0 && index < extent {
		return index
	}
	if extent == 1 {
		return 0
	}

	period := 2 * extent
	index %= period
	if index < 0 {
		index += period
	}
	if index >= extent {
		index = period - 1 - index
	}
	return index
}
