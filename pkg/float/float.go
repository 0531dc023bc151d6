package float

// MaxCoordinate is the largest coordinate magnitude for which squared segment
// distances stay finite in Float. Differences of two coordinates are at most
// twice this, and a sum of two squared differences stays below MaxFloat.
var MaxCoordinate = float64(Sqrt(MaxFloat)) / 4

// InRange reports whether |v| <= MaxCoordinate. NaN is never in range.
func InRange(v float64) bool {
	return v >= -MaxCoordinate && v <= MaxCoordinate
}
