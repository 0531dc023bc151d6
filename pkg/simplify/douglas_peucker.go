// Package simplify reduces the vertex count of polylines with the
// Douglas-Peucker algorithm.
//
// The retained points are always a subsequence of the input, in input order,
// and always include the first and last point. Every dropped point lies
// within the tolerance of the segment joining the two retained points that
// enclose it.
//
// Calls share no state, so independent lines may be simplified concurrently.
package simplify

import (
	"polysimplify/pkg/float"
	"polysimplify/pkg/geometry"
)

// Sink receives the retained points, one call per point, in input order.
type Sink func(geometry.Point)

// span is a half-open range [begin, end) of candidates whose first and last
// elements are already decided.
type span struct {
	begin, end int
}

// DouglasPeucker simplifies points so that no dropped point deviates more
// than tolerance from the simplified line, and appends the retained points to
// out.
//
// Lines of 0 or 1 points are passed through unchanged. The tolerance must be
// non-negative and every coordinate within float.MaxCoordinate; neither is
// checked here, see Validate.
func DouglasPeucker(points []geometry.Point, tolerance float64, out Sink) {
	DouglasPeuckerFunc[geometry.Point](points, identity, tolerance, out)
}

// DouglasPeuckerFunc is DouglasPeucker over a caller-defined point type. The
// at function extracts the coordinates of a point; out receives the caller's
// retained values untouched.
func DouglasPeuckerFunc[P any](points []P, at func(P) geometry.Point, tolerance float64, out func(P)) {
	included, _ := mark(len(points), func(i int) geometry.Point { return at(points[i]) }, tolerance)
	for i, ok := range included {
		if ok {
			out(points[i])
		}
	}
}

// Indices returns the positions of the points DouglasPeucker would retain,
// in increasing order.
func Indices(points []geometry.Point, tolerance float64) []int {
	included, found := mark(len(points), func(i int) geometry.Point { return points[i] }, tolerance)
	indices := make([]int, 0, found)
	for i, ok := range included {
		if ok {
			indices = append(indices, i)
		}
	}
	return indices
}

func identity(p geometry.Point) geometry.Point {
	return p
}

// mark returns one inclusion flag per input point, and the number of flags
// set. included[i] is the candidate for point i.
func mark(n int, at func(int) geometry.Point, tolerance float64) ([]bool, int) {
	included := make([]bool, n)
	if n < 2 {
		for i := range included {
			included[i] = true
		}
		logSelection(n, n, tolerance)
		return included, n
	}

	// The first and last point are always part of the line.
	included[0] = true
	included[n-1] = true

	// Distances are compared squared.
	t := float.Float(tolerance)
	found := 2 + consider(at, span{begin: 0, end: n}, t*t, included)

	logSelection(n, found, tolerance)
	return included, found
}

// consider marks the interior points of r that have to be kept so that no
// unmarked point is farther than sqrt(maxSqrd) from the simplified line. It
// returns the number of points marked.
//
// Ranges are processed from an explicit stack instead of recursing, so a line
// that keeps every point cannot exhaust the goroutine stack.
func consider(at func(int) geometry.Point, r span, maxSqrd float.Float, included []bool) int {
	found := 0
	stack := []span{r}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// At least 3 points are needed for there to be a point in between.
		if s.end-s.begin <= 2 {
			continue
		}

		candidate, md := farthest(at, s)
		if maxSqrd < md {
			included[candidate] = true
			found++
			// Push the right half first so the left half is handled first.
			stack = append(stack,
				span{begin: candidate, end: s.end},
				span{begin: s.begin, end: candidate + 1})
		}
	}
	return found
}

// farthest returns the interior point of s with the greatest squared distance
// from the chord joining the first and last point of s, and that distance.
// Only a strictly greater distance replaces the current candidate, so the
// first of equal maxima wins. It returns -1, -1 when s has no interior point.
func farthest(at func(int) geometry.Point, s span) (int, float.Float) {
	last := s.end - 1
	chord := geometry.LineSegment{A: at(s.begin), B: at(last)}

	md := float.Float(-1)
	candidate := -1
	for i := s.begin + 1; i < last; i++ {
		if dist := chord.DistanceSquared(at(i)); md < dist {
			md = dist
			candidate = i
		}
	}
	return candidate, md
}
