package geometry

import (
	"math"

	"polysimplify/pkg/float"
)

type Point struct {
	X float64
	Y float64
}

type LineSegment struct {
	A Point
	B Point
}

type Rectangle struct {
	Min Point
	Max Point
}

// Polyline is an ordered sequence of points. It is never closed implicitly.
type Polyline []Point

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// InCalcRange reports whether both coordinates are small enough for segment
// distances to be computed in float.Float without overflowing.
func (p Point) InCalcRange() bool {
	return float.InRange(p.X) && float.InRange(p.Y)
}

func (r Rectangle) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Bounds returns the smallest rectangle holding every point of the line.
// An empty line has NaN bounds.
func (line Polyline) Bounds() Rectangle {
	if len(line) == 0 {
		nan := Point{X: math.NaN(), Y: math.NaN()}
		return Rectangle{Min: nan, Max: nan}
	}
	r := Rectangle{Min: line[0], Max: line[0]}
	for _, p := range line[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Length returns the sum of the segment lengths.
func (line Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += line[i-1].Distance(line[i])
	}
	return total
}

// FirstNonFinite returns the index of the first point with a NaN or infinite
// coordinate, or -1 if every point is finite.
func (line Polyline) FirstNonFinite() int {
	for i, p := range line {
		if !p.IsFinite() {
			return i
		}
	}
	return -1
}

// FirstOutOfCalcRange returns the index of the first point outside the range
// accepted by InCalcRange, or -1 if there is none.
func (line Polyline) FirstOutOfCalcRange() int {
	for i, p := range line {
		if !p.InCalcRange() {
			return i
		}
	}
	return -1
}
