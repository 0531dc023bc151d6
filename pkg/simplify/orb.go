package simplify

import (
	"github.com/paulmach/orb"

	"polysimplify/pkg/geometry"
)

func orbPoint(p orb.Point) geometry.Point {
	return geometry.Point{X: p.X(), Y: p.Y()}
}

// LineString returns a new line string holding the points of ls that
// DouglasPeucker retains. The input is not modified. Unlike
// orb/simplify.DouglasPeucker it does not reuse the backing array of ls.
func LineString(ls orb.LineString, tolerance float64) orb.LineString {
	if ls == nil {
		return nil
	}
	simplified := make(orb.LineString, 0, len(ls))
	DouglasPeuckerFunc([]orb.Point(ls), orbPoint, tolerance, func(p orb.Point) {
		simplified = append(simplified, p)
	})
	return simplified
}

// MultiLineString simplifies every line string of mls independently.
func MultiLineString(mls orb.MultiLineString, tolerance float64) orb.MultiLineString {
	if mls == nil {
		return nil
	}
	simplified := make(orb.MultiLineString, 0, len(mls))
	for _, ls := range mls {
		simplified = append(simplified, LineString(ls, tolerance))
	}
	return simplified
}
