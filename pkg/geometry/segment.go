package geometry

import (
	"polysimplify/pkg/float"
)

// DistanceSquared returns the squared distance between p and its projection
// onto the segment, clamped to the endpoints.
//
//	v = B - A, w = p - A
//	c1 = w . v, c2 = v . v
//	c1 <= 0:  p is behind A, use |p - A|
//	c2 <= c1: p is beyond B, use |p - B|
//	else:     project onto A + (c1/c2) v
//
// For a zero-length segment v is the zero vector, c1 is zero and the result is
// the squared distance from p to A.
func (s LineSegment) DistanceSquared(p Point) float.Float {
	ax, ay := float.Float(s.A.X), float.Float(s.A.Y)
	px, py := float.Float(p.X), float.Float(p.Y)

	vx := float.Float(s.B.X) - ax
	vy := float.Float(s.B.Y) - ay
	c2 := vx*vx + vy*vy

	wx := px - ax
	wy := py - ay
	c1 := wx*vx + wy*vy

	if c1 <= 0 {
		return wx*wx + wy*wy
	}
	if c2 <= c1 {
		dx := px - float.Float(s.B.X)
		dy := py - float.Float(s.B.Y)
		return dx*dx + dy*dy
	}

	// c1 > 0 and c2 > c1, so c2 != 0
	b := c1 / c2
	dx := px - (ax + b*vx)
	dy := py - (ay + b*vy)
	return dx*dx + dy*dy
}
