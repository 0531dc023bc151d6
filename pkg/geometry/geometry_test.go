package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"polysimplify/pkg/float"
)

var floatOpt = cmp.Comparer(func(x, y float64) bool {
	nanX, nanY := math.IsNaN(x), math.IsNaN(y)
	if nanX != nanY {
		return false
	}
	if nanX && nanY {
		return true
	}
	return math.Abs(x-y) < 0.00001
})

func TestSegmentDistanceSquared(t *testing.T) {
	tests := []struct {
		name string
		seg  LineSegment
		p    Point
		want float64
	}{
		{
			name: "perpendicular above interior",
			seg:  LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 4, Y: 0}},
			p:    Point{X: 2, Y: 3},
			want: 9,
		},
		{
			name: "on the segment",
			seg:  LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 2, Y: 2}},
			p:    Point{X: 1, Y: 1},
			want: 0,
		},
		{
			name: "behind start",
			seg:  LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 4, Y: 0}},
			p:    Point{X: -3, Y: 4},
			want: 25,
		},
		{
			name: "projects exactly onto start",
			seg:  LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 4, Y: 0}},
			p:    Point{X: 0, Y: 2},
			want: 4,
		},
		{
			name: "beyond end",
			seg:  LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 4, Y: 0}},
			p:    Point{X: 7, Y: -4},
			want: 25,
		},
		{
			name: "projects exactly onto end",
			seg:  LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 4, Y: 0}},
			p:    Point{X: 4, Y: 1},
			want: 1,
		},
		{
			name: "diagonal chord",
			seg:  LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 3, Y: 10}},
			p:    Point{X: 2, Y: 0},
			want: 400.0 / 109.0,
		},
		{
			name: "zero length segment",
			seg:  LineSegment{A: Point{X: 1, Y: 1}, B: Point{X: 1, Y: 1}},
			p:    Point{X: 4, Y: 5},
			want: 25,
		},
		{
			name: "zero length segment, point to the negative side",
			seg:  LineSegment{A: Point{X: 1, Y: 1}, B: Point{X: 1, Y: 1}},
			p:    Point{X: -2, Y: -3},
			want: 25,
		},
		{
			name: "zero length segment, coincident point",
			seg:  LineSegment{A: Point{X: 1, Y: 1}, B: Point{X: 1, Y: 1}},
			p:    Point{X: 1, Y: 1},
			want: 0,
		},
	}

	for _, test := range tests {
		got := float64(test.seg.DistanceSquared(test.p))
		if diff := cmp.Diff(test.want, got, floatOpt); diff != "" {
			t.Errorf("%s: DistanceSquared(%v, %v) incorrect output: %s", test.name, test.seg, test.p, diff)
		}
	}
}

func TestPolylineBounds(t *testing.T) {
	line := Polyline{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}}
	want := Rectangle{Min: Point{X: -2, Y: -1}, Max: Point{X: 4, Y: 5}}
	if diff := cmp.Diff(want, line.Bounds(), floatOpt); diff != "" {
		t.Errorf("Bounds incorrect: %s", diff)
	}
	if w, h := want.Width(), want.Height(); w != 6 || h != 6 {
		t.Errorf("Width, Height = %f, %f, want 6, 6", w, h)
	}

	empty := Polyline{}.Bounds()
	if !math.IsNaN(empty.Min.X) || !math.IsNaN(empty.Max.Y) {
		t.Errorf("empty bounds = %v, want NaN", empty)
	}
}

func TestPolylineLength(t *testing.T) {
	line := Polyline{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}
	if got := line.Length(); got != 11 {
		t.Errorf("Length() = %f, want 11", got)
	}
	if got := (Polyline{{X: 1, Y: 1}}).Length(); got != 0 {
		t.Errorf("single point Length() = %f, want 0", got)
	}
}

func TestFirstNonFinite(t *testing.T) {
	tests := []struct {
		line Polyline
		want int
	}{
		{line: nil, want: -1},
		{line: Polyline{{X: 0, Y: 0}, {X: 1, Y: 1}}, want: -1},
		{line: Polyline{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}}, want: 1},
		{line: Polyline{{X: 0, Y: math.Inf(-1)}, {X: math.Inf(1), Y: 1}}, want: 0},
	}
	for i, test := range tests {
		if got := test.line.FirstNonFinite(); got != test.want {
			t.Errorf("Test %d - FirstNonFinite(%v) = %d, want %d", i, test.line, got, test.want)
		}
	}
}

func TestFirstOutOfCalcRange(t *testing.T) {
	big := float.MaxCoordinate * 2
	tests := []struct {
		line Polyline
		want int
	}{
		{line: nil, want: -1},
		{line: Polyline{{X: 0, Y: 0}, {X: float.MaxCoordinate, Y: -float.MaxCoordinate}}, want: -1},
		{line: Polyline{{X: 0, Y: 0}, {X: 1, Y: big}, {X: big, Y: 0}}, want: 1},
		{line: Polyline{{X: math.NaN(), Y: 0}}, want: 0},
	}
	for i, test := range tests {
		if got := test.line.FirstOutOfCalcRange(); got != test.want {
			t.Errorf("Test %d - FirstOutOfCalcRange(%v) = %d, want %d", i, test.line, got, test.want)
		}
	}
}
