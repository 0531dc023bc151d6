package simplify

import (
	"errors"
	"fmt"
	"math"

	"polysimplify/pkg/float"
	"polysimplify/pkg/geometry"
)

var (
	// ErrNegativeTolerance is returned for a negative or NaN tolerance.
	ErrNegativeTolerance = errors.New("tolerance must be a non-negative number")

	// ErrNonFinite is returned when a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("non-finite coordinate")

	// ErrOutOfRange is returned when a coordinate is finite but too large for
	// distances to be computed without overflow, see float.MaxCoordinate.
	ErrOutOfRange = errors.New("coordinate out of range")
)

// Validate checks the preconditions of DouglasPeucker: a negative or NaN
// tolerance yields ErrNegativeTolerance, a NaN or infinite coordinate yields
// ErrNonFinite and a coordinate beyond float.MaxCoordinate yields
// ErrOutOfRange.
func Validate(line geometry.Polyline, tolerance float64) error {
	if math.IsNaN(tolerance) || tolerance < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeTolerance, tolerance)
	}
	if i := line.FirstNonFinite(); i >= 0 {
		return fmt.Errorf("point %d %v: %w", i, line[i], ErrNonFinite)
	}
	if i := line.FirstOutOfCalcRange(); i >= 0 {
		return fmt.Errorf("point %d %v: %w (limit %g)", i, line[i], ErrOutOfRange, float.MaxCoordinate)
	}
	return nil
}

// Polyline returns the simplified copy of line after checking it with
// Validate. The input is not modified.
func Polyline(line geometry.Polyline, tolerance float64) (geometry.Polyline, error) {
	if err := Validate(line, tolerance); err != nil {
		return nil, err
	}

	simplified := make(geometry.Polyline, 0, len(line))
	DouglasPeucker(line, tolerance, func(p geometry.Point) {
		simplified = append(simplified, p)
	})
	return simplified, nil
}

// MultiPolyline simplifies each line independently. The first invalid line
// aborts the call; the error names its position.
func MultiPolyline(lines []geometry.Polyline, tolerance float64) ([]geometry.Polyline, error) {
	simplified := make([]geometry.Polyline, 0, len(lines))
	for i, line := range lines {
		s, err := Polyline(line, tolerance)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		simplified = append(simplified, s)
	}
	return simplified, nil
}
