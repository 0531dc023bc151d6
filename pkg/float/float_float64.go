//go:build !float32

package float

import "math"

// Float is a floating point type. This type alias allows for easy switching between float32 and float64.
type Float = float64

// MaxFloat is the largest finite Float.
const MaxFloat Float = math.MaxFloat64

func Sqrt(n Float) Float {
	return math.Sqrt(n)
}
