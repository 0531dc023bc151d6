//go:build float32

package float

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is a floating point type. This type alias allows for easy switching between float32 and float64.
type Float = float32

// MaxFloat is the largest finite Float.
const MaxFloat Float = math.MaxFloat32

func Sqrt(n Float) Float {
	return math32.Sqrt(n)
}
