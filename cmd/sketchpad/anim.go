package main

import (
	"math"

	"honnef.co/go/stuff/math/mathutil"
)

// easeBounce oscillates thrice, losing amplitude as it goes. It starts and
// ends at 0.
func easeBounce(r float64) float64 {
	return math.Abs(math.Sin(r*3*math.Pi)) * (1 - r)
}

func easeBezier(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// flashing reports whether a flash animation at progress r is in its visible
// phase. It blinks twice.
func flashing(r float64) bool {
	return int(r*4)%2 == 0
}

// bounceScale returns the scale of a bouncing element.
func bounceScale(r float64) float32 {
	return mathutil.Lerp(float32(1), float32(1.2), easeBounce(r))
}

// fade returns the alpha of a fading highlight.
func fade(r float64) uint8 {
	return uint8(mathutil.Lerp(float32(0xFF), float32(0), easeBezier(r)))
}
