package util

import (
	"math"
)

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func ToRadian(angle float32) float32 {
	return angle * math.Pi / 180
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func Mix(a, b, factor float64) float64 {
	return a*(1-factor) + factor*b
}

// Smoothstep is the cubic Hermite interpolant clamped to [0,1] between the
// two edges.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
