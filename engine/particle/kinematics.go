package particle

import "github.com/go-gl/mathgl/mgl32"

// PositionAt returns the particle's world position at its current age using
// closed-form motion under constant acceleration. Nothing is integrated
// frame to frame, so the result is exact regardless of step size.
func PositionAt(p Particle, accel mgl32.Vec3) mgl32.Vec3 {
	t := p.Age
	return p.InitialPos.
		Add(p.InitialVel.Mul(t)).
		Add(accel.Mul(0.5 * t * t))
}

// FadeAt is the ease-out opacity ramp: 1 at spawn, 0 once age reaches the
// lifetime limit, monotone in between.
func FadeAt(age, lifetime float32) float32 {
	if lifetime <= 0 {
		return 0
	}
	return 1 - smoothstep(0, 1, age/lifetime)
}

// RotationAt returns the in-plane billboard angle in radians.
func RotationAt(p Particle) float32 {
	return p.Age * p.RotationSpeed
}

// smoothstep is the standard cubic Hermite interpolant clamped to [0,1]
// between the two edges.
func smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
