package particle

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one corner of an expanded billboard quad, laid out the way the
// particle shader expects it (position, texCoord, color).
type Vertex struct {
	Pos   mgl32.Vec3
	UV    mgl32.Vec2
	Color mgl32.Vec4
}

// FloatsPerVertex is the flattened stride of Vertex (3 + 2 + 4).
const FloatsPerVertex = 9

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	fallbackAxis = mgl32.Vec3{0, 0, 1}

	// corner emission order k={1,0,2,3} with angles 45°+90°k walks
	// top-left, top-right, bottom-left, bottom-right (strip order), and the
	// atlas corners are assigned in the same order
	cornerSteps = [4]float32{1, 0, 2, 3}
	cornerUVs   = [4]mgl32.Vec2{{0, 1}, {1, 1}, {0, 0}, {1, 0}}
)

// BillboardBasis returns right/up axes spanning a plane that faces the eye.
// When the view direction is parallel to world up the cross product
// degenerates, so a fixed secondary axis takes over; the result is never NaN.
func BillboardBasis(center, eye mgl32.Vec3) (right, up mgl32.Vec3) {
	look := eye.Sub(center)
	if look.Len() < 1e-6 {
		look = fallbackAxis
	}
	look = look.Normalize()

	right = worldUp.Cross(look)
	if right.Len() < 1e-4 {
		right = fallbackAxis.Cross(look)
	}
	right = right.Normalize()
	up = look.Cross(right)
	return right, up
}

// QuadCorners expands a point particle into four strip-ordered, camera-facing
// corners rotated in-plane by rotation around the center. Size is the full
// quad extent, so the corner radius is half the diagonal.
func QuadCorners(center mgl32.Vec3, size mgl32.Vec2, rotation float32, eye mgl32.Vec3) [4]Vertex {
	right, up := BillboardBasis(center, eye)
	halfW := size.X() * 0.5 * float32(math.Sqrt2)
	halfH := size.Y() * 0.5 * float32(math.Sqrt2)

	var quad [4]Vertex
	for slot, k := range cornerSteps {
		angle := float64(rotation + (math.Pi/4)*(1+2*k))
		offRight := float32(math.Cos(angle)) * halfW
		offUp := float32(math.Sin(angle)) * halfH
		quad[slot] = Vertex{
			Pos: center.Add(right.Mul(offRight)).Add(up.Mul(offUp)),
			UV:  cornerUVs[slot],
		}
	}
	return quad
}

// CollectQuads runs the render-stage derivation for every live particle and
// appends two triangles (six vertices) per quad to verts, which is returned
// like append. Emitter particles are filtered out, never rendered.
func CollectQuads(particles []Particle, frame FrameInput, cfg Config, verts []Vertex) []Vertex {
	for i := range particles {
		p := particles[i]
		if p.Kind == KindEmitter {
			continue
		}

		fade := FadeAt(p.Age, cfg.Lifetime)
		alpha := fade
		if cfg.FixedAlpha >= 0 {
			alpha = cfg.FixedAlpha
		}
		color := mgl32.Vec4{
			cfg.Color.X() * fade,
			cfg.Color.Y() * fade,
			cfg.Color.Z() * fade,
			alpha,
		}

		center := PositionAt(p, cfg.Acceleration)
		quad := QuadCorners(center, p.Size, RotationAt(p), frame.EyePosition)
		for _, corner := range [6]int{0, 1, 2, 2, 1, 3} {
			v := quad[corner]
			v.Color = color
			verts = append(verts, v)
		}
	}
	return verts
}

// Flatten appends the raw float32 layout of verts to out for buffer upload.
func Flatten(verts []Vertex, out []float32) []float32 {
	for i := range verts {
		v := &verts[i]
		out = append(out,
			v.Pos.X(), v.Pos.Y(), v.Pos.Z(),
			v.UV.X(), v.UV.Y(),
			v.Color.X(), v.Color.Y(), v.Color.Z(), v.Color.W(),
		)
	}
	return out
}
