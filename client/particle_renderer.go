package client

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/memmaker/pyre/engine/glhf"
	"github.com/memmaker/pyre/engine/particle"
	"github.com/memmaker/pyre/engine/util"
)

// ParticleRenderer drives one effect flavor through both pipeline stages:
// it steps the simulation, expands the freshly produced arena into billboard
// quads and streams them into the GPU buffer pair.
type ParticleRenderer struct {
	system     *particle.System
	shader     *glhf.Shader
	streams    *glhf.StreamBuffers
	atlasLayer int32

	verts []particle.Vertex
	flat  []glhf.GlFloat

	reportedDrops bool
}

func NewParticleRenderer(cfg particle.Config, noise *particle.DirectionTable, shader *glhf.Shader) *ParticleRenderer {
	system := particle.NewSystem(cfg, noise)
	maxVertexCount := system.Config().MaxParticles * 6
	return &ParticleRenderer{
		system:     system,
		shader:     shader,
		streams:    glhf.NewStreamBuffers(shader, maxVertexCount),
		atlasLayer: int32(cfg.AtlasLayer),
	}
}

// Draw advances the simulation by one frame and renders the arena it just
// produced. Blending is additive and depth writes stay off, so particles
// accumulate instead of occluding each other; depth testing still clips them
// against opaque geometry.
func (r *ParticleRenderer) Draw(frame particle.FrameInput) {
	r.system.Step(frame)

	r.verts = particle.CollectQuads(r.system.Particles(), frame, r.system.Config(), r.verts[:0])
	r.flat = particle.Flatten(r.verts, r.flat[:0])
	r.streams.Upload(r.flat)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	r.shader.Begin()
	r.shader.SetUniformAttr(0, frame.ViewProjection)
	r.shader.SetUniformAttr(1, r.atlasLayer)
	r.streams.Draw()
	r.shader.End()

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	if !r.reportedDrops && r.system.DroppedSpawns() > 0 {
		// population exceeding spawn rate times lifetime means the arena is
		// misconfigured, report once instead of spamming every frame
		util.LogSimWarning(fmt.Sprintf("particle arena full, dropped %d spawns so far", r.system.DroppedSpawns()))
		r.reportedDrops = true
	}
}

func (r *ParticleRenderer) System() *particle.System {
	return r.system
}

func (r *ParticleRenderer) Reset() {
	r.system.Reset()
	r.reportedDrops = false
}
