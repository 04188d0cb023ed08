package client

import (
	_ "embed"

	"github.com/memmaker/pyre/engine/glhf"
)

var (
	//go:embed shader/particle.vert
	particleVertexShaderSource string

	//go:embed shader/particle.frag
	particleFragmentShaderSource string
)

func loadParticleShader() *glhf.Shader {
	var (
		vertexFormat = glhf.AttrFormat{
			{Name: "position", Type: glhf.Vec3},
			{Name: "texCoord", Type: glhf.Vec2},
			{Name: "color", Type: glhf.Vec4},
		}
		uniformFormat = glhf.AttrFormat{
			glhf.Attr{Name: "viewProjection", Type: glhf.Mat4},
			glhf.Attr{Name: "atlasLayer", Type: glhf.Int},
		}
	)
	shader, err := glhf.NewShader(vertexFormat, uniformFormat, particleVertexShaderSource, particleFragmentShaderSource)
	if err != nil {
		panic(err)
	}
	return shader
}
