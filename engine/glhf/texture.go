package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture is a plain 2D OpenGL texture.
type Texture struct {
	tex           binder
	width, height int
	smooth        bool
}

// NewTexture creates a new texture with the specified width and height and
// initial pixel values. The pixels must be a sequence of RGBA values (one
// byte per component).
func NewTexture(width, height int, smooth bool, pixels []uint8) *Texture {
	tex := &Texture{
		tex: binder{
			restoreLoc: gl.TEXTURE_BINDING_2D,
			bindFunc: func(obj uint32) {
				gl.BindTexture(gl.TEXTURE_2D, obj)
			},
		},
		width:  width,
		height: height,
	}

	gl.GenTextures(1, &tex.tex.obj)

	tex.Begin()
	defer tex.End()

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)

	tex.SetSmooth(smooth)
	tex.SetWrapToRepeat()
	runtime.SetFinalizer(tex, (*Texture).delete)

	return tex
}

// NewSolidColorTexture returns a tiny single-color texture, useful as a
// stand-in when no image asset is available.
func NewSolidColorTexture(color [3]uint8) *Texture {
	pixels := make([]uint8, 4*4*4)
	for i := 0; i < 4*4; i++ {
		pixels[i*4] = color[0]
		pixels[i*4+1] = color[1]
		pixels[i*4+2] = color[2]
		pixels[i*4+3] = 255
	}
	return NewTexture(4, 4, false, pixels)
}

func (t *Texture) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &t.tex.obj)
	})
}

// ID returns the OpenGL ID of this Texture.
func (t *Texture) ID() uint32 {
	return t.tex.obj
}

// Width returns the width of the Texture in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the height of the Texture in pixels.
func (t *Texture) Height() int {
	return t.height
}

// SetSmooth sets whether the Texture should be drawn "smoothly" or "pixely".
func (t *Texture) SetSmooth(smooth bool) {
	t.smooth = smooth
	filter := int32(gl.NEAREST)
	if smooth {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
}

func (t *Texture) SetWrapToRepeat() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
}

// Smooth returns whether the Texture is set to be drawn "smooth" or "pixely".
func (t *Texture) Smooth() bool {
	return t.smooth
}

// Begin binds the Texture. This is necessary before using the Texture.
func (t *Texture) Begin() {
	t.tex.bind()
}

// End unbinds the Texture and restores the previous one.
func (t *Texture) End() {
	t.tex.restore()
}

// ArrayTexture is a layered 2D texture (GL_TEXTURE_2D_ARRAY). The particle
// shader indexes it with a per-effect layer, so one texture bind serves all
// effect flavors.
type ArrayTexture struct {
	tex           binder
	width, height int
	layers        int
}

// NewArrayTexture creates a layered texture from a pixel sequence holding
// layers*width*height RGBA values, layer after layer. Linear filtering and
// repeat wrapping are the fixed sampler state the particle pipeline expects.
func NewArrayTexture(width, height, layers int, pixels []uint8) *ArrayTexture {
	if len(pixels) != width*height*layers*4 {
		panic("new array texture: wrong number of pixels")
	}
	tex := &ArrayTexture{
		tex: binder{
			restoreLoc: gl.TEXTURE_BINDING_2D_ARRAY,
			bindFunc: func(obj uint32) {
				gl.BindTexture(gl.TEXTURE_2D_ARRAY, obj)
			},
		},
		width:  width,
		height: height,
		layers: layers,
	}

	gl.GenTextures(1, &tex.tex.obj)

	tex.Begin()
	defer tex.End()

	gl.TexImage3D(
		gl.TEXTURE_2D_ARRAY,
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		int32(layers),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)

	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.REPEAT)

	runtime.SetFinalizer(tex, (*ArrayTexture).delete)

	return tex
}

func (t *ArrayTexture) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &t.tex.obj)
	})
}

// ID returns the OpenGL ID of this ArrayTexture.
func (t *ArrayTexture) ID() uint32 {
	return t.tex.obj
}

// Width returns the width of one layer in pixels.
func (t *ArrayTexture) Width() int {
	return t.width
}

// Height returns the height of one layer in pixels.
func (t *ArrayTexture) Height() int {
	return t.height
}

// Layers returns the number of layers.
func (t *ArrayTexture) Layers() int {
	return t.layers
}

// Begin binds the ArrayTexture.
func (t *ArrayTexture) Begin() {
	t.tex.bind()
}

// End unbinds the ArrayTexture and restores the previous one.
func (t *ArrayTexture) End() {
	t.tex.restore()
}
