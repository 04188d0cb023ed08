package glhf

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// VertexSlice points to a portion of (or possibly whole) vertex array. It is
// used as a pointer so that sub-slicing and appending stay 'in-place'.
//
// A VertexSlice must be Begin-ed before accessing or drawing its elements and
// End-ed afterwards.
type VertexSlice struct {
	va                   *vertexArray
	startIndex, endIndex int
}

// MakeVertexSlice allocates a new vertex array with the specified capacity
// and returns a VertexSlice covering its first len vertices.
//
// A vertex array is specialized for a specific shader and cannot be used
// with another one.
func MakeVertexSlice(shader *Shader, len, cap int) *VertexSlice {
	if len > cap {
		panic("failed to make vertex slice: len > cap")
	}
	return &VertexSlice{
		va:         newVertexArray(shader, cap),
		startIndex: 0,
		endIndex:   len,
	}
}

// VertexFormat returns the format of the vertex attributes inside the
// underlying vertex array of this VertexSlice.
func (vs *VertexSlice) VertexFormat() AttrFormat {
	return vs.va.format
}

// Stride returns the number of float32 elements occupied by one vertex.
func (vs *VertexSlice) Stride() int {
	return vs.va.stride / SizeOfFloat32
}

// Len returns the length of the VertexSlice (number of vertices).
func (vs *VertexSlice) Len() int {
	return vs.endIndex - vs.startIndex
}

// Cap returns the capacity of the underlying vertex array.
func (vs *VertexSlice) Cap() int {
	return vs.va.cap - vs.startIndex
}

// SetLen resizes the VertexSlice within the capacity of the underlying
// vertex array.
func (vs *VertexSlice) SetLen(len int) {
	if vs.startIndex+len > vs.va.cap {
		panic("set vertex slice len: out of range")
	}
	vs.endIndex = vs.startIndex + len
}

// SetVertexData sets the contents of the VertexSlice.
//
// The data is a slice of float32s, where each vertex attribute occupies a
// certain number of elements (Float 1, Vec2 2, Vec3 3, Vec4 4), in the order
// of the vertex format of this VertexSlice.
//
// If the length of vertices does not match the length of the VertexSlice,
// this method panics.
func (vs *VertexSlice) SetVertexData(data []GlFloat) {
	if len(data)/vs.Stride() != vs.Len() {
		panic("set vertex data: wrong length of vertices")
	}
	vs.va.setVertexData(vs.startIndex, data)
}

// VertexData returns the contents of the VertexSlice.
func (vs *VertexSlice) VertexData() []GlFloat {
	return vs.va.vertexData(vs.startIndex, vs.endIndex)
}

// Draw draws the content of the VertexSlice.
func (vs *VertexSlice) Draw() {
	vs.va.draw(vs.startIndex, vs.endIndex)
}

// Begin binds the underlying vertex array. Calling this method is necessary
// before using the VertexSlice.
func (vs *VertexSlice) Begin() {
	vs.va.begin()
}

// End unbinds the underlying vertex array. Call this method when you're done
// with the VertexSlice.
func (vs *VertexSlice) End() {
	vs.va.end()
}

// SetPrimitiveType changes the primitive the slice is drawn as. The default
// is GL_TRIANGLES.
func (vs *VertexSlice) SetPrimitiveType(glPrimitiveType uint32) {
	vs.va.setPrimitiveType(glPrimitiveType)
}

type vertexArray struct {
	vao, vbo      binder
	cap           int
	format        AttrFormat
	stride        int
	offset        []int
	shader        *Shader
	primitiveType uint32
}

const vertexArrayMinCap = 4

func newVertexArray(shader *Shader, cap int) *vertexArray {
	if cap < vertexArrayMinCap {
		cap = vertexArrayMinCap
	}

	va := &vertexArray{
		primitiveType: gl.TRIANGLES,
		vao: binder{
			restoreLoc: gl.VERTEX_ARRAY_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindVertexArray(obj)
			},
		},
		vbo: binder{
			restoreLoc: gl.ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ARRAY_BUFFER, obj)
			},
		},
		cap:    cap,
		format: shader.VertexFormat(),
		stride: shader.VertexFormat().Size(),
		offset: make([]int, len(shader.VertexFormat())),
		shader: shader,
	}

	offset := 0
	for i, attr := range va.format {
		switch attr.Type {
		case Float, Vec2, Vec3, Vec4:
		default:
			panic(errors.New("failed to create vertex array: invalid attribute type"))
		}
		va.offset[i] = offset
		offset += attr.Type.Size()
	}

	gl.GenVertexArrays(1, &va.vao.obj)

	va.vao.bind()

	gl.GenBuffers(1, &va.vbo.obj)
	defer va.vbo.bind().restore()

	// allocate an empty buffer of the full capacity up front, the particle
	// stream rewrites it every frame
	emptyData := make([]byte, cap*va.stride)
	gl.BufferData(gl.ARRAY_BUFFER, len(emptyData), gl.Ptr(emptyData), gl.STREAM_DRAW)

	va.setAttributes()

	va.vao.restore()

	runtime.SetFinalizer(va, (*vertexArray).delete)

	return va
}

func (va *vertexArray) setAttributes() {
	for i, attr := range va.format {
		loc := gl.GetAttribLocation(va.shader.program.obj, gl.Str(attr.Name+"\x00"))

		var size int32
		switch attr.Type {
		case Float:
			size = 1
		case Vec2:
			size = 2
		case Vec3:
			size = 3
		case Vec4:
			size = 4
		}

		gl.VertexAttribPointerWithOffset(
			uint32(loc),
			size,
			gl.FLOAT,
			false,
			int32(va.stride),
			uintptr(va.offset[i]),
		)
		gl.EnableVertexAttribArray(uint32(loc))
	}
}

func (va *vertexArray) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteVertexArrays(1, &va.vao.obj)
		gl.DeleteBuffers(1, &va.vbo.obj)
	})
}

func (va *vertexArray) begin() {
	va.vao.bind()
	va.vbo.bind()
}

func (va *vertexArray) end() {
	va.vbo.restore()
	va.vao.restore()
}

func (va *vertexArray) draw(startIndex, endIndex int) {
	if endIndex-startIndex == 0 {
		return
	}
	gl.DrawArrays(va.primitiveType, int32(startIndex), int32(endIndex-startIndex))
}

func (va *vertexArray) setVertexData(startIndex int, data []GlFloat) {
	if len(data) == 0 {
		// avoid setting 0 bytes of buffer data
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, startIndex*va.stride, len(data)*SizeOfFloat32, gl.Ptr(data))
}

func (va *vertexArray) vertexData(startIndex, endIndex int) []GlFloat {
	if endIndex-startIndex == 0 {
		// avoid getting 0 bytes of buffer data
		return nil
	}
	data := make([]GlFloat, (endIndex-startIndex)*va.stride/SizeOfFloat32)
	gl.GetBufferSubData(gl.ARRAY_BUFFER, startIndex*va.stride, len(data)*SizeOfFloat32, gl.Ptr(data))
	return data
}

func (va *vertexArray) setPrimitiveType(primitiveType uint32) {
	va.primitiveType = primitiveType
}
