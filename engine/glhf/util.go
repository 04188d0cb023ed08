package glhf

import "github.com/go-gl/gl/v3.3-core/gl"

type GlFloat = float32

const SizeOfFloat32 = 4

// binder is a convenience type for binding OpenGL objects while remembering
// the previously bound one, so that nested Begin/End pairs restore state
// correctly.
type binder struct {
	restoreLoc uint32
	bindFunc   func(uint32)

	obj  uint32
	prev []uint32
}

func (b *binder) bind() *binder {
	var prev int32
	gl.GetIntegerv(b.restoreLoc, &prev)
	b.prev = append(b.prev, uint32(prev))
	b.bindFunc(b.obj)
	return b
}

func (b *binder) restore() *binder {
	b.bindFunc(b.prev[len(b.prev)-1])
	b.prev = b.prev[:len(b.prev)-1]
	return b
}

// Init loads the OpenGL function pointers from the active context. Call once
// after the context has been made current and before any other glhf call.
func Init() {
	if err := gl.Init(); err != nil {
		panic(err)
	}
}
