package glhf

// StreamBuffers is a pair of equally sized vertex buffers whose roles flip
// every frame: one holds the vertices being drawn, the other receives the
// next frame's upload. The draw source is never the upload target, which is
// the same discipline a transform-feedback pipeline enforces between its
// stream-out and render passes.
type StreamBuffers struct {
	front, back    *VertexSlice
	frontIsSource  bool
	maxVertexCount int
	drawCount      int
}

// NewStreamBuffers allocates both buffers at the given vertex capacity for
// the shader's vertex format.
func NewStreamBuffers(shader *Shader, maxVertexCount int) *StreamBuffers {
	return &StreamBuffers{
		front:          MakeVertexSlice(shader, maxVertexCount, maxVertexCount),
		back:           MakeVertexSlice(shader, maxVertexCount, maxVertexCount),
		frontIsSource:  true,
		maxVertexCount: maxVertexCount,
	}
}

func (s *StreamBuffers) source() *VertexSlice {
	if s.frontIsSource {
		return s.front
	}
	return s.back
}

func (s *StreamBuffers) target() *VertexSlice {
	if s.frontIsSource {
		return s.back
	}
	return s.front
}

// Capacity returns the per-buffer vertex limit.
func (s *StreamBuffers) Capacity() int {
	return s.maxVertexCount
}

// Upload writes flat vertex data into the current write buffer and flips the
// buffer roles, so Draw renders what was just uploaded. Data beyond the
// buffer capacity is truncated.
func (s *StreamBuffers) Upload(data []GlFloat) {
	target := s.target()
	stride := target.Stride()

	count := len(data) / stride
	if count > s.maxVertexCount {
		count = s.maxVertexCount
		data = data[:count*stride]
	}

	target.Begin()
	target.SetLen(count)
	target.SetVertexData(data)
	target.End()

	s.drawCount = count
	s.frontIsSource = !s.frontIsSource
}

// Draw renders the most recently uploaded vertices.
func (s *StreamBuffers) Draw() {
	src := s.source()
	src.Begin()
	src.SetLen(s.drawCount)
	src.Draw()
	src.End()
}
