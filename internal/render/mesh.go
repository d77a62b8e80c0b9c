package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/learngl/internal/mesh"
)

// Mesh is a quad uploaded to the GPU: a vertex array object recording the
// attribute layout, plus its vertex and element buffers.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// NewMesh uploads q and configures its vertex attributes.
func NewMesh(q mesh.Quad) *Mesh {
	m := &Mesh{count: int32(len(q.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(q.Vertices)*4, gl.Ptr(q.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(q.Indices)*4, gl.Ptr(q.Indices), gl.STATIC_DRAW)

	stride := int32(q.Layout.Stride * 4)
	for _, attr := range q.Layout.Attributes {
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Size, gl.FLOAT, false, stride, uintptr(attr.Offset*4))
		gl.EnableVertexAttribArray(attr.Location)
	}

	// The element buffer binding is VAO state and must stay bound.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	renderLogger.Printf("uploaded mesh vao=%d: %d vertices, %d indices", m.vao, q.VertexCount(), m.count)
	return m
}

// Draw issues one indexed draw call for the mesh with whatever program is
// current.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GPU objects. It is safe to call more than once.
func (m *Mesh) Delete() {
	if m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
