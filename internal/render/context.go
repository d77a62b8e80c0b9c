package render

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/learngl/internal/shader"
)

// GLContext implements shader.Context on top of the current OpenGL context.
// gl.Init must have been called on the owning thread.
type GLContext struct{}

var _ shader.Context = GLContext{}

func (GLContext) CreateShader(stage shader.Stage) uint32 {
	switch stage {
	case shader.Fragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (GLContext) ShaderSource(id uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
}

func (GLContext) CompileShader(id uint32) { gl.CompileShader(id) }

func (GLContext) ShaderCompiled(id uint32) bool {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GLContext) ShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (GLContext) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (GLContext) CreateProgram() uint32 { return gl.CreateProgram() }

func (GLContext) AttachShader(program, id uint32) { gl.AttachShader(program, id) }

func (GLContext) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (GLContext) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GLContext) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (GLContext) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GLContext) UseProgram(program uint32) { gl.UseProgram(program) }

func (GLContext) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GLContext) Uniform1i(location int32, v int32)   { gl.Uniform1i(location, v) }
func (GLContext) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (GLContext) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (GLContext) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
