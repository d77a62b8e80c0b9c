package shader

// Stage identifies one compilation unit of a program.
type Stage int

const (
	NoStage Stage = iota // diagnostics that belong to the whole program
	Vertex
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case NoStage:
		return "none"
	default:
		return "unknown"
	}
}

// Context is the slice of the graphics driver a Program talks to. The driver
// keeps implicit global state (the current program, most notably); making it
// an explicit value lets programs be built and exercised without a real GL
// context.
//
// All methods must be called from the thread that owns the rendering context.
type Context interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns the full compiler log for the shader, sized by
	// the driver's reported log length.
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)

	UseProgram(program uint32)

	// UniformLocation returns -1 when the program has no active uniform
	// with that name.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, m *[16]float32)
}
