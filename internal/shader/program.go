// Package shader builds GPU programs from a vertex and a fragment stage.
//
// Building never fails outright. Unreadable files, compile errors and link
// errors are written to a log stream and recorded as diagnostics, and the
// resulting Program is still a valid (if broken) driver object. This keeps an
// interactive lesson running while the shader source is being fixed.
package shader

import (
	"log"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var diagLogger = log.New(os.Stderr, "[shader] ", log.Ltime|log.Lmsgprefix)

// Program owns a linked (or failed-to-link) GPU program object.
type Program struct {
	ctx    Context
	handle uint32
	linked bool
	diags  []Diagnostic
	logger *log.Logger
}

// Option configures program construction.
type Option func(*Program)

// WithLogger sends build diagnostics to l instead of stderr.
func WithLogger(l *log.Logger) Option {
	return func(p *Program) { p.logger = l }
}

// Load reads the two stage sources from disk and builds a program from them.
// A file that cannot be read is logged and treated as empty source, which
// then fails to compile.
func Load(ctx Context, vertexPath, fragmentPath string, opts ...Option) *Program {
	p := newProgram(ctx, opts)
	vertexSrc := p.readSource(Vertex, vertexPath)
	fragmentSrc := p.readSource(Fragment, fragmentPath)
	p.build(vertexSrc, fragmentSrc)
	return p
}

// Build builds a program from in-memory stage sources.
func Build(ctx Context, vertexSrc, fragmentSrc string, opts ...Option) *Program {
	p := newProgram(ctx, opts)
	p.build(vertexSrc, fragmentSrc)
	return p
}

func newProgram(ctx Context, opts []Option) *Program {
	p := &Program{ctx: ctx, logger: diagLogger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Program) readSource(stage Stage, path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		p.logger.Printf("shader file not successfully read: %s %q: %v", stage, path, err)
		p.diags = append(p.diags, Diagnostic{Kind: FileRead, Stage: stage, Path: path, Err: err})
		return ""
	}
	return string(b)
}

func (p *Program) build(vertexSrc, fragmentSrc string) {
	vertexShader := p.compileShader(Vertex, vertexSrc)
	defer p.ctx.DeleteShader(vertexShader)

	fragmentShader := p.compileShader(Fragment, fragmentSrc)
	defer p.ctx.DeleteShader(fragmentShader)

	// Link regardless of compile status; the driver reports the failure.
	p.handle = p.ctx.CreateProgram()
	p.ctx.AttachShader(p.handle, vertexShader)
	p.ctx.AttachShader(p.handle, fragmentShader)
	p.ctx.LinkProgram(p.handle)

	p.linked = p.ctx.ProgramLinked(p.handle)
	if !p.linked {
		logText := p.ctx.ProgramInfoLog(p.handle)
		p.logger.Printf("program linking failed:\n%s", strings.TrimRight(logText, "\x00\n"))
		p.diags = append(p.diags, Diagnostic{Kind: Link, Stage: NoStage, Detail: logText})
	}
}

// compileShader compiles a single stage. The shader object is returned even
// when compilation fails.
func (p *Program) compileShader(stage Stage, source string) uint32 {
	shader := p.ctx.CreateShader(stage)
	p.ctx.ShaderSource(shader, source)
	p.ctx.CompileShader(shader)

	if !p.ctx.ShaderCompiled(shader) {
		logText := p.ctx.ShaderInfoLog(shader)
		p.logger.Printf("shader compilation failed (%s):\n%s", stage, strings.TrimRight(logText, "\x00\n"))
		p.diags = append(p.diags, Diagnostic{Kind: Compile, Stage: stage, Detail: logText})
	}
	return shader
}

// Handle returns the driver's program identifier, or 0 once deleted.
func (p *Program) Handle() uint32 { return p.handle }

// Linked reports whether the driver linked the program.
func (p *Program) Linked() bool { return p.linked }

// Diagnostics returns the failures recovered from while building, in the
// order they happened.
func (p *Program) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), p.diags...)
}

// Err returns a *BuildError if anything went wrong while building.
func (p *Program) Err() error {
	if len(p.diags) == 0 {
		return nil
	}
	return &BuildError{Diagnostics: p.Diagnostics()}
}

// Use makes p the current program on its context. The returned Active is the
// only way to set uniforms, which keeps uniform writes tied to a bound
// program. It stays meaningful until another program is used.
func (p *Program) Use() Active {
	p.ctx.UseProgram(p.handle)
	return Active{p: p}
}

// Delete releases the program object. It is safe to call more than once.
func (p *Program) Delete() {
	if p.handle == 0 {
		return
	}
	p.ctx.DeleteProgram(p.handle)
	p.handle = 0
	p.linked = false
}

// Active is a program that has been made current by Use.
type Active struct {
	p *Program
}

// Program returns the bound program.
func (a Active) Program() *Program { return a.p }

// location returns -1 for unknown names and for deleted programs.
func (a Active) location(name string) int32 {
	if a.p == nil || a.p.handle == 0 {
		return -1
	}
	return a.p.ctx.UniformLocation(a.p.handle, name)
}

// SetBool sets a bool uniform. Unknown names are ignored.
func (a Active) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	a.SetInt(name, i)
}

// SetInt sets an int (or sampler) uniform. Unknown names are ignored.
func (a Active) SetInt(name string, v int32) {
	if loc := a.location(name); loc != -1 {
		a.p.ctx.Uniform1i(loc, v)
	}
}

// SetFloat sets a float uniform. Unknown names are ignored.
func (a Active) SetFloat(name string, v float32) {
	if loc := a.location(name); loc != -1 {
		a.p.ctx.Uniform1f(loc, v)
	}
}

// SetVec4 sets a vec4 uniform. Unknown names are ignored.
func (a Active) SetVec4(name string, v mgl32.Vec4) {
	if loc := a.location(name); loc != -1 {
		a.p.ctx.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

// SetMat4 sets a column-major mat4 uniform. Unknown names are ignored.
func (a Active) SetMat4(name string, m mgl32.Mat4) {
	if loc := a.location(name); loc != -1 {
		mat := [16]float32(m)
		a.p.ctx.UniformMatrix4fv(loc, &mat)
	}
}
