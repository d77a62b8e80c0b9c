package shader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// fakeContext is an in-memory driver. It compiles anything with a #version
// line and a main function, honours #error directives, links programs whose
// stages all compiled, and stores uniform values per program.
type fakeContext struct {
	nextID   uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	current  uint32

	useCalls int
}

type fakeShader struct {
	stage    Stage
	source   string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	attached  []uint32
	linkTried bool
	linked    bool
	log       string
	deleted   bool
	uniforms  map[string]int32
	values    map[int32]interface{}
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (f *fakeContext) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeContext) CreateShader(stage Stage) uint32 {
	id := f.id()
	f.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (f *fakeContext) ShaderSource(shader uint32, source string) {
	f.shaders[shader].source = source
}

var errorDirective = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)

func (f *fakeContext) CompileShader(shader uint32) {
	s := f.shaders[shader]
	switch {
	case strings.TrimSpace(s.source) == "":
		s.log = "0:1(1): error: syntax error, unexpected end of file\n"
	case !strings.Contains(s.source, "#version"):
		s.log = "0:1(1): error: GLSL 1.10 is not supported\n"
	case errorDirective.MatchString(s.source):
		m := errorDirective.FindStringSubmatch(s.source)
		s.log = fmt.Sprintf("0:1(1): error: %s\n", m[1])
	case !strings.Contains(s.source, "void main"):
		s.log = "error: main function not found\n"
	default:
		s.compiled = true
		s.log = ""
	}
}

func (f *fakeContext) ShaderCompiled(shader uint32) bool { return f.shaders[shader].compiled }
func (f *fakeContext) ShaderInfoLog(shader uint32) string { return f.shaders[shader].log }
func (f *fakeContext) DeleteShader(shader uint32)         { f.shaders[shader].deleted = true }

func (f *fakeContext) CreateProgram() uint32 {
	id := f.id()
	f.programs[id] = &fakeProgram{
		uniforms: make(map[string]int32),
		values:   make(map[int32]interface{}),
	}
	return id
}

func (f *fakeContext) AttachShader(program, shader uint32) {
	p := f.programs[program]
	p.attached = append(p.attached, shader)
}

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

func (f *fakeContext) LinkProgram(program uint32) {
	p := f.programs[program]
	p.linkTried = true
	stages := make(map[Stage]bool)
	for _, id := range p.attached {
		s := f.shaders[id]
		if !s.compiled {
			p.log = "error: linking with uncompiled/unspecialized shader\n"
			return
		}
		stages[s.stage] = true
	}
	if !stages[Vertex] || !stages[Fragment] {
		p.log = "error: program lacks a vertex or fragment stage\n"
		return
	}
	p.linked = true
	for _, id := range p.attached {
		for _, m := range uniformDecl.FindAllStringSubmatch(f.shaders[id].source, -1) {
			if _, ok := p.uniforms[m[1]]; !ok {
				p.uniforms[m[1]] = int32(len(p.uniforms))
			}
		}
	}
}

func (f *fakeContext) ProgramLinked(program uint32) bool   { return f.programs[program].linked }
func (f *fakeContext) ProgramInfoLog(program uint32) string { return f.programs[program].log }
func (f *fakeContext) DeleteProgram(program uint32)         { f.programs[program].deleted = true }

func (f *fakeContext) UseProgram(program uint32) {
	f.useCalls++
	f.current = program
}

func (f *fakeContext) UniformLocation(program uint32, name string) int32 {
	p := f.programs[program]
	if !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// set writes to the current program, like the driver does.
func (f *fakeContext) set(location int32, v interface{}) {
	p, ok := f.programs[f.current]
	if !ok || location == -1 {
		return
	}
	p.values[location] = v
}

func (f *fakeContext) Uniform1i(location int32, v int32)   { f.set(location, v) }
func (f *fakeContext) Uniform1f(location int32, v float32) { f.set(location, v) }
func (f *fakeContext) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.set(location, [4]float32{v0, v1, v2, v3})
}
func (f *fakeContext) UniformMatrix4fv(location int32, m *[16]float32) { f.set(location, *m) }

// uniform reads back a stored uniform value by name.
func (f *fakeContext) uniform(program uint32, name string) (interface{}, bool) {
	p := f.programs[program]
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

var fragConstant = regexp.MustCompile(`FragColor\s*=\s*vec4\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*\)`)

// draw "rasterises" with the current program: every covered pixel gets the
// constant the fragment stage writes. ok is false when nothing is drawn.
func (f *fakeContext) draw() (rgba [4]float32, ok bool) {
	p, found := f.programs[f.current]
	if !found || !p.linked || p.deleted {
		return rgba, false
	}
	for _, id := range p.attached {
		s := f.shaders[id]
		if s.stage != Fragment {
			continue
		}
		m := fragConstant.FindStringSubmatch(s.source)
		if m == nil {
			return rgba, false
		}
		for i := range rgba {
			v, err := strconv.ParseFloat(m[i+1], 32)
			if err != nil {
				return rgba, false
			}
			rgba[i] = float32(v)
		}
		return rgba, true
	}
	return rgba, false
}
