package app

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/irfansharif/learngl/internal/geom"
	"github.com/irfansharif/learngl/internal/palette"
	"github.com/irfansharif/learngl/internal/render"
	"github.com/irfansharif/learngl/internal/shader"
	"github.com/irfansharif/learngl/internal/texture"
)

// Lesson is one tutorial program: it builds its program, mesh and textures in
// Setup, draws once per Frame and frees everything in Release.
type Lesson interface {
	Name() string
	Setup(r *render.Renderer, assets Assets) error
	Frame(r *render.Renderer, t float64)
	Viewport(width, height int) geom.Viewport
	Release()
}

// Assets locates the files lessons load at setup.
type Assets struct {
	ShaderDir  string
	TextureDir string
}

func (a Assets) shaderPaths(name string) (vertexPath, fragmentPath string) {
	return filepath.Join(a.ShaderDir, name+".vert"), filepath.Join(a.ShaderDir, name+".frag")
}

// lessonOrder is also the order of the number key bindings.
var lessonOrder = []string{"rectangle", "shaders", "textures", "transformations"}

// Lessons returns the lesson names in key binding order.
func Lessons() []string {
	return append([]string(nil), lessonOrder...)
}

// NewLesson returns the named lesson, not yet set up.
func NewLesson(name string) (Lesson, error) {
	switch name {
	case "rectangle":
		return &rectangleLesson{}, nil
	case "shaders":
		return &shadersLesson{}, nil
	case "textures":
		return &texturesLesson{}, nil
	case "transformations":
		return &transformationsLesson{}, nil
	default:
		return nil, fmt.Errorf("unknown lesson %q (want one of %s)", name, strings.Join(lessonOrder, ", "))
	}
}

// scene holds the GPU objects a lesson owns.
type scene struct {
	program  *shader.Program
	mesh     *render.Mesh
	textures []*render.Texture
}

// Release frees the program, mesh and textures. Safe on a partially set up
// scene.
func (s *scene) Release() {
	if s.program != nil {
		s.program.Delete()
	}
	if s.mesh != nil {
		s.mesh.Delete()
	}
	for _, t := range s.textures {
		t.Delete()
	}
	s.program, s.mesh, s.textures = nil, nil, nil
}

// bindTextures binds the scene's textures to consecutive units starting at 0.
func (s *scene) bindTextures() {
	for unit, t := range s.textures {
		t.Bind(uint32(unit))
	}
}

// loadTexture uploads the image at path. A missing or undecodable file is
// logged and replaced by a checkerboard so the lesson still renders.
func loadTexture(path string) (*render.Texture, error) {
	img, err := texture.Load(path)
	if err != nil {
		log.Printf("failed to load texture: %v", err)
		img = texture.Checkerboard(64, 8, palette.DefaultClear.Clamped(), palette.Red)
	}
	return render.NewTexture(img)
}
