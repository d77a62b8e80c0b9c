package app

import (
	"math"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/irfansharif/learngl/internal/geom"
	"github.com/irfansharif/learngl/internal/mesh"
	"github.com/irfansharif/learngl/internal/palette"
	"github.com/irfansharif/learngl/internal/render"
	"github.com/irfansharif/learngl/internal/shader"
	"github.com/irfansharif/learngl/shaders"
)

// rectangleLesson draws a flat orange quad with shaders compiled from
// embedded sources.
type rectangleLesson struct{ scene }

func (l *rectangleLesson) Name() string { return "rectangle" }

func (l *rectangleLesson) Setup(r *render.Renderer, _ Assets) error {
	l.program = shader.Build(r.Context(), shaders.RectangleVertex, shaders.RectangleFragment)
	q, err := mesh.Rectangle()
	if err != nil {
		return err
	}
	l.mesh = render.NewMesh(q)
	return nil
}

func (l *rectangleLesson) Frame(r *render.Renderer, _ float64) {
	l.program.Use()
	r.Draw(l.mesh)
}

func (l *rectangleLesson) Viewport(width, height int) geom.Viewport {
	return geom.Fill(width, height)
}

// shadersLesson draws a quad with per-vertex colors blended with a pulsing
// uniform color, sliding left and right over time.
type shadersLesson struct{ scene }

func (l *shadersLesson) Name() string { return "shaders" }

func (l *shadersLesson) Setup(r *render.Renderer, assets Assets) error {
	vertexPath, fragmentPath := assets.shaderPaths("shaders")
	l.program = shader.Load(r.Context(), vertexPath, fragmentPath)
	q, err := mesh.ColoredQuad(palette.Corners())
	if err != nil {
		return err
	}
	l.mesh = render.NewMesh(q)
	l.program.Use().SetBool("useVertexColor", true)
	return nil
}

func (l *shadersLesson) Frame(r *render.Renderer, t float64) {
	active := l.program.Use()
	active.SetVec4("ourColor", palette.Vec4(palette.Pulse(t), 1))
	active.SetFloat("offset", float32(0.25*math.Sin(t)))
	r.Draw(l.mesh)
}

func (l *shadersLesson) Viewport(width, height int) geom.Viewport {
	return geom.Fill(width, height)
}

// texturesLesson draws a quad with one texture.
type texturesLesson struct{ scene }

func (l *texturesLesson) Name() string { return "textures" }

func (l *texturesLesson) Setup(r *render.Renderer, assets Assets) error {
	vertexPath, fragmentPath := assets.shaderPaths("textures")
	l.program = shader.Load(r.Context(), vertexPath, fragmentPath)
	q, err := mesh.TexturedQuad()
	if err != nil {
		return err
	}
	l.mesh = render.NewMesh(q)

	container, err := loadTexture(filepath.Join(assets.TextureDir, "container.jpg"))
	if err != nil {
		return err
	}
	l.textures = append(l.textures, container)
	l.program.Use().SetInt("texture1", 0)
	return nil
}

func (l *texturesLesson) Frame(r *render.Renderer, _ float64) {
	l.bindTextures()
	l.program.Use()
	r.Draw(l.mesh)
}

func (l *texturesLesson) Viewport(width, height int) geom.Viewport {
	return geom.Letterbox(width, height, 4, 3)
}

// transformationsLesson draws two blended textures on a quad that spins in
// the bottom right quadrant.
type transformationsLesson struct{ scene }

var spinOffset = mgl32.Vec3{0.5, -0.5, 0}

func (l *transformationsLesson) Name() string { return "transformations" }

func (l *transformationsLesson) Setup(r *render.Renderer, assets Assets) error {
	vertexPath, fragmentPath := assets.shaderPaths("transformations")
	l.program = shader.Load(r.Context(), vertexPath, fragmentPath)
	q, err := mesh.TexturedQuad()
	if err != nil {
		return err
	}
	l.mesh = render.NewMesh(q)

	for _, name := range []string{"container.jpg", "awesomeface.png"} {
		tex, err := loadTexture(filepath.Join(assets.TextureDir, name))
		if err != nil {
			return err
		}
		l.textures = append(l.textures, tex)
	}

	active := l.program.Use()
	active.SetInt("texture1", 0)
	active.SetInt("texture2", 1)
	active.SetFloat("mixValue", 0.2)
	return nil
}

func (l *transformationsLesson) Frame(r *render.Renderer, t float64) {
	l.bindTextures()
	l.program.Use().SetMat4("transform", geom.Spin(t, spinOffset))
	r.Draw(l.mesh)
}

func (l *transformationsLesson) Viewport(width, height int) geom.Viewport {
	return geom.Letterbox(width, height, 4, 3)
}
