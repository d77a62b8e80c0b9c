// Package render owns the OpenGL side of the lessons:
// 1. GLContext, the driver behind shader programs.
// 2. Meshes and textures uploaded to the GPU.
// 3. Per-frame state: viewport, clear color, polygon mode and draw timing.
package render

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/learngl/internal/geom"
	"github.com/irfansharif/learngl/internal/palette"
)

var renderLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("LEARNGL_DEBUG_RENDER") == "1" {
		renderLogger = log.New(os.Stdout, "[render] ", log.Ltime|log.Lmsgprefix)
	}
}

// Init loads the OpenGL function pointers for the current context and
// returns the driver's version string.
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", err
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

type Renderer struct {
	ctx           GLContext
	clear         colorful.Color
	viewport      geom.Viewport
	viewportDirty bool
	wireframe     bool
	stats         Stats
}

// Stats tracks rendering performance metrics.
type Stats struct {
	DrawCalls      int     // draw calls issued in the last frame
	LastDrawTimeUs float64 // time spent in the last Draw() call in microseconds
}

func NewRenderer(clear colorful.Color) *Renderer {
	return &Renderer{clear: clear}
}

// Context returns the shader driver for the current GL context.
func (r *Renderer) Context() GLContext { return r.ctx }

// SetViewport sets the region subsequent frames render into. It takes effect
// at the next BeginFrame.
func (r *Renderer) SetViewport(v geom.Viewport) {
	r.viewport = v
	r.viewportDirty = true
}

// Viewport returns the current viewport.
func (r *Renderer) Viewport() geom.Viewport { return r.viewport }

// ToggleWireframe switches between filled and outlined polygons.
func (r *Renderer) ToggleWireframe() {
	r.wireframe = !r.wireframe
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// BeginFrame clears the framebuffer to the clear color.
func (r *Renderer) BeginFrame() {
	r.stats.DrawCalls = 0
	if r.viewportDirty {
		v := r.viewport
		gl.Viewport(v.X, v.Y, v.Width, v.Height)
		renderLogger.Printf("viewport %dx%d at (%d,%d)", v.Width, v.Height, v.X, v.Y)
		r.viewportDirty = false
	}
	gl.ClearColor(palette.RGBA(r.clear, 1))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw draws m with the current program and textures.
func (r *Renderer) Draw(m *Mesh) {
	startTime := time.Now()
	m.Draw()
	r.stats.DrawCalls++
	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// Stats returns the current performance statistics
func (r *Renderer) Stats() Stats {
	return r.stats
}
