package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/learngl/internal/app"
	"github.com/irfansharif/learngl/internal/palette"
	"github.com/irfansharif/learngl/internal/render"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

var (
	lessonFlag = flag.String("lesson", "", "lesson to start with: rectangle, shaders, textures or transformations (default $LEARNGL_LESSON, else transformations)")
	shaderDir  = flag.String("shaders", "shaders", "directory holding the lesson .vert/.frag sources")
	textureDir = flag.String("textures", "textures", "directory holding container.jpg and awesomeface.png")
	widthFlag  = flag.Int("width", 800, "initial window width")
	heightFlag = flag.Int("height", 600, "initial window height")
	titleFlag  = flag.String("title", "LearnOpenGL", "window title")
	clearFlag  = flag.String("clear", palette.DefaultClear.Hex(), "clear color as #rrggbb")
)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("LEARNGL_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func main() {
	flag.Parse()

	clearColor, err := palette.Parse(*clearFlag)
	if err != nil {
		log.Fatalf("Invalid -clear: %v", err)
	}
	lesson := startLesson()

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(*widthFlag, *heightFlag, *titleFlag, nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	version, err := render.Init()
	if err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}
	log.Printf("OpenGL version %s", version)

	cw, ch := window.GetFramebufferSize()
	application := app.NewApp(
		window,
		render.NewRenderer(clearColor),
		app.NewView(cw, ch, *titleFlag),
		app.Assets{ShaderDir: *shaderDir, TextureDir: *textureDir},
	)
	defer application.Close()

	if err := application.SwitchLesson(lesson); err != nil {
		log.Fatalf("Failed to start lesson: %v", err)
	}

	// Initialize event handlers.
	NewEventHandlers(application, window)

	frameCount := 0
	lastStatsUpdate := time.Now()

	// Main loop.
	for !window.ShouldClose() {
		application.Frame()
		window.SwapBuffers()
		glfw.PollEvents()

		frameCount++
		if now := time.Now(); now.Sub(lastStatsUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastStatsUpdate).Seconds()
			stats := application.Renderer.Stats()
			runtimeLogger.Printf("%s: %.1f FPS, %d draw calls/frame, %.2f µs/draw, viewport %dx%d",
				application.Lesson().Name(), fps, stats.DrawCalls, stats.LastDrawTimeUs,
				application.Renderer.Viewport().Width, application.Renderer.Viewport().Height)
			frameCount, lastStatsUpdate = 0, now
		}
	}
}

// startLesson picks the first lesson: -lesson, then $LEARNGL_LESSON, then
// the last lesson in the course.
func startLesson() string {
	if *lessonFlag != "" {
		return checkLesson(*lessonFlag)
	}
	if env := os.Getenv("LEARNGL_LESSON"); env != "" {
		return checkLesson(env)
	}
	lessons := app.Lessons()
	return lessons[len(lessons)-1]
}

func checkLesson(name string) string {
	if _, err := app.NewLesson(name); err != nil {
		log.Fatalf("Invalid lesson: %v", err)
	}
	return name
}
