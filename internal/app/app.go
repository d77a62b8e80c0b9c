package app

import (
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/learngl/internal/render"
)

// Window is the part of the OS window the App drives. *glfw.Window
// implements it.
type Window interface {
	SetTitle(title string)
}

// App encapsulates the main application state and logic.
type App struct {
	Window   Window
	Renderer *render.Renderer
	View     *View
	Assets   Assets

	lesson    Lesson
	newLesson func(name string) (Lesson, error)
	clock     func() float64
}

// NewApp creates a new application instance.
func NewApp(window Window, renderer *render.Renderer, view *View, assets Assets) *App {
	return &App{
		Window:    window,
		Renderer:  renderer,
		View:      view,
		Assets:    assets,
		newLesson: NewLesson,
		clock:     glfw.GetTime,
	}
}

// Lesson returns the running lesson, or nil before the first SwitchLesson.
func (app *App) Lesson() Lesson { return app.lesson }

// SwitchLesson releases the running lesson and sets up the named one. If the
// new lesson cannot be set up, its partial state is released and the old
// lesson keeps running.
func (app *App) SwitchLesson(name string) error {
	next, err := app.newLesson(name)
	if err != nil {
		return err
	}
	if app.lesson != nil && app.lesson.Name() == name {
		return nil
	}
	if err := next.Setup(app.Renderer, app.Assets); err != nil {
		next.Release()
		return fmt.Errorf("setting up lesson %s: %w", name, err)
	}

	if app.lesson != nil {
		log.Printf("Switching lesson %s -> %s", app.lesson.Name(), name)
		app.lesson.Release()
	}
	app.lesson = next
	app.Window.SetTitle(app.View.Title(name))
	app.applyViewport()
	return nil
}

// Resize handles framebuffer size changes.
func (app *App) Resize(width, height int) {
	app.View.SetViewport(width, height)
	app.applyViewport()
}

func (app *App) applyViewport() {
	if app.lesson == nil {
		return
	}
	app.Renderer.SetViewport(app.lesson.Viewport(app.View.Width, app.View.Height))
}

// Frame clears the framebuffer and draws one frame of the running lesson.
func (app *App) Frame() {
	app.Renderer.BeginFrame()
	if app.lesson != nil {
		app.lesson.Frame(app.Renderer, app.clock())
	}
}

// Close releases the running lesson's GPU objects.
func (app *App) Close() {
	if app.lesson != nil {
		app.lesson.Release()
		app.lesson = nil
	}
}
