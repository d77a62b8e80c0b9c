package main

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/learngl/internal/app"
)

// EventHandlers manages all event handling for the application.
type EventHandlers struct {
	application *app.App
	lessons     []string
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(application *app.App, window *glfw.Window) *EventHandlers {
	eh := &EventHandlers{
		application: application,
		lessons:     app.Lessons(),
	}
	eh.SetupCallbacks(window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(wnd, key, action)
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.application.Resize(newW, newH)
	})
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(window *glfw.Window, key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}

	switch {
	case key == glfw.KeyEscape:
		window.SetShouldClose(true)

	case key == glfw.KeyW:
		eh.application.Renderer.ToggleWireframe()

	case key >= glfw.Key1 && key <= glfw.Key9:
		idx := int(key - glfw.Key1)
		if idx >= len(eh.lessons) {
			return
		}
		if err := eh.application.SwitchLesson(eh.lessons[idx]); err != nil {
			log.Printf("Error switching lesson: %v", err)
		}
	}
}
