package app

import "fmt"

// View tracks the framebuffer size and the window title prefix.
type View struct {
	Width, Height int
	TitlePrefix   string
}

// NewView creates a new view state with default values.
func NewView(width, height int, titlePrefix string) *View {
	return &View{
		Width:       width,
		Height:      height,
		TitlePrefix: titlePrefix,
	}
}

// SetViewport updates the viewport dimensions.
func (vs *View) SetViewport(width, height int) {
	vs.Width = width
	vs.Height = height
}

// Title returns the window title for the named lesson.
func (vs *View) Title(lesson string) string {
	if vs.TitlePrefix == "" {
		return lesson
	}
	return fmt.Sprintf("%s (%s)", vs.TitlePrefix, lesson)
}
