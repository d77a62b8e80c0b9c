package geom

// Viewport is a framebuffer region in pixels, as passed to glViewport.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// Fill returns a viewport covering the whole framebuffer.
func Fill(width, height int) Viewport {
	return Viewport{Width: int32(width), Height: int32(height)}
}

// Letterbox returns the largest viewport anchored at the origin whose aspect
// ratio does not exceed num:den in either direction. With 4:3 this is
// w = min(width, 4h/3), h = min(height, 3w/4), using integer division.
func Letterbox(width, height, num, den int) Viewport {
	if width <= 0 || height <= 0 || num <= 0 || den <= 0 {
		return Viewport{}
	}
	w := minInt(width, num*height/den)
	h := minInt(height, den*width/num)
	return Viewport{Width: int32(w), Height: int32(h)}
}

// minInt returns the minimum of two integers
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
