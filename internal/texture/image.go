// Package texture turns image files into pixel data ready for upload: decoded,
// converted to RGBA and flipped so the first row is the bottom of the image,
// which is where OpenGL expects texture coordinate v = 0.
package texture

import (
	"image"
	"image/color"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Load decodes the image file at path.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening texture")
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading texture %s", path)
	}
	return img, nil
}

// Decode decodes a JPEG or PNG image into flipped RGBA pixels.
func Decode(r io.Reader) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, errors.Errorf("empty %s image", format)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	FlipVertical(rgba)
	return rgba, nil
}

// FlipVertical reverses the row order of img in place.
func FlipVertical(img *image.RGBA) {
	rowLen := img.Bounds().Dx() * 4
	row := make([]byte, rowLen)
	h := img.Bounds().Dy()
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Checkerboard returns a size by size image of cell-sized squares alternating
// between a and b. Lessons draw it when a texture file cannot be loaded.
func Checkerboard(size, cell int, a, b color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cell <= 0 {
		cell = size
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.Set(x, y, c)
		}
	}
	return img
}
