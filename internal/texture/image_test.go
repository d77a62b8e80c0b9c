package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// twoRowPNG encodes a 2x2 image whose top row is red and bottom row white.
func twoRowPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, red)
	img.Set(1, 0, red)
	img.Set(0, 1, white)
	img.Set(1, 1, white)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeFlips(t *testing.T) {
	img, err := Decode(bytes.NewReader(twoRowPNG(t)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(1, 0))
	assert.Equal(t, red, img.RGBAAt(0, 1))
	assert.Equal(t, red, img.RGBAAt(1, 1))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.png")
	require.NoError(t, os.WriteFile(path, twoRowPNG(t), 0o644))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, red, img.RGBAAt(0, 1))

	_, err = Load(filepath.Join(t.TempDir(), "container.jpg"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(0, 1, white)
	FlipVertical(img)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(0, 1))
	assert.Equal(t, red, img.RGBAAt(0, 2))
}

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(4, 2, red, white)
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, white, img.RGBAAt(2, 0))
	assert.Equal(t, white, img.RGBAAt(0, 3))
	assert.Equal(t, red, img.RGBAAt(3, 3))

	solid := Checkerboard(2, 0, red, white)
	assert.Equal(t, red, solid.RGBAAt(1, 1))
}
