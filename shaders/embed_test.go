package shaders

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryLessonHasBothStages(t *testing.T) {
	for _, name := range []string{"rectangle", "shaders", "textures", "transformations"} {
		for _, ext := range []string{".vert", ".frag"} {
			src, err := os.ReadFile(name + ext)
			require.NoError(t, err, name+ext)
			assert.True(t, strings.HasPrefix(string(src), "#version 410 core"), name+ext)
			assert.Contains(t, string(src), "void main()", name+ext)
		}
	}
}

func TestRectangleSources(t *testing.T) {
	vert, err := os.ReadFile("rectangle.vert")
	require.NoError(t, err)
	assert.Equal(t, string(vert), RectangleVertex)
	assert.Contains(t, RectangleVertex, "gl_Position")
	assert.Contains(t, RectangleFragment, "FragColor = vec4(1.0, 0.5, 0.2, 1.0);")
}
