package mesh

import (
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/learngl/internal/geom"
)

// Triangulate triangulates a simple polygon using the earcut algorithm and
// returns element indices into polygonPoints, three per triangle.
func Triangulate(polygonPoints []geom.Point) ([]uint32, error) {
	if len(polygonPoints) < 3 {
		return nil, fmt.Errorf("degenerate polygon (%d vertices < 3)", len(polygonPoints))
	}

	// Format: [x0, y0, x1, y1, ..., xn, yn]
	vertexCoords := make([]float64, len(polygonPoints)*2)
	for i, point := range polygonPoints {
		vertexCoords[i*2] = point.X
		vertexCoords[i*2+1] = point.Y
	}

	triangleIndices, err := earcut.Earcut(vertexCoords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %w", len(polygonPoints), err)
	}
	if len(triangleIndices) == 0 || len(triangleIndices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangulation (%d indices)", len(triangleIndices))
	}

	indices := make([]uint32, len(triangleIndices))
	for i, idx := range triangleIndices {
		indices[i] = uint32(idx)
	}
	return indices, nil
}
