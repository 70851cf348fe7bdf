package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weldlab/orbitweld/frame"
)

// TestCylinderMesh_Dimensions verifies the three grids are parallel and n×n.
func TestCylinderMesh_Dimensions(t *testing.T) {
	opts := frame.DefaultPipeOptions()
	opts.MeshSamples = 12

	m, err := frame.CylinderMesh(opts)
	require.NoError(t, err)

	assert.Equal(t, 12, m.Rows())
	assert.Equal(t, 12, m.Cols())
	require.Len(t, m.X, 12)
	require.Len(t, m.Y, 12)
	require.Len(t, m.Z, 12)
	for i := range m.X {
		assert.Len(t, m.X[i], 12)
		assert.Len(t, m.Y[i], 12)
		assert.Len(t, m.Z[i], 12)
	}
}

// TestCylinderMesh_Surface checks that every sample lies on the cylinder:
// radial distance r from the pipe axis, longitude within [-L/2, L/2], with
// the first and last rows exactly on the pipe ends.
func TestCylinderMesh_Surface(t *testing.T) {
	opts := frame.DefaultPipeOptions()
	opts.MeshSamples = 10

	m, err := frame.CylinderMesh(opts)
	require.NoError(t, err)

	half := opts.Length / 2
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			// Render (x,y,z) maps back to user coords via the involution:
			// user X = -render X, user Y = render Z, user Z = render Y.
			long := -m.X[i][j]
			radial := math.Hypot(m.Z[i][j], m.Y[i][j])

			assert.InDeltaf(t, opts.Radius, radial, 1e-9, "sample (%d,%d) on the surface", i, j)
			assert.LessOrEqualf(t, math.Abs(long), half+1e-9, "sample (%d,%d) within pipe length", i, j)
		}
	}

	// End rows sit exactly on the pipe ends.
	assert.InDelta(t, -half, -m.X[0][0], 1e-12, "first row at -L/2 in user coords")
	assert.InDelta(t, half, -m.X[m.Rows()-1][0], 1e-12, "last row at +L/2 in user coords")
}

// TestCylinderMesh_SeamClosure verifies the θ sweep closes on itself: the
// last column must coincide with the first in every row.
func TestCylinderMesh_SeamClosure(t *testing.T) {
	m, err := frame.CylinderMesh(frame.DefaultPipeOptions())
	require.NoError(t, err)

	last := m.Cols() - 1
	for i := 0; i < m.Rows(); i++ {
		assert.InDeltaf(t, m.X[i][0], m.X[i][last], 1e-9, "row %d seam X", i)
		assert.InDeltaf(t, m.Y[i][0], m.Y[i][last], 1e-9, "row %d seam Y", i)
		assert.InDeltaf(t, m.Z[i][0], m.Z[i][last], 1e-9, "row %d seam Z", i)
	}
}
