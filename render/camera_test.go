package render_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weldlab/orbitweld/render"
)

const tol = 1e-12

// TestNewCamera_Validation rejects non-positive axis limits.
func TestNewCamera_Validation(t *testing.T) {
	_, err := render.NewCamera(20, 135, 0)
	assert.ErrorIs(t, err, render.ErrBadLimit)
	_, err = render.NewCamera(20, 135, -5)
	assert.ErrorIs(t, err, render.ErrBadLimit)

	_, err = render.NewCamera(-90, 400, 200)
	assert.NoError(t, err, "any view angles are legal")
}

// TestProject_HeadOnView pins the projection basis at elev=0, azim=0:
// screen right is world +Y, screen up is world +Z, depth is world +X.
func TestProject_HeadOnView(t *testing.T) {
	cam, err := render.NewCamera(0, 0, 200)
	require.NoError(t, err)

	x, y, d := cam.Project(mgl64.Vec3{1, 2, 3})
	assert.InDelta(t, 2, x, tol, "screen x is world Y")
	assert.InDelta(t, 3, y, tol, "screen y is world Z")
	assert.InDelta(t, 1, d, tol, "depth is world X")
}

// TestProject_TopDownView checks elev=90: looking straight down, the screen
// plane is the XY plane and depth is world +Z.
func TestProject_TopDownView(t *testing.T) {
	cam, err := render.NewCamera(90, 0, 200)
	require.NoError(t, err)

	x, y, d := cam.Project(mgl64.Vec3{1, 2, 3})
	assert.InDelta(t, 2, x, tol)
	assert.InDelta(t, -1, y, tol, "world +X points down-screen when viewed from above")
	assert.InDelta(t, 3, d, tol, "depth is world Z")
}

// TestProject_DepthOrdering verifies that moving a point toward the camera
// strictly increases depth while leaving screen coordinates unchanged —
// the invariant the painter's sort relies on.
func TestProject_DepthOrdering(t *testing.T) {
	cam, err := render.NewCamera(20, 135, 200)
	require.NoError(t, err)

	p := mgl64.Vec3{10, -30, 55}
	x0, y0, d0 := cam.Project(p)

	// View direction for (elev, azim) in the camera's own basis.
	view := viewDir(20, 135)
	x1, y1, d1 := cam.Project(p.Add(view.Mul(25)))

	assert.InDelta(t, x0, x1, 1e-9, "orthographic: screen x unchanged along view axis")
	assert.InDelta(t, y0, y1, 1e-9, "orthographic: screen y unchanged along view axis")
	assert.Greater(t, d1, d0, "moving toward the camera increases depth")
}

// viewDir reproduces the camera's view axis for test displacement.
func viewDir(elevDeg, azimDeg float64) mgl64.Vec3 {
	a := mgl64.DegToRad(azimDeg)
	e := mgl64.DegToRad(elevDeg)

	return mgl64.Vec3{
		math.Cos(a) * math.Cos(e),
		math.Sin(a) * math.Cos(e),
		math.Sin(e),
	}
}
