package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weldlab/orbitweld/frame"
)

// tol is the accepted floating-point slack for trigonometric identities.
const tol = 1e-12

// TestRenderVec_Mapping pins the exact axis remap: (x, y, z) → (-x, z, y).
func TestRenderVec_Mapping(t *testing.T) {
	got := frame.RenderVec(frame.Vec{1, 2, 3})
	assert.Equal(t, frame.Vec{-1, 3, 2}, got)
}

// TestRenderVec_Involution verifies the remap is its own inverse, bit-exact:
// components are only negated and swapped, so no rounding can creep in.
func TestRenderVec_Involution(t *testing.T) {
	vectors := []frame.Vec{
		{0, 0, 0},
		{1, 2, 3},
		{-80, 100, 0},
		{0.1, -0.2, 0.3},
		{math.Pi, -math.E, math.Sqrt2},
	}
	for _, v := range vectors {
		assert.Equal(t, v, frame.RenderVec(frame.RenderVec(v)), "double remap must return the original exactly")
	}
}

// TestToolAxes_Orthonormal sweeps θ over [0°, 360°) and checks the tool
// triad is pairwise orthogonal and unit length everywhere.
func TestToolAxes_Orthonormal(t *testing.T) {
	for theta := 0.0; theta < 360.0; theta += 7.5 {
		x, y, z := frame.ToolAxes(theta)

		assert.InDeltaf(t, 1.0, x.Len(), tol, "|X-tool| at θ=%g", theta)
		assert.InDeltaf(t, 1.0, y.Len(), tol, "|Y-tool| at θ=%g", theta)
		assert.InDeltaf(t, 1.0, z.Len(), tol, "|Z-tool| at θ=%g", theta)

		assert.InDeltaf(t, 0.0, x.Dot(y), tol, "X·Y at θ=%g", theta)
		assert.InDeltaf(t, 0.0, x.Dot(z), tol, "X·Z at θ=%g", theta)
		assert.InDeltaf(t, 0.0, y.Dot(z), tol, "Y·Z at θ=%g", theta)
	}
}

// TestToolAxes_Orientation checks the handedness choice: increasing θ moves
// in the +X-tool direction, so X-tool must equal d(Z-tool)/dθ.
func TestToolAxes_Orientation(t *testing.T) {
	const h = 1e-6 // degrees, for the finite difference

	for _, theta := range []float64{0, 33, 90, 180, 261, 270} {
		x, _, _ := frame.ToolAxes(theta)
		_, _, z0 := frame.ToolAxes(theta)
		_, _, z1 := frame.ToolAxes(theta + h)

		// dZ/dθ in per-radian units.
		deriv := z1.Sub(z0).Mul(1 / (h * math.Pi / 180))
		assert.InDeltaf(t, x[1], deriv[1], 1e-5, "tangent Y component at θ=%g", theta)
		assert.InDeltaf(t, x[2], deriv[2], 1e-5, "tangent Z component at θ=%g", theta)
	}
}

// TestToolPosition_Waypoints pins the user-coordinate positions required at
// the cardinal waypoints for r=100, offset -80.
func TestToolPosition_Waypoints(t *testing.T) {
	opts := frame.DefaultPipeOptions()

	p0 := frame.ToolPosition(0, opts)
	assert.InDelta(t, -80, p0[0], tol)
	assert.InDelta(t, 100, p0[1], tol)
	assert.InDelta(t, 0, p0[2], tol)

	p90 := frame.ToolPosition(90, opts)
	assert.InDelta(t, -80, p90[0], tol)
	assert.InDelta(t, 0, p90[1], tol)
	assert.InDelta(t, 100, p90[2], tol)
}

// TestToolFrame_RenderMapping verifies the assembled frame is fully in
// render coordinates: origin = RenderVec(user position), axes scaled by
// AxisScale before remapping.
func TestToolFrame_RenderMapping(t *testing.T) {
	opts := frame.DefaultPipeOptions()

	f, err := frame.ToolFrame(0, opts)
	require.NoError(t, err)

	// User position (-80, 100, 0) → render (80, 0, 100).
	assert.InDelta(t, 80, f.Origin[0], tol)
	assert.InDelta(t, 0, f.Origin[1], tol)
	assert.InDelta(t, 100, f.Origin[2], tol)

	// Z-tool at θ=0 is user (0,1,0), scaled to 60, remapped to (0,0,60).
	assert.InDelta(t, 0, f.Z.Dir[0], tol)
	assert.InDelta(t, 0, f.Z.Dir[1], tol)
	assert.InDelta(t, 60, f.Z.Dir[2], tol)

	// Y-tool is the pipe axis user (1,0,0), scaled, remapped to (-60,0,0).
	assert.InDelta(t, -60, f.Y.Dir[0], tol)

	// Every arrow starts at the frame origin.
	assert.Equal(t, f.Origin, f.X.Origin)
	assert.Equal(t, f.Origin, f.Y.Origin)
	assert.Equal(t, f.Origin, f.Z.Origin)
}

// TestToolFrame_Labels checks the per-axis labels, colors, and badge.
func TestToolFrame_Labels(t *testing.T) {
	f, err := frame.ToolFrame(270, frame.DefaultPipeOptions())
	require.NoError(t, err)

	assert.Equal(t, "X-tool (270°)", f.X.Label)
	assert.Equal(t, "Y-tool (270°)", f.Y.Label)
	assert.Equal(t, "Z-tool (270°)", f.Z.Label)
	assert.Equal(t, "θ=270°", f.Badge)
	assert.Equal(t, frame.ColorX, f.X.Color)
	assert.Equal(t, frame.ColorY, f.Y.Color)
	assert.Equal(t, frame.ColorZ, f.Z.Color)

	// Badge sits inward: origin minus 0.3 of the scaled normal.
	want := f.Origin.Sub(f.Z.Dir.Mul(0.3))
	assert.Equal(t, want, f.BadgeAt)
}

// TestToolFrame_OrderIndependence recomputes a frame after computing others;
// results must be identical because frames share no state.
func TestToolFrame_OrderIndependence(t *testing.T) {
	opts := frame.DefaultPipeOptions()

	first, err := frame.ToolFrame(90, opts)
	require.NoError(t, err)
	for _, theta := range []float64{270, 180, 0} {
		_, err = frame.ToolFrame(theta, opts)
		require.NoError(t, err)
	}
	again, err := frame.ToolFrame(90, opts)
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

// TestWorldFrame pins the world triad: origin at user (80,0,0), axes along
// the user basis scaled to 150, all remapped.
func TestWorldFrame(t *testing.T) {
	f, err := frame.WorldFrame(frame.DefaultPipeOptions())
	require.NoError(t, err)

	assert.Equal(t, frame.Vec{-80, 0, 0}, f.Origin)
	assert.Equal(t, frame.Vec{-150, 0, 0}, f.X.Dir, "user X basis remaps to -render X")
	assert.Equal(t, frame.Vec{0, 0, 150}, f.Y.Dir, "user Y (up) remaps to render vertical")
	assert.Equal(t, frame.Vec{0, 150, 0}, f.Z.Dir, "user Z (outward) remaps to render depth")

	assert.Equal(t, "X (Pipe Axis)", f.X.Label)
	assert.Equal(t, "Y (Upward)", f.Y.Label)
	assert.Equal(t, "Z (Outward)", f.Z.Label)
	assert.Empty(t, f.Badge, "world triad carries no angle badge")
}

// TestWaypoints verifies the fixed waypoint set and that callers get an
// independent slice each time.
func TestWaypoints(t *testing.T) {
	w := frame.Waypoints()
	assert.Equal(t, []float64{0, 90, 180, 270}, w)

	w[0] = 45
	assert.Equal(t, []float64{0, 90, 180, 270}, frame.Waypoints(), "returned slice must be a fresh copy")
}

// TestCircumferencePath checks sample count, closure, and that every point
// lies on the tool circle (distance r from the circle center, constant
// render-X plane).
func TestCircumferencePath(t *testing.T) {
	opts := frame.DefaultPipeOptions()

	p, err := frame.CircumferencePath(opts)
	require.NoError(t, err)
	require.Len(t, p.Points, opts.PathSamples)
	assert.True(t, p.Closed)

	first, last := p.Points[0], p.Points[len(p.Points)-1]
	assert.InDelta(t, first[0], last[0], 1e-9, "loop closes in X")
	assert.InDelta(t, first[1], last[1], 1e-9, "loop closes in Y")
	assert.InDelta(t, first[2], last[2], 1e-9, "loop closes in Z")

	for i, pt := range p.Points {
		// User X = ToolOffset remaps to render X = -ToolOffset.
		assert.InDeltaf(t, -opts.ToolOffset, pt[0], tol, "point %d stays in the tool plane", i)
		radial := math.Hypot(pt[1], pt[2])
		assert.InDeltaf(t, opts.Radius, radial, 1e-9, "point %d stays on the circle", i)
	}
}

// TestOptionValidation walks the fail-fast paths shared by all generators.
func TestOptionValidation(t *testing.T) {
	bad := func(mutate func(*frame.PipeOptions)) frame.PipeOptions {
		o := frame.DefaultPipeOptions()
		mutate(&o)

		return o
	}

	cases := []struct {
		name string
		opts frame.PipeOptions
		want error
	}{
		{"zero radius", bad(func(o *frame.PipeOptions) { o.Radius = 0 }), frame.ErrBadRadius},
		{"negative length", bad(func(o *frame.PipeOptions) { o.Length = -1 }), frame.ErrBadLength},
		{"one mesh sample", bad(func(o *frame.PipeOptions) { o.MeshSamples = 1 }), frame.ErrBadSamples},
		{"one path sample", bad(func(o *frame.PipeOptions) { o.PathSamples = 1 }), frame.ErrBadSamples},
		{"zero axis scale", bad(func(o *frame.PipeOptions) { o.AxisScale = 0 }), frame.ErrBadScale},
		{"zero world scale", bad(func(o *frame.PipeOptions) { o.WorldAxisScale = 0 }), frame.ErrBadScale},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := frame.ToolFrame(0, tc.opts)
			assert.ErrorIs(t, err, tc.want)
			_, err = frame.WorldFrame(tc.opts)
			assert.ErrorIs(t, err, tc.want)
			_, err = frame.CylinderMesh(tc.opts)
			assert.ErrorIs(t, err, tc.want)
			_, err = frame.CircumferencePath(tc.opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
