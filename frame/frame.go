// Package frame: waypoint tool frames, the world triad, and the reference
// circumference path.
package frame

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// badgeInset is the fraction of the scaled tool normal by which the angle
// badge is pulled inward from the tool origin.
const badgeInset = 0.3

// RenderVec maps a vector from user coordinates (X = pipe axis, Y = up,
// Z = outward) to render coordinates: (x, y, z) → (-x, z, y).
//
// The rendering library's native axis order does not match the desired
// visual layout, so the correction happens here, once, for every point and
// direction. The map is its own inverse: RenderVec(RenderVec(v)) == v
// exactly (components are only negated and swapped, never recomputed).
// Complexity: O(1).
func RenderVec(v Vec) Vec {
	return Vec{-v[0], v[2], v[1]}
}

// Waypoints returns the four angular waypoints, in degrees, at which tool
// frames are computed. The slice is freshly allocated on each call; callers
// may reorder it freely — frames are independent of processing order.
func Waypoints() []float64 {
	return []float64{0, 90, 180, 270}
}

// ToolPosition returns the waypoint position in USER coordinates:
// (ToolOffset, r·cosθ, r·sinθ) for a waypoint angle in degrees.
// Exposed separately from ToolFrame so the closed form stays testable
// without undoing the render remap.
func ToolPosition(thetaDeg float64, opts PipeOptions) Vec {
	theta := mgl64.DegToRad(thetaDeg)

	return Vec{opts.ToolOffset, opts.Radius * math.Cos(theta), opts.Radius * math.Sin(theta)}
}

// ToolAxes returns the three tool-frame axes in USER coordinates for a
// waypoint angle in degrees:
//
//	X-tool = (0, -sinθ, cosθ)  tangential, direction of travel
//	Y-tool = (1, 0, 0)         along the pipe axis, independent of θ
//	Z-tool = (0, cosθ, sinθ)   radial outward normal
//
// The triad is orthonormal by construction — these are exact closed forms,
// not approximations, so no runtime orthogonality check is performed.
// Complexity: O(1).
func ToolAxes(thetaDeg float64) (x, y, z Vec) {
	theta := mgl64.DegToRad(thetaDeg)
	sin, cos := math.Sin(theta), math.Cos(theta)

	x = Vec{0, -sin, cos}
	y = Vec{1, 0, 0}
	z = Vec{0, cos, sin}

	return x, y, z
}

// ToolFrame computes the display-ready tool frame at a waypoint angle
// (degrees).
//
// Stage 1 (Validate): option constraints.
// Stage 2 (Execute): closed-form position and axes in user coordinates,
// axes scaled to display length, everything remapped through RenderVec.
// Stage 3 (Finalize): attach per-axis labels carrying the waypoint angle and
// the inward angle badge.
//
// Frames share no state: computing them in any order, or concurrently,
// yields identical results.
// Complexity: O(1).
func ToolFrame(thetaDeg float64, opts PipeOptions) (Frame, error) {
	// Validate options
	if err := opts.validate(); err != nil {
		return Frame{}, err
	}

	// Closed-form geometry in user coordinates
	pos := RenderVec(ToolPosition(thetaDeg, opts))
	xAxis, yAxis, zAxis := ToolAxes(thetaDeg)

	// Scale to display length, then remap
	xDir := RenderVec(xAxis.Mul(opts.AxisScale))
	yDir := RenderVec(yAxis.Mul(opts.AxisScale))
	zDir := RenderVec(zAxis.Mul(opts.AxisScale))

	// Assemble labeled arrows; colors match the world triad.
	f := Frame{
		Origin:  pos,
		X:       Arrow{Origin: pos, Dir: xDir, Color: ColorX, Label: fmt.Sprintf("X-tool (%g°)", thetaDeg)},
		Y:       Arrow{Origin: pos, Dir: yDir, Color: ColorY, Label: fmt.Sprintf("Y-tool (%g°)", thetaDeg)},
		Z:       Arrow{Origin: pos, Dir: zDir, Color: ColorZ, Label: fmt.Sprintf("Z-tool (%g°)", thetaDeg)},
		Badge:   fmt.Sprintf("θ=%g°", thetaDeg),
		BadgeAt: pos.Sub(zDir.Mul(badgeInset)),
	}

	return f, nil
}

// WorldFrame computes the world coordinate triad: origin at
// (WorldOffset, 0, 0) in user coordinates, axes along the user basis
// vectors scaled to WorldAxisScale, remapped to render coordinates.
// Complexity: O(1).
func WorldFrame(opts PipeOptions) (Frame, error) {
	// Validate options
	if err := opts.validate(); err != nil {
		return Frame{}, err
	}

	// Basis vectors in user coordinates, scaled then remapped
	origin := RenderVec(Vec{opts.WorldOffset, 0, 0})
	s := opts.WorldAxisScale

	f := Frame{
		Origin: origin,
		X:      Arrow{Origin: origin, Dir: RenderVec(Vec{s, 0, 0}), Color: ColorX, Label: "X (Pipe Axis)"},
		Y:      Arrow{Origin: origin, Dir: RenderVec(Vec{0, s, 0}), Color: ColorY, Label: "Y (Upward)"},
		Z:      Arrow{Origin: origin, Dir: RenderVec(Vec{0, 0, s}), Color: ColorZ, Label: "Z (Outward)"},
	}

	return f, nil
}

// CircumferencePath samples the closed reference loop the tool travels:
// PathSamples points on the circle of radius Radius in the user YZ plane at
// the tool longitudinal offset, remapped to render coordinates. The final
// sample lands back on the first (θ spans [0, 2π] inclusive), closing the
// loop without a special case in the renderer.
// Complexity: O(PathSamples).
func CircumferencePath(opts PipeOptions) (Path, error) {
	// Validate options
	if err := opts.validate(); err != nil {
		return Path{}, err
	}

	// Sample the loop
	n := opts.PathSamples
	pts := make([]Vec, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n-1)
		pts[i] = RenderVec(Vec{
			opts.ToolOffset,
			opts.Radius * math.Cos(theta),
			opts.Radius * math.Sin(theta),
		})
	}

	return Path{Points: pts, Closed: true}, nil
}
