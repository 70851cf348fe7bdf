// Package render: orthographic elevation/azimuth camera.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is an orthographic view of the scene, looking at the origin from
// the direction given by azimuth (rotation about the vertical axis) and
// elevation (tilt above the horizontal plane), both in degrees. Limit is the
// symmetric world-coordinate half-extent mapped onto the viewport, the
// equivalent of fixing all three axis limits to ±Limit.
type Camera struct {
	Elev  float64
	Azim  float64
	Limit float64
}

// NewCamera validates and returns a camera.
// Stage 1 (Validate): Limit > 0; angles are free (any view is legal).
// Complexity: O(1).
func NewCamera(elevDeg, azimDeg, limit float64) (Camera, error) {
	if limit <= 0 {
		return Camera{}, ErrBadLimit
	}

	return Camera{Elev: elevDeg, Azim: azimDeg, Limit: limit}, nil
}

// Project maps a world point to view coordinates: x right, y up on the
// screen plane, and depth increasing toward the camera (larger = closer).
//
// The basis is the standard azimuth/elevation orthonormal triad:
//
//	right = (-sin a,        cos a,        0    )
//	up    = (-cos a·sin e, -sin a·sin e,  cos e)
//	view  = ( cos a·cos e,  sin a·cos e,  sin e)
//
// Orthographic: no perspective division, so depth ordering is exact.
// Complexity: O(1).
func (c Camera) Project(v mgl64.Vec3) (x, y, depth float64) {
	a := mgl64.DegToRad(c.Azim)
	e := mgl64.DegToRad(c.Elev)
	sinA, cosA := math.Sin(a), math.Cos(a)
	sinE, cosE := math.Sin(e), math.Cos(e)

	x = -sinA*v[0] + cosA*v[1]
	y = -cosA*sinE*v[0] - sinA*sinE*v[1] + cosE*v[2]
	depth = cosA*cosE*v[0] + sinA*cosE*v[1] + sinE*v[2]

	return x, y, depth
}
