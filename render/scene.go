// Package render: scene graph — primitive collection and projection.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// drawLayer separates surface geometry from annotation artists. Surfaces
// and paths interleave by depth; arrows, markers, and text always draw on
// top of them.
type drawLayer int

const (
	layerSurface drawLayer = iota
	layerOverlay
)

// viewPoint is a projected point: screen-plane coordinates in world units
// plus depth toward the camera.
type viewPoint struct {
	x, y, depth float64
}

// primitive is anything the painter can emit.
type primitive interface {
	layer() drawLayer
	depth() float64
	draw(p *painter)
}

// Scene collects projected primitives for one camera view. The zero Scene
// is not usable; construct with NewScene. A Scene is not safe for
// concurrent mutation — it is a one-shot, single-goroutine builder.
type Scene struct {
	cam   Camera
	prims []primitive
}

// NewScene returns an empty scene viewed through cam.
func NewScene(cam Camera) *Scene {
	return &Scene{cam: cam}
}

// Len reports the number of primitives added so far.
func (s *Scene) Len() int { return len(s.prims) }

// project applies the scene camera to a world point.
func (s *Scene) project(v mgl64.Vec3) viewPoint {
	x, y, d := s.cam.Project(v)

	return viewPoint{x: x, y: y, depth: d}
}

// AddMesh adds a parametric surface given as three parallel rectangular
// coordinate grids. Each grid cell becomes one translucent quad with a thin
// stroked edge, depth-sorted individually so the far side of a closed
// surface draws behind the near side.
//
// Stage 1 (Validate): grids non-degenerate, parallel, rectangular.
// Stage 2 (Execute): project every grid node once, then emit (rows-1)×(cols-1)
// quads referencing the projected corners.
// Complexity: O(rows·cols).
func (s *Scene) AddMesh(x, y, z [][]float64, fill, stroke string) error {
	// Validate grid shape
	rows := len(x)
	if rows < 2 || len(y) != rows || len(z) != rows {
		return ErrBadMesh
	}
	cols := len(x[0])
	if cols < 2 {
		return ErrBadMesh
	}
	for i := 0; i < rows; i++ {
		if len(x[i]) != cols || len(y[i]) != cols || len(z[i]) != cols {
			return ErrBadMesh
		}
	}

	// Project grid nodes
	pts := make([][]viewPoint, rows)
	var i, j int // loop iterators (deterministic i→j order)
	for i = 0; i < rows; i++ {
		pts[i] = make([]viewPoint, cols)
		for j = 0; j < cols; j++ {
			pts[i][j] = s.project(mgl64.Vec3{x[i][j], y[i][j], z[i][j]})
		}
	}

	// Emit one quad per grid cell
	for i = 0; i < rows-1; i++ {
		for j = 0; j < cols-1; j++ {
			s.prims = append(s.prims, &quadPrim{
				corners: [4]viewPoint{pts[i][j], pts[i][j+1], pts[i+1][j+1], pts[i+1][j]},
				fill:    fill,
				stroke:  stroke,
			})
		}
	}

	return nil
}

// AddPath adds a polyline through pts. Dashed paths render with a fixed
// dash pattern; opacity in [0,1] controls stroke transparency.
func (s *Scene) AddPath(pts []mgl64.Vec3, color string, width, opacity float64, dashed bool) {
	if len(pts) < 2 {
		return // nothing to draw; not an error, matching zero-length plot calls
	}

	proj := make([]viewPoint, len(pts))
	for i, p := range pts {
		proj[i] = s.project(p)
	}
	s.prims = append(s.prims, &pathPrim{pts: proj, color: color, width: width, opacity: opacity, dashed: dashed})
}

// AddArrow adds a directed arrow from origin along dir (both world
// coordinates; dir is already display-scaled). The label, when non-empty,
// renders bold in the arrow color slightly past the tip, at 1.15× the
// arrow length from the origin.
func (s *Scene) AddArrow(origin, dir mgl64.Vec3, color, label string, width, opacity float64) {
	base := s.project(origin)
	tip := s.project(origin.Add(dir))
	labelAt := s.project(origin.Add(dir.Mul(labelOvershoot)))

	s.prims = append(s.prims, &arrowPrim{
		base: base, tip: tip, labelAt: labelAt,
		color: color, label: label, width: width, opacity: opacity,
	})
}

// labelOvershoot places arrow labels just past the tip.
const labelOvershoot = 1.15

// AddMarker adds a filled dot of fixed pixel radius at a world position.
func (s *Scene) AddMarker(at mgl64.Vec3, radiusPx int, fill, stroke string) {
	s.prims = append(s.prims, &markerPrim{at: s.project(at), radiusPx: radiusPx, fill: fill, stroke: stroke})
}

// AddText adds a text annotation. With badge=true the text renders on a
// translucent yellow rounded box, the style used for waypoint angle badges.
func (s *Scene) AddText(at mgl64.Vec3, text, color string, badge bool) {
	if text == "" {
		return
	}
	s.prims = append(s.prims, &textPrim{at: s.project(at), text: text, color: color, badge: badge})
}
