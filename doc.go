// Package orbitweld is a small toolkit for rigid-transform linear algebra
// and static 3D visualization of orbital-welding tool frames.
//
// What is orbitweld?
//
//	Two independent utilities sharing one module:
//		• transform/ — inverse, determinant, and composition for 4×4
//		  homogeneous transforms and 3×3 rotation blocks (gonum-backed)
//		• frame/     — pipe surface, world triad, and tool-frame geometry
//		  at angular waypoints, in a fixed user coordinate convention
//		• render/    — orthographic elevation/azimuth camera and painter's
//		  algorithm SVG emission for the computed geometry
//
// The two concerns never interoperate: cmd/invdet exercises transform/
// alone, cmd/toolframes exercises frame/ + render/ alone. Both binaries are
// one-shot, single-threaded, and argument-free; results are deterministic.
//
// Coordinate convention (frame/): X = pipe axis, Y = up, Z = outward.
// frame.RenderVec remaps to render coordinates once, centrally — see the
// frame package documentation.
//
// Quick ASCII sketch of the figure:
//
//	      Y-tool   Z-tool
//	         ↖   ↗
//	   ( θ ) ── → X-tool          Y   Z
//	  ╭──────────────────╮        │ ↗
//	  │      pipe        │        ○ ──→ X  (world triad)
//	  ╰──────────────────╯
//
// See examples/ for runnable scenarios and each package's doc.go for
// details.
package orbitweld
