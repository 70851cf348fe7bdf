// Package frame computes the 3D geometric primitives for visualizing an
// orbital-welding pipe and the tool coordinate frames along its
// circumference.
//
// The frame package provides:
//
//   - CylinderMesh: the pipe surface as three parallel coordinate grids.
//   - ToolFrame: position and orthonormal tool axes at an angular waypoint.
//   - WorldFrame: the fixed world triad, offset from the tool frames.
//   - CircumferencePath: the dashed reference loop the tool travels.
//   - RenderVec: the single user→render axis remap (an involution).
//
// Coordinate convention: user axes are X = pipe axis (horizontal), Y = up,
// Z = horizontal outward. Every point and direction is remapped to render
// coordinates through RenderVec exactly once, centrally, before it leaves
// this package — ad hoc per-shape remapping is how conventions silently
// drift. All outputs are plain values; nothing here draws.
package frame
