// Package render turns 3D geometric primitives into a static SVG figure.
//
// The render package provides:
//
//   - Camera: an orthographic elevation/azimuth projection with symmetric
//     axis limits, for one reproducible view of the scene.
//   - Scene: a collector of primitives — surface meshes, polylines, directed
//     arrows with labels, markers, and text badges. Primitives are projected
//     when added; the camera is fixed per scene.
//   - Scene.WriteSVG: painter's-algorithm emission. Surfaces and paths are
//     depth-sorted back-to-front; arrows, markers, and text always draw on
//     top of them, the way annotation artists overlay a plotted surface.
//
// The package holds no global state and performs no file I/O; WriteSVG
// writes to any io.Writer and propagates the writer's first error
// unmodified. Rendering is deterministic: the same scene and camera always
// produce byte-identical output.
package render
