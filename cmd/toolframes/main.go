// Command toolframes renders the orbital-welding figure: the pipe surface,
// the world coordinate triad, tool frames at the four angular waypoints,
// and the dashed circumference path the tool travels. The scene is written
// as a single SVG next to the binary.
//
// One-shot and argument-free: geometry parameters and view are fixed for a
// reproducible figure. Any failure is fatal with a non-zero exit.
package main

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/weldlab/orbitweld/frame"
	"github.com/weldlab/orbitweld/render"
)

// Fixed view and output parameters for the reference figure.
const (
	outputName = "orbital_welding_tool_frames.svg"
	svgWidth   = 1400
	svgHeight  = 1200
	viewElev   = 20
	viewAzim   = 135
	viewLimit  = 200

	worldArrowWidth = 4
	toolArrowWidth  = 2.5
	toolOpacity     = 0.9
	markerRadiusPx  = 6
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	opts := frame.DefaultPipeOptions()
	cam, err := render.NewCamera(viewElev, viewAzim, viewLimit)
	fatalIf(err, "configure camera")
	scene := render.NewScene(cam)

	// Pipe surface.
	mesh, err := frame.CylinderMesh(opts)
	fatalIf(err, "generate pipe mesh")
	fatalIf(scene.AddMesh(mesh.X, mesh.Y, mesh.Z, "silver", "gray"), "add pipe mesh")

	// World coordinate triad, offset away from the tool frames.
	world, err := frame.WorldFrame(opts)
	fatalIf(err, "compute world frame")
	addTriad(scene, world, worldArrowWidth, 1.0)

	// Tool frames at the four waypoints; order does not matter.
	for _, theta := range frame.Waypoints() {
		tf, err := frame.ToolFrame(theta, opts)
		fatalIf(err, "compute tool frame")
		addTriad(scene, tf, toolArrowWidth, toolOpacity)
		scene.AddMarker(tf.Origin, markerRadiusPx, "red", "darkred")
		scene.AddText(tf.BadgeAt, tf.Badge, "black", true)
	}

	// Dashed circumference guide.
	path, err := frame.CircumferencePath(opts)
	fatalIf(err, "compute circumference path")
	scene.AddPath(path.Points, "black", 2, 0.5, true)

	// Write the SVG next to the binary.
	exe, err := os.Executable()
	fatalIf(err, "locate executable")
	outPath := filepath.Join(filepath.Dir(exe), outputName)

	f, err := os.Create(outPath)
	fatalIf(err, "create output file")
	err = scene.WriteSVG(f, svgWidth, svgHeight)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	fatalIf(err, "write SVG")

	info, err := os.Stat(outPath)
	fatalIf(err, "stat output file")
	log.WithFields(log.Fields{
		"path":    outPath,
		"size_kb": float64(info.Size()) / 1024,
	}).Info("SVG saved")
}

// addTriad adds a frame's three axis arrows to the scene.
func addTriad(s *render.Scene, f frame.Frame, width, opacity float64) {
	for _, a := range []frame.Arrow{f.X, f.Y, f.Z} {
		s.AddArrow(a.Origin, a.Dir, a.Color, a.Label, width, opacity)
	}
}

// fatalIf terminates with a diagnostic on any error; there is no recovery
// path in a one-shot renderer.
func fatalIf(err error, msg string) {
	if err != nil {
		log.WithError(err).Fatal(msg)
	}
}
