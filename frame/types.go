// Package frame: domain types, display constants, and tunable options.
package frame

import "github.com/go-gl/mathgl/mgl64"

// Vec is the 3-component vector used throughout the package.
// Whether a given Vec is in user or render coordinates is stated per field;
// the two conventions never mix inside one type.
type Vec = mgl64.Vec3

// Axis display colors, shared by the world triad and every tool frame so
// that matching axes read as the same hue across the figure.
const (
	ColorX = "red"
	ColorY = "green"
	ColorZ = "blue"
)

// Arrow is a directed display arrow: an origin, a direction already scaled
// to display length, a color, and a text label. Both vectors are in render
// coordinates — an Arrow is ready for the rendering collaborator as-is.
type Arrow struct {
	Origin Vec
	Dir    Vec
	Color  string
	Label  string
}

// Frame is a coordinate-frame triad: an origin plus three mutually
// orthogonal display arrows, in render coordinates. Tool frames additionally
// carry an angle badge anchored inward of the origin; the world triad
// leaves Badge empty.
type Frame struct {
	Origin  Vec
	X, Y, Z Arrow
	// Badge is the waypoint annotation ("θ=90°"); empty for the world frame.
	Badge string
	// BadgeAt positions the badge, offset inward along the tool normal.
	BadgeAt Vec
}

// Mesh is a parametric surface sampled on a grid: three parallel row-major
// coordinate grids, one per render axis, each Rows×Cols. Read-only once
// generated.
type Mesh struct {
	X, Y, Z [][]float64
}

// Rows returns the number of grid rows (longitudinal samples).
func (m Mesh) Rows() int { return len(m.X) }

// Cols returns the number of grid columns (angular samples); 0 for an empty mesh.
func (m Mesh) Cols() int {
	if len(m.X) == 0 {
		return 0
	}

	return len(m.X[0])
}

// Path is an ordered point list in render coordinates. Closed paths repeat
// nothing: the last point equals the first by construction of the sampler.
type Path struct {
	Points []Vec
	Closed bool
}

// PipeOptions contains tunable parameters for pipe and frame generation.
// All lengths share one unit (millimetres in the reference figure).
type PipeOptions struct {
	// Radius is the pipe outer radius.
	Radius float64
	// Length is the pipe length along its axis.
	Length float64
	// MeshSamples is the grid resolution per direction for CylinderMesh.
	MeshSamples int
	// PathSamples is the point count for CircumferencePath.
	PathSamples int
	// ToolOffset shifts the tool frames along the pipe axis (user X).
	ToolOffset float64
	// WorldOffset shifts the world triad along the pipe axis, away from the
	// tool frames so the two groups stay visually separate.
	WorldOffset float64
	// AxisScale is the display length of each tool-frame axis arrow.
	AxisScale float64
	// WorldAxisScale is the display length of each world axis arrow.
	WorldAxisScale float64
}

// DefaultPipeOptions returns the reference figure's parameters:
// a 100×250 pipe, 30×30 surface grid, 100-point guide loop, tool frames at
// -80 and the world triad at +80 along the pipe axis.
func DefaultPipeOptions() PipeOptions {
	return PipeOptions{
		Radius:         100,
		Length:         250,
		MeshSamples:    30,
		PathSamples:    100,
		ToolOffset:     -80,
		WorldOffset:    80,
		AxisScale:      60,
		WorldAxisScale: 150,
	}
}

// validate reports the first violated option constraint, or nil.
// Offsets may be any finite value, including 0 and negatives.
func (o PipeOptions) validate() error {
	if o.Radius <= 0 {
		return ErrBadRadius
	}
	if o.Length <= 0 {
		return ErrBadLength
	}
	if o.MeshSamples < 2 || o.PathSamples < 2 {
		return ErrBadSamples
	}
	if o.AxisScale <= 0 || o.WorldAxisScale <= 0 {
		return ErrBadScale
	}

	return nil
}
