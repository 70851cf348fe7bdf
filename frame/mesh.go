// Package frame: parametric pipe surface generation.
package frame

import "math"

// CylinderMesh generates the pipe surface as an n×n coordinate grid, where
// n = MeshSamples.
//
// Stage 1 (Validate): option constraints.
// Stage 2 (Execute): rows sweep the longitudinal coordinate linearly over
// [-Length/2, Length/2]; columns sweep θ uniformly over [0, 2π] inclusive,
// so the last column coincides with the first and the surface closes on
// itself. The surface point at (x, θ) is (x, r·cosθ, r·sinθ) in user
// coordinates, remapped through RenderVec into the three output grids.
//
// The mesh is read-only by convention once returned; the renderer only
// consumes it.
// Complexity: O(n²) time and space.
func CylinderMesh(opts PipeOptions) (Mesh, error) {
	// Validate options
	if err := opts.validate(); err != nil {
		return Mesh{}, err
	}

	// Allocate the three parallel grids
	n := opts.MeshSamples
	m := Mesh{
		X: make([][]float64, n),
		Y: make([][]float64, n),
		Z: make([][]float64, n),
	}

	// Sweep longitude (rows) × angle (columns)
	var i, j int // loop iterators (deterministic i→j order)
	for i = 0; i < n; i++ {
		m.X[i] = make([]float64, n)
		m.Y[i] = make([]float64, n)
		m.Z[i] = make([]float64, n)

		// Longitudinal position over [-L/2, L/2]
		long := -opts.Length/2 + opts.Length*float64(i)/float64(n-1)
		for j = 0; j < n; j++ {
			theta := 2 * math.Pi * float64(j) / float64(n-1)
			p := RenderVec(Vec{
				long,
				opts.Radius * math.Cos(theta),
				opts.Radius * math.Sin(theta),
			})
			m.X[i][j] = p[0]
			m.Y[i][j] = p[1]
			m.Z[i][j] = p[2]
		}
	}

	return m, nil
}
