// Command invdet prints the inverse and determinant of three reference
// matrices: a hand-specified 4×4 homogeneous transform, the 3×3 rotation
// block extracted from it, and an independent 3×3 rotation matrix.
//
// One-shot and argument-free: results go to stdout, any failure is fatal
// with a non-zero exit.
package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/weldlab/orbitweld/transform"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// 4×4 homogeneous transform: rotation diag(1,-1,-1), translation (-5,10,8).
	h, err := transform.NewMat(4, 4, []float64{
		1, 0, 0, -5,
		0, -1, 0, 10,
		0, 0, -1, 8,
		0, 0, 0, 1,
	})
	fatalIf(err, "construct H")
	report("4x4 homogeneous transform H", h)

	// 3×3 rotation block extracted from H.
	r, err := transform.RotationOf(h)
	fatalIf(err, "extract rotation block of H")
	report("3x3 rotation block R extracted from H", r)

	// Independent 3×3 rotation matrix.
	rNew, err := transform.NewMat(3, 3, []float64{
		0, -1, 0,
		-1, 0, 0,
		0, 0, 1,
	})
	fatalIf(err, "construct R_new")
	report("Additional 3x3 matrix R_new", rNew)
}

// report prints a matrix, its inverse, and its determinant as one block.
func report(title string, m *mat.Dense) {
	fmt.Printf("%s:\n%s\n\n", title, transform.Sprint(m))

	inv, err := transform.Inverse(m)
	fatalIf(err, "invert "+title)
	fmt.Printf("Inverse:\n%s\n\n", transform.Sprint(inv))

	det, err := transform.Det(m)
	fatalIf(err, "determinant of "+title)
	fmt.Printf("Determinant: %g\n\n", det)
}

// fatalIf terminates with a diagnostic on any error; there is no recovery
// path in a one-shot computation.
func fatalIf(err error, msg string) {
	if err != nil {
		log.WithError(err).Fatal(msg)
	}
}
