// Package misfit: the direct case — a plane whose orientation and
// striation were both measured.
package misfit

import (
	"math"

	"github.com/katalvlaran/faultkin/faultcheck"
	"github.com/katalvlaran/faultkin/orient"
)

// Direct scores a stress tensor against a measured striated plane.
//
// The Cauchy traction t = T·n is decomposed into its normal component
// (t·n)n and the shear remainder τ. When |τ| exceeds ShearFloor, the
// normalized τ is the predicted striation and the misfit is the angle
// (or cosine cost) between prediction and observation; with
// Oriented=false the comparison folds the ± ambiguity of the observed
// line. When |τ| is at or below the floor the plane is parallel to a
// principal stress axis: there is no meaningful prediction and the
// evaluation carries the maximal misfit with Degenerate set — never an
// error, so scoring large batches proceeds uninterrupted.
func Direct(v faultcheck.PlaneVectors, tensor orient.Tensor3, opts Options) (Evaluation, error) {
	// Validate options up front so the degenerate path cannot mask a
	// bad configuration.
	if _, err := opts.report(1); err != nil {
		return Evaluation{}, err
	}

	n := v.Normal
	traction := tensor.MulVec(n)
	normalStress := traction.Dot(n)
	shear := traction.Sub(n.Scale(normalStress))
	shearMag := shear.Norm()

	ev := Evaluation{NormalStress: normalStress, ShearMag: shearMag}
	if shearMag <= ShearFloor {
		ev.Degenerate = true
		ev.Misfit = opts.maximal()

		return ev, nil
	}

	predicted := shear.Scale(1 / shearMag)
	cos := predicted.Dot(v.Striation)
	if !opts.Oriented {
		cos = math.Abs(cos)
	}
	switch { // numerical guard before acos
	case cos > 1:
		cos = 1
	case cos < -1:
		cos = -1
	}

	misfit, err := opts.report(cos)
	if err != nil {
		return Evaluation{}, err
	}
	ev.Predicted = predicted
	ev.Misfit = misfit

	return ev, nil
}
