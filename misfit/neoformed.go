// Package misfit: the neoformed case — a plane whose orientation
// relative to the stress axes is only bounded, not measured. The
// admissible orientations form a bounded arc on the Mohr circle (the
// Mohr-circle angular interval, MCAI) of the angle between σ1 and the
// plane normal.
package misfit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/faultkin/fault"
	"github.com/katalvlaran/faultkin/faultcheck"
	"github.com/katalvlaran/faultkin/orient"
)

// Boundary frame indices; the midpoint position matters because a
// boundary search bottoming out there is geometrically inconsistent.
const (
	boundaryLower = 0
	boundaryMid   = 1
	boundaryUpper = 2
)

// Neoformed holds the per-observation precomputation for scoring
// hypotheses against a bounded-orientation plane: the mean σ1
// direction within the movement plane and the three boundary rotation
// tensors of the MCAI (lower bound, midpoint, upper bound).
type Neoformed struct {
	vectors      faultcheck.PlaneVectors
	meanSigma1   orient.Vec3
	halfWidthRad float64
	boundary     [3]orient.Tensor3
}

// microFrame builds the micro-structure frame for a σ1-to-normal angle
// θ: σ1 lies in the movement plane (spanned by the normal and the
// striation) at θ from the normal, opposing the slip; σ2 is the
// movement-plane pole; σ3 closes the right-handed frame.
func microFrame(v faultcheck.PlaneVectors, thetaRad float64) (orient.Vec3, orient.Tensor3, error) {
	sigma1 := v.Normal.Scale(math.Cos(thetaRad)).Sub(v.Striation.Scale(math.Sin(thetaRad)))
	sigma2 := v.PerpStriation
	sigma3 := sigma1.Cross(sigma2)

	rot, err := orient.FrameRows(sigma1, sigma2, sigma3)
	if err != nil {
		return orient.Vec3{}, orient.Tensor3{}, fmt.Errorf("micro-structure frame: %w", err)
	}

	return sigma1, rot, nil
}

// NewNeoformed precomputes the scoring state for a plane whose
// σ1-to-normal angle is bounded by the given interval (degrees). The
// interval must be ordered and lie strictly inside (0°, 90°)
// (ErrBadInterval).
func NewNeoformed(v faultcheck.PlaneVectors, interval fault.Interval) (*Neoformed, error) {
	if interval.LowerDeg >= interval.UpperDeg ||
		interval.LowerDeg <= 0 || interval.UpperDeg >= 90 {
		return nil, fmt.Errorf("[%g°,%g°]: %w", interval.LowerDeg, interval.UpperDeg, ErrBadInterval)
	}

	nf := &Neoformed{
		vectors:      v,
		halfWidthRad: orient.Deg2Rad(interval.HalfWidth()),
	}

	angles := [3]float64{interval.LowerDeg, interval.MidDeg(), interval.UpperDeg}
	for i, deg := range angles {
		sigma1, rot, err := microFrame(v, orient.Deg2Rad(deg))
		if err != nil {
			return nil, err
		}
		nf.boundary[i] = rot
		if i == boundaryMid {
			nf.meanSigma1 = sigma1
		}
	}

	return nf, nil
}

// NewNeoformedFromFriction derives the σ1-to-normal interval from a
// friction-angle interval via the Mohr construction θ = 45° + φ/2.
func NewNeoformedFromFriction(v faultcheck.PlaneVectors, friction fault.Interval) (*Neoformed, error) {
	return NewNeoformed(v, fault.Interval{
		LowerDeg: 45 + friction.LowerDeg/2,
		UpperDeg: 45 + friction.UpperDeg/2,
	})
}

// Evaluate scores one hypothesis, in radians.
//
// The hypothesis σ1 is rotated into the movement plane by the minimum
// rotation aligning the two σ2 axes (σ2 axes are unoriented: when
// their angle exceeds π/2 the complementary rotation is used). If the
// rotated σ1 falls within the interval half-width of the mean σ1
// (measured via acos of the absolute dot product, folding the ±
// ambiguity), the misfit is that alignment angle. Otherwise the misfit
// is the minimum of MinRotationAngle against the three boundary
// frames; a minimum at the midpoint frame is inconsistent and is
// flagged with ErrInteriorMinimum while still returning the value, so
// batch scoring can proceed.
func (nf *Neoformed) Evaluate(hyp StressHypothesis) (Evaluation, error) {
	planeS2 := nf.vectors.PerpStriation
	hypS2 := hyp.Sigma2

	cos := hypS2.Dot(planeS2)
	if cos < 0 { // complement rule: σ2 axes are unoriented
		hypS2 = hypS2.Neg()
		cos = -cos
	}
	if cos > 1 {
		cos = 1
	}
	psi := math.Acos(cos)

	align := orient.Identity()
	if axis := hypS2.Cross(planeS2); axis.Norm() > orient.OrthoTol {
		unit, err := axis.Normalize()
		if err != nil {
			return Evaluation{}, err
		}
		if align, err = orient.RotationAboutAxis(unit, psi); err != nil {
			return Evaluation{}, err
		}
	} else {
		psi = 0 // σ2 axes already parallel
	}

	rotated := align.MulVec(hyp.Sigma1)
	sep := math.Abs(rotated.Dot(nf.meanSigma1))
	if sep > 1 {
		sep = 1
	}
	if math.Acos(sep) <= nf.halfWidthRad+orient.AngleTol {
		// Rotated σ1 admissible: the alignment rotation is the misfit.
		return Evaluation{Misfit: psi, Predicted: rotated}, nil
	}

	best := math.Inf(1)
	bestIdx := -1
	for i, rot := range nf.boundary { // fixed order: lower, mid, upper
		theta, err := orient.MinRotationAngle(hyp.Rot.Mul(rot.Transpose()))
		if err != nil {
			return Evaluation{}, fmt.Errorf("boundary %d: %w", i, err)
		}
		if theta < best {
			best = theta
			bestIdx = i
		}
	}

	ev := Evaluation{Misfit: best}
	if bestIdx == boundaryMid {
		ev.Degenerate = true
		return ev, fmt.Errorf("misfit %g rad: %w", best, ErrInteriorMinimum)
	}

	return ev, nil
}
