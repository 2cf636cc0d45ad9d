// Package misfit: hypothesis, options and evaluation types.
package misfit

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/faultkin/orient"
)

// Sentinel errors for misfit evaluation.
var (
	// ErrDegenerateAxes is returned when the supplied principal axes
	// are not unit length or not mutually orthogonal within tolerance.
	ErrDegenerateAxes = errors.New("misfit: principal axes are not an orthogonal unit pair")

	// ErrBadStressRatio is returned when the stress ratio R lies
	// outside [0,1].
	ErrBadStressRatio = errors.New("misfit: stress ratio must lie in [0,1]")

	// ErrBadInterval is returned when a Mohr-circle angular interval is
	// empty, reversed, or outside (0°,90°).
	ErrBadInterval = errors.New("misfit: invalid angular interval")

	// ErrBadOptions is returned for an unknown cost kind.
	ErrBadOptions = errors.New("misfit: invalid option supplied")

	// ErrInteriorMinimum flags the inconsistent neoformed case where
	// the boundary search bottoms out at the interval midpoint; the
	// flagged misfit value is still returned alongside.
	ErrInteriorMinimum = errors.New("misfit: minimum rotation found at the interval midpoint")
)

// ShearFloor is the minimum resolved shear-stress magnitude below
// which a plane has no physically meaningful slip direction under the
// hypothesis (plane parallel to a principal stress axis).
const ShearFloor = 1e-3

// CostKind selects how the misfit scalar is reported.
type CostKind int

const (
	// AngleCost reports the misfit as an angle in radians, [0,π].
	AngleCost CostKind = iota

	// CosineCost reports 0.5 − cos(Δ)/2, a [0,1] cost that is smooth
	// at zero misfit.
	CosineCost
)

// Options configures one misfit evaluation.
//
// Fields:
//   - Cost     — AngleCost or CosineCost (an explicit configuration
//     choice, never silently substituted).
//   - Oriented — whether the observed striation carries a known slip
//     sense. When false, prediction and observation are compared as
//     unoriented lines (the ± ambiguity is folded away).
type Options struct {
	Cost     CostKind
	Oriented bool
}

// DefaultOptions returns the angular, oriented configuration.
func DefaultOptions() Options {
	return Options{Cost: AngleCost, Oriented: true}
}

// maximal returns the worst possible misfit under the cost kind.
func (o Options) maximal() float64 {
	if o.Cost == CosineCost {
		return 1
	}

	return math.Pi
}

// report converts a clamped cosine of the prediction/observation angle
// into the configured scalar.
func (o Options) report(cos float64) (float64, error) {
	switch o.Cost {
	case AngleCost:
		return math.Acos(cos), nil
	case CosineCost:
		return 0.5 - cos/2, nil
	default:
		return 0, fmt.Errorf("cost kind %d: %w", o.Cost, ErrBadOptions)
	}
}

// Evaluation is the outcome of scoring one hypothesis against one
// observation.
type Evaluation struct {
	// Misfit is the disagreement scalar under the configured cost.
	Misfit float64

	// Predicted is the predicted striation direction (unit), zero when
	// Degenerate.
	Predicted orient.Vec3

	// NormalStress and ShearMag are the resolved stress components on
	// the plane (compression negative), for Mohr-circle overlays.
	NormalStress float64
	ShearMag     float64

	// Degenerate marks a hypothesis with no meaningful prediction for
	// this plane; Misfit then holds the maximal/flagged value.
	Degenerate bool
}

// StressHypothesis is one candidate solution: principal stress
// directions forming a right-handed frame and the rotation tensor from
// geographic to principal (σ1,σ2,σ3) coordinates. Supplied externally
// per evaluation; never cached by this package.
type StressHypothesis struct {
	Sigma1 orient.Vec3
	Sigma2 orient.Vec3
	Sigma3 orient.Vec3
	Rot    orient.Tensor3
}

// NewStressHypothesis completes a hypothesis from its σ1 and σ3 axes:
// σ2 = σ3 × σ1 closes the right-handed frame. The axes must be unit
// length and orthogonal within tolerance (ErrDegenerateAxes).
func NewStressHypothesis(sigma1, sigma3 orient.Vec3) (StressHypothesis, error) {
	if !sigma1.IsUnit() || !sigma3.IsUnit() {
		return StressHypothesis{}, fmt.Errorf("axis length: %w", ErrDegenerateAxes)
	}
	if math.Abs(sigma1.Dot(sigma3)) > orient.OrthoTol {
		return StressHypothesis{}, fmt.Errorf("axes not orthogonal: %w", ErrDegenerateAxes)
	}

	sigma2 := sigma3.Cross(sigma1)
	rot, err := orient.FrameRows(sigma1, sigma2, sigma3)
	if err != nil {
		return StressHypothesis{}, fmt.Errorf("principal frame: %w", err)
	}

	return StressHypothesis{Sigma1: sigma1, Sigma2: sigma2, Sigma3: sigma3, Rot: rot}, nil
}

// ReducedTensor builds the reduced stress tensor of the hypothesis in
// geographic coordinates, Rᵀ·diag(−1,−r,0)·R with stress ratio
// r ∈ [0,1]: σ1 = −1 (compression negative), σ2 = −r, σ3 = 0.
func ReducedTensor(hyp StressHypothesis, r float64) (orient.Tensor3, error) {
	if r < 0 || r > 1 {
		return orient.Tensor3{}, fmt.Errorf("R=%g: %w", r, ErrBadStressRatio)
	}

	principal := orient.Diag(-1, -r, 0)

	return hyp.Rot.Transpose().Mul(principal).Mul(hyp.Rot), nil
}
