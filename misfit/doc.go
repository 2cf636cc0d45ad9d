// Package misfit scores one stress-tensor hypothesis against one
// validated fault-slip observation.
//
// 🚀 What is misfit?
//
//	Given a fault plane with an observed striation and a candidate
//	stress tensor, the resolved shear stress on the plane predicts a
//	slip direction; the misfit is the disagreement between prediction
//	and observation. An external search component proposes hypotheses;
//	this package only scores them, one pair at a time.
//
// ✨ Key features:
//   - Direct: Cauchy traction → normal/shear decomposition → predicted
//     striation → angular or cosine misfit (oriented or unoriented)
//   - degenerate hypotheses (shear below ShearFloor: plane parallel to
//     a principal axis) score the maximal misfit and are flagged, never
//     thrown — batch scoring must not abort
//   - Neoformed: planes whose orientation is only bounded by a
//     Mohr-circle angular interval around the σ1-to-normal angle; the
//     misfit is a minimum-rotation search against the interval's
//     boundary frames
//   - ReducedTensor: reduced stress tensor from a hypothesis and the
//     stress ratio R (compression negative)
//
// ⚙️ Usage:
//
//	hyp, _ := misfit.NewStressHypothesis(sigma1, sigma3)
//	tensor, _ := misfit.ReducedTensor(hyp, 0.5)
//	ev, err := misfit.Direct(vectors, tensor, misfit.DefaultOptions())
//	// ev.Misfit, ev.Predicted, ev.Degenerate
//
// All evaluations are pure and O(1); hypotheses are supplied per call
// and never cached.
package misfit
