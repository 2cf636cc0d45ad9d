// Package orient: rotation-tensor construction and frame comparison.
package orient

import (
	"fmt"
	"math"
)

// RotationAboutAxis builds the proper rotation tensor turning vectors by
// angleRad about the given unit axis, via Rodrigues' formula:
//
//	R = cosθ·I + sinθ·[k]× + (1−cosθ)·kkᵀ
//
// The axis must be unit length within UnitTol (ErrNotUnit).
func RotationAboutAxis(axis Vec3, angleRad float64) (Tensor3, error) {
	if !axis.IsUnit() {
		return Tensor3{}, fmt.Errorf("rotation axis: %w", ErrNotUnit)
	}

	c := math.Cos(angleRad)
	s := math.Sin(angleRad)
	k := axis
	oc := 1 - c

	var r Tensor3
	r.E[0][0] = c + oc*k.X*k.X
	r.E[0][1] = oc*k.X*k.Y - s*k.Z
	r.E[0][2] = oc*k.X*k.Z + s*k.Y
	r.E[1][0] = oc*k.Y*k.X + s*k.Z
	r.E[1][1] = c + oc*k.Y*k.Y
	r.E[1][2] = oc*k.Y*k.Z - s*k.X
	r.E[2][0] = oc*k.Z*k.X - s*k.Y
	r.E[2][1] = oc*k.Z*k.Y + s*k.X
	r.E[2][2] = c + oc*k.Z*k.Z

	return r, nil
}

// FrameRows builds the rotation tensor whose rows are e1, e2, e3, i.e.
// the tensor mapping geographic coordinates into the frame spanned by
// the three axes. The axes must be unit length, mutually orthogonal
// within OrthoTol, and right-handed (e1·(e2×e3) > 0); otherwise
// ErrNotOrthonormal is returned.
func FrameRows(e1, e2, e3 Vec3) (Tensor3, error) {
	for _, v := range [3]Vec3{e1, e2, e3} {
		if !v.IsUnit() {
			return Tensor3{}, fmt.Errorf("frame axis: %w", ErrNotOrthonormal)
		}
	}
	if math.Abs(e1.Dot(e2)) > OrthoTol ||
		math.Abs(e1.Dot(e3)) > OrthoTol ||
		math.Abs(e2.Dot(e3)) > OrthoTol {
		return Tensor3{}, fmt.Errorf("frame axes not orthogonal: %w", ErrNotOrthonormal)
	}
	if e1.Dot(e2.Cross(e3)) <= 0 {
		return Tensor3{}, fmt.Errorf("frame axes left-handed: %w", ErrNotOrthonormal)
	}

	var t Tensor3
	t.E[0] = [3]float64{e1.X, e1.Y, e1.Z}
	t.E[1] = [3]float64{e2.X, e2.Y, e2.Z}
	t.E[2] = [3]float64{e3.X, e3.Y, e3.Z}

	return t, nil
}

// axisSignConventions enumerates the four sign choices that keep a frame
// right-handed while preserving the identity of each axis: flip none,
// or flip exactly two of the three axes. Order is fixed (0..3) because
// downstream comparisons iterate candidates deterministically.
var axisSignConventions = [4][3]float64{
	{+1, +1, +1},
	{+1, -1, -1},
	{-1, +1, -1},
	{-1, -1, +1},
}

// clampCosine folds a cosine into [-1,1]. An excursion beyond AngleTol
// is a hard error (the tensor cannot be a rotation); a smaller one is
// numerical noise and is clamped.
func clampCosine(c float64) (float64, error) {
	switch {
	case c > 1+AngleTol || c < -1-AngleTol:
		return 0, fmt.Errorf("cosine %g outside [-1,1]: %w", c, ErrNotRotation)
	case c > 1:
		return 1, nil
	case c < -1:
		return -1, nil
	default:
		return c, nil
	}
}

// MinRotationAngle returns the minimum rotation angle, in radians,
// implied by the rotation tensor t between two frames whose principal
// axes are only required to be parallel, not identically oriented.
//
// Each of the four sign conventions yields a candidate rotation with
// trace = 1 + 2cosθ; the maximum trace gives the minimum angle. Because
// post-multiplying by diag(s1,s2,s3) only rescales the diagonal, the
// four traces are formed directly from the diagonal entries of t, which
// also makes the result invariant under transposition.
func MinRotationAngle(t Tensor3) (float64, error) {
	a, b, c := t.E[0][0], t.E[1][1], t.E[2][2]

	best := math.Inf(-1)
	for _, s := range axisSignConventions {
		if tr := s[0]*a + s[1]*b + s[2]*c; tr > best {
			best = tr
		}
	}

	cos, err := clampCosine((best - 1) / 2)
	if err != nil {
		return 0, err
	}

	return math.Acos(cos), nil
}
