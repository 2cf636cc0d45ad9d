// Package orient: value types and elementary products.
// Vec3 and Tensor3 are plain value types; all methods return new values
// and never mutate the receiver.
package orient

import "math"

// Numeric policy — single source of truth for tolerances.
const (
	// UnitTol bounds the allowed deviation of |v| from 1 wherever a
	// unit vector is required.
	UnitTol = 1e-7

	// OrthoTol bounds the allowed residual dot product between vectors
	// required to be orthogonal (in-plane checks, frame checks).
	OrthoTol = 1e-7

	// AngleTol bounds the allowed excursion of a cosine outside [-1,1]
	// before clamping is refused and ErrNotRotation is raised.
	AngleTol = 1e-7
)

// Vec3 is a 3-vector in the ENU frame: X = East, Y = North, Z = Up.
type Vec3 struct{ X, Y, Z float64 }

// Tensor3 is a 3×3 tensor in row-major order: E[i][j] is row i, column j.
type Tensor3 struct{ E [3][3]float64 }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v − o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns k·v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{k * v.X, k * v.Y, k * v.Z} }

// Neg returns −v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product v·o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the vector product v×o (right-hand rule).
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean magnitude |v|.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v/|v|, or ErrZeroVector when |v| ≤ UnitTol.
func (v Vec3) Normalize() (Vec3, error) {
	n := v.Norm()
	if n <= UnitTol {
		return Vec3{}, ErrZeroVector
	}

	return v.Scale(1 / n), nil
}

// IsUnit reports whether |v| deviates from 1 by at most UnitTol.
func (v Vec3) IsUnit() bool { return math.Abs(v.Norm()-1) <= UnitTol }

// MulVec returns the tensor-vector product T·v.
func (t Tensor3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: t.E[0][0]*v.X + t.E[0][1]*v.Y + t.E[0][2]*v.Z,
		Y: t.E[1][0]*v.X + t.E[1][1]*v.Y + t.E[1][2]*v.Z,
		Z: t.E[2][0]*v.X + t.E[2][1]*v.Y + t.E[2][2]*v.Z,
	}
}

// Mul returns the tensor-tensor product T·U.
func (t Tensor3) Mul(u Tensor3) Tensor3 {
	var out Tensor3
	for i := 0; i < 3; i++ { // deterministic i→j→k order
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += t.E[i][k] * u.E[k][j]
			}
			out.E[i][j] = s
		}
	}

	return out
}

// Transpose returns Tᵀ.
func (t Tensor3) Transpose() Tensor3 {
	var out Tensor3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.E[i][j] = t.E[j][i]
		}
	}

	return out
}

// Trace returns the sum of the diagonal entries.
func (t Tensor3) Trace() float64 { return t.E[0][0] + t.E[1][1] + t.E[2][2] }

// Identity returns the identity tensor.
func Identity() Tensor3 {
	var t Tensor3
	t.E[0][0], t.E[1][1], t.E[2][2] = 1, 1, 1

	return t
}

// Diag returns the diagonal tensor diag(a, b, c).
func Diag(a, b, c float64) Tensor3 {
	var t Tensor3
	t.E[0][0], t.E[1][1], t.E[2][2] = a, b, c

	return t
}
