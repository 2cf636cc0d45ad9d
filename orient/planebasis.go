// Package orient: plane basis and great-circle trace from a unit normal.
package orient

import (
	"fmt"
	"math"
)

// Basis is the orthonormal in-plane basis of a plane: Strike is the
// horizontal unit vector along the strike line and Dip the unit vector
// down the steepest descent, oriented so that Dip × Strike equals the
// upward normal ({dip, strike, normal} is right-handed).
type Basis struct {
	Strike Vec3
	Dip    Vec3
}

// north is the strike fallback for a horizontal plane, whose strike
// line is geometrically undefined.
var north = Vec3{X: 0, Y: 1, Z: 0}

// PlaneBasis derives the strike and dip unit vectors of a plane from
// its upward unit normal. The normal must be unit length within UnitTol
// (ErrNotUnit) and must not point below the horizon (ErrNotUnit wrapped
// with context: planes are described by their upward pole).
//
// For a horizontal plane (normal ≈ +Z) the strike defaults to North and
// the dip vector to East, preserving Dip × Strike = normal.
func PlaneBasis(normal Vec3) (Basis, error) {
	if !normal.IsUnit() {
		return Basis{}, fmt.Errorf("plane normal: %w", ErrNotUnit)
	}
	if normal.Z < -UnitTol {
		return Basis{}, fmt.Errorf("plane normal points downward: %w", ErrNotUnit)
	}

	up := Vec3{Z: 1}
	strike := up.Cross(normal)
	if strike.Norm() <= UnitTol {
		// Horizontal plane: strike undefined, use the North convention.
		return Basis{Strike: north, Dip: Vec3{X: 1}}, nil
	}

	strike, err := strike.Normalize()
	if err != nil {
		return Basis{}, err
	}
	dip := strike.Cross(normal) // unit by construction

	return Basis{Strike: strike, Dip: dip}, nil
}

// GreatCircleTrace samples n ≥ 2 points along the great circle of the
// plane with the given upward unit normal: the trace of the plane on
// the unit sphere, traversed from the strike vector through the dip
// vector. Hosts use it to draw the plane on a stereonet.
func GreatCircleTrace(normal Vec3, n int) ([]Vec3, error) {
	if n < 2 {
		return nil, fmt.Errorf("trace needs at least 2 points: %w", ErrZeroVector)
	}
	b, err := PlaneBasis(normal)
	if err != nil {
		return nil, err
	}

	pts := make([]Vec3, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = b.Strike.Scale(math.Cos(th)).Add(b.Dip.Scale(math.Sin(th)))
	}

	return pts, nil
}
