package orient_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/faultkin/orient"
)

// TestPlaneBasis_Orthonormal verifies that strike, dip and normal form a
// right-handed orthonormal triple over a grid of plane orientations.
func TestPlaneBasis_Orthonormal(t *testing.T) {
	for _, az := range []float64{0, 45, 110, 200, 333} {
		for _, dip := range []float64{5, 30, 60, 89} {
			// Upward pole of a plane dipping `dip` toward azimuth `az`.
			normal := orient.LineVector(az, dip-90)
			b, err := orient.PlaneBasis(normal)
			require.NoError(t, err)

			assert.InDelta(t, 1.0, b.Strike.Norm(), eps)
			assert.InDelta(t, 1.0, b.Dip.Norm(), eps)
			assert.InDelta(t, 0.0, b.Strike.Dot(b.Dip), eps)
			assert.InDelta(t, 0.0, b.Strike.Dot(normal), eps)
			assert.InDelta(t, 0.0, b.Dip.Dot(normal), eps)
			assert.InDelta(t, 0.0, b.Strike.Z, eps, "strike vector is horizontal")
			assert.LessOrEqual(t, b.Dip.Z, 0.0, "dip vector descends")

			// Round-trip: Dip × Strike must rebuild the normal.
			back := b.Dip.Cross(b.Strike)
			assert.InDelta(t, normal.X, back.X, 1e-6)
			assert.InDelta(t, normal.Y, back.Y, 1e-6)
			assert.InDelta(t, normal.Z, back.Z, 1e-6)
		}
	}
}

// TestPlaneBasis_Horizontal pins the North/East convention for a
// horizontal plane.
func TestPlaneBasis_Horizontal(t *testing.T) {
	b, err := orient.PlaneBasis(orient.Vec3{Z: 1})
	require.NoError(t, err)
	assert.Equal(t, orient.Vec3{Y: 1}, b.Strike, "horizontal strike defaults to North")
	assert.Equal(t, orient.Vec3{X: 1}, b.Dip, "horizontal dip defaults to East")
}

// TestPlaneBasis_Rejects covers non-unit and downward normals.
func TestPlaneBasis_Rejects(t *testing.T) {
	_, err := orient.PlaneBasis(orient.Vec3{Z: 2})
	assert.ErrorIs(t, err, orient.ErrNotUnit)

	_, err = orient.PlaneBasis(orient.Vec3{Z: -1})
	assert.ErrorIs(t, err, orient.ErrNotUnit, "downward pole rejected")
}

// TestGreatCircleTrace verifies every sample lies on the plane and on
// the unit sphere.
func TestGreatCircleTrace(t *testing.T) {
	normal := orient.LineVector(75, -40) // upward pole
	pts, err := orient.GreatCircleTrace(normal, 36)
	require.NoError(t, err)
	require.Len(t, pts, 36)

	for i, p := range pts {
		assert.InDelta(t, 1.0, p.Norm(), eps, "point %d on unit sphere", i)
		assert.InDelta(t, 0.0, p.Dot(normal), eps, "point %d on plane", i)
	}

	// Consecutive points advance by the same arc.
	step := math.Acos(pts[0].Dot(pts[1]))
	assert.InDelta(t, 2*math.Pi/36, step, 1e-9)

	_, err = orient.GreatCircleTrace(normal, 1)
	assert.Error(t, err, "fewer than 2 samples rejected")
}
