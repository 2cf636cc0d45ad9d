package faultcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/faultkin/fault"
	"github.com/katalvlaran/faultkin/faultcheck"
)

func f(v float64) *float64 { return &v }

// striatedPlane builds a well-formed inclined striated-plane record;
// tests mutate single fields to break single rules.
func striatedPlane() fault.Observation {
	return fault.Observation{
		ID:   "F-1",
		Type: fault.DTStriatedPlane,
		Plane: fault.Plane{
			StrikeDeg:    f(0),
			DipDeg:       f(60),
			DipDirection: fault.DirEast,
		},
		Striation: fault.Striation{
			RakeDeg:         f(90),
			StrikeDirection: fault.DirNorth,
			Movement:        fault.MovNormal,
		},
	}
}

// codes extracts the diagnostic codes of a result's errors.
func codes(res faultcheck.Result) []faultcheck.Code {
	out := make([]faultcheck.Code, 0, len(res.Errors))
	for _, d := range res.Errors {
		out = append(out, d.Code)
	}

	return out
}

// TestCheck_PureDipSlip is the textbook case: strike 0, dip 60 E,
// rake 90 from N. The striation must equal the dip vector.
func TestCheck_PureDipSlip(t *testing.T) {
	res := faultcheck.Check(striatedPlane())
	require.True(t, res.OK, "errors: %v", res.Errors)
	require.NotNil(t, res.Vectors)

	v := res.Vectors
	assert.InDelta(t, v.Dip.X, v.Striation.X, 1e-9, "pure dip-slip striation equals dip vector")
	assert.InDelta(t, v.Dip.Y, v.Striation.Y, 1e-9)
	assert.InDelta(t, v.Dip.Z, v.Striation.Z, 1e-9)

	// ENU sanity for a plane striking N and dipping 60° E.
	assert.InDelta(t, 0.866025, v.Normal.X, 1e-6)
	assert.InDelta(t, 0.0, v.Normal.Y, 1e-9)
	assert.InDelta(t, 0.5, v.Normal.Z, 1e-6)
}

// TestCheck_VectorInvariants verifies unit length and mutual
// orthogonality of the derived basis over a grid of valid records.
func TestCheck_VectorInvariants(t *testing.T) {
	for _, strike := range []float64{0, 30, 110, 200, 290} {
		for _, dip := range []float64{10, 45, 75} {
			obs := striatedPlane()
			obs.Plane.StrikeDeg = f(strike)
			obs.Plane.DipDeg = f(dip)
			obs.Plane.DipDirection = fault.DirEast
			obs.Striation.RakeDeg = f(40)
			obs.Striation.StrikeDirection = fault.DirNorth

			res := faultcheck.Check(obs)
			if !res.OK {
				// Dip/strike sides incompatible with the fixed compass
				// choices for some strikes: those records are expected
				// to fail the side-selection rule, not the math.
				continue
			}
			v := res.Vectors

			assert.InDelta(t, 1.0, v.Normal.Norm(), 1e-9)
			assert.InDelta(t, 1.0, v.Strike.Norm(), 1e-9)
			assert.InDelta(t, 1.0, v.Dip.Norm(), 1e-9)
			assert.InDelta(t, 1.0, v.Striation.Norm(), 1e-9)
			assert.InDelta(t, 0.0, v.Normal.Dot(v.Strike), 1e-9)
			assert.InDelta(t, 0.0, v.Normal.Dot(v.Dip), 1e-9)
			assert.InDelta(t, 0.0, v.Strike.Dot(v.Dip), 1e-9)
			assert.InDelta(t, 0.0, v.Normal.Dot(v.Striation), 1e-9)

			// Round-trip: Dip × Strike rebuilds the normal.
			back := faultcheck.ReconstructNormal(*v)
			assert.InDelta(t, v.Normal.X, back.X, 1e-6)
			assert.InDelta(t, v.Normal.Y, back.Y, 1e-6)
			assert.InDelta(t, v.Normal.Z, back.Z, 1e-6)
		}
	}
}

// TestCheck_MissingStrikeDip is terminal: nothing else is judged.
func TestCheck_MissingStrikeDip(t *testing.T) {
	obs := striatedPlane()
	obs.Plane.StrikeDeg = nil
	obs.Plane.DipDeg = nil
	obs.Striation.Movement = fault.MovUnd // would be a second error otherwise

	res := faultcheck.Check(obs)
	assert.False(t, res.OK)
	assert.Len(t, res.Errors, 2, "only strike and dip reported")
	assert.Equal(t, faultcheck.CodeMissingField, res.Errors[0].Code)
	assert.Nil(t, res.Vectors)
}

// TestCheck_DipOutOfRange rejects dip > 90 terminally.
func TestCheck_DipOutOfRange(t *testing.T) {
	obs := striatedPlane()
	obs.Plane.DipDeg = f(95)

	res := faultcheck.Check(obs)
	require.False(t, res.OK)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, faultcheck.CodeOutOfRange, res.Errors[0].Code)
	assert.Equal(t, "dip", res.Errors[0].Field)
}

// TestCheck_RakeAndTrendConflict flags both-supplied and
// neither-supplied striation descriptions.
func TestCheck_RakeAndTrendConflict(t *testing.T) {
	both := striatedPlane()
	both.Striation.TrendDeg = f(120)
	res := faultcheck.Check(both)
	assert.False(t, res.OK)
	assert.Contains(t, codes(res), faultcheck.CodeConflictingDescription)

	neither := striatedPlane()
	neither.Striation.RakeDeg = nil
	res = faultcheck.Check(neither)
	assert.False(t, res.OK)
	assert.Contains(t, codes(res), faultcheck.CodeConflictingDescription)
}

// TestCheck_AccumulatesAllErrors verifies the non-short-circuiting
// contract: one record, every violated rule reported.
func TestCheck_AccumulatesAllErrors(t *testing.T) {
	obs := striatedPlane()
	obs.Plane.DipDirection = fault.DirUnd        // missing for inclined plane
	obs.Striation.RakeDeg = f(35)                // oblique...
	obs.Striation.StrikeDirection = fault.DirUnd // ...so this is missing too
	obs.Striation.Movement = fault.MovUnd        // missing as well

	res := faultcheck.Check(obs)
	assert.False(t, res.OK)
	assert.Len(t, res.Errors, 3, "all three violations reported at once: %v", res.Errors)
	for _, d := range res.Errors {
		assert.Equal(t, faultcheck.CodeMissingField, d.Code)
	}
}

// TestCheck_HorizontalPlane covers the dip = 0 conventions.
func TestCheck_HorizontalPlane(t *testing.T) {
	base := fault.Observation{
		Plane:     fault.Plane{StrikeDeg: f(15), DipDeg: f(0)},
		Striation: fault.Striation{TrendDeg: f(210)},
	}

	t.Run("TrendDescribedValid", func(t *testing.T) {
		res := faultcheck.Check(base)
		require.True(t, res.OK, "errors: %v", res.Errors)
		assert.InDelta(t, 1.0, res.Vectors.Normal.Z, 1e-9, "horizontal normal is +Z")
		assert.InDelta(t, 0.0, res.Vectors.Striation.Z, 1e-9)
	})

	t.Run("KinematicLabelRejected", func(t *testing.T) {
		obs := base
		obs.Striation.Movement = fault.ParseMovement("normal")
		res := faultcheck.Check(obs)
		require.False(t, res.OK)
		require.Len(t, res.Errors, 1, "exactly one error: %v", res.Errors)
		assert.Equal(t, "type of movement", res.Errors[0].Field)
		assert.Equal(t, faultcheck.CodeConflictingDescription, res.Errors[0].Code)
	})

	t.Run("RakeRejected", func(t *testing.T) {
		obs := base
		obs.Striation.TrendDeg = nil
		obs.Striation.RakeDeg = f(30)
		res := faultcheck.Check(obs)
		assert.False(t, res.OK)
		assert.Contains(t, codes(res), faultcheck.CodeConflictingDescription)
	})

	t.Run("DipDirectionNormalizedWithWarning", func(t *testing.T) {
		obs := base
		obs.Plane.DipDirection = fault.DirEast
		res := faultcheck.Check(obs)
		require.True(t, res.OK)
		assert.Len(t, res.Warnings, 1, "supplied dip direction warned about")
		assert.Equal(t, fault.DirUnd, res.Normalized.Plane.DipDirection, "normalized to UND")
	})
}

// TestCheck_VerticalPlane covers the dip = 90 conventions.
func TestCheck_VerticalPlane(t *testing.T) {
	base := fault.Observation{
		Plane: fault.Plane{StrikeDeg: f(0), DipDeg: f(90), DipDirection: fault.DirEast},
	}

	t.Run("VerticalStriationNeedsDipDirection", func(t *testing.T) {
		obs := base
		obs.Plane.DipDirection = fault.DirUnd
		obs.Striation.RakeDeg = f(90)
		res := faultcheck.Check(obs)
		require.False(t, res.OK)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, faultcheck.CodeMissingField, res.Errors[0].Code)
		assert.Equal(t, "dip direction", res.Errors[0].Field)
	})

	t.Run("VerticalStriationPointsUp", func(t *testing.T) {
		obs := base
		obs.Striation.RakeDeg = f(90)
		res := faultcheck.Check(obs)
		require.True(t, res.OK, "errors: %v", res.Errors)
		assert.InDelta(t, 1.0, res.Vectors.Striation.Z, 1e-9,
			"unknown sense: vertical striation oriented toward the uplifted block")
	})

	t.Run("ObliqueRakeNeedsDirectionAndMovement", func(t *testing.T) {
		obs := base
		obs.Striation.RakeDeg = f(40)
		res := faultcheck.Check(obs)
		require.False(t, res.OK)
		assert.Len(t, res.Errors, 2, "strike direction and movement both missing: %v", res.Errors)
	})

	t.Run("PureStrikeSlipAcceptsUnd", func(t *testing.T) {
		obs := base
		obs.Striation.RakeDeg = f(0)
		res := faultcheck.Check(obs)
		assert.True(t, res.OK, "errors: %v", res.Errors)
	})

	t.Run("TrendRejected", func(t *testing.T) {
		obs := base
		obs.Striation.TrendDeg = f(10)
		res := faultcheck.Check(obs)
		assert.False(t, res.OK)
		assert.Contains(t, codes(res), faultcheck.CodeConflictingDescription)
	})
}

// TestCheck_DipDirectionParallelToStrike rejects the ambiguous side.
func TestCheck_DipDirectionParallelToStrike(t *testing.T) {
	obs := striatedPlane()
	obs.Plane.DipDirection = fault.DirNorth // strike is 0: parallel

	res := faultcheck.Check(obs)
	require.False(t, res.OK)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, faultcheck.CodeConflictingDescription, res.Errors[0].Code)
	assert.Equal(t, "dip direction", res.Errors[0].Field)
}

// TestCheck_EnumErrors reports unparseable enum text.
func TestCheck_EnumErrors(t *testing.T) {
	obs := striatedPlane()
	obs.Plane.DipDirection = fault.ParseDirection("NNE")
	obs.Striation.Movement = fault.ParseMovement("wobbly")

	res := faultcheck.Check(obs)
	require.False(t, res.OK)
	assert.Len(t, res.Errors, 2)
	for _, d := range res.Errors {
		assert.Equal(t, faultcheck.CodeInvalidEnumeration, d.Code)
	}
}

// TestCheck_MovementOrientsStriation verifies the slip sense flips the
// striation vector onto the declared movement.
func TestCheck_MovementOrientsStriation(t *testing.T) {
	normal := striatedPlane() // movement: normal → hanging wall down
	res := faultcheck.Check(normal)
	require.True(t, res.OK)
	assert.Negative(t, res.Vectors.Striation.Z)

	inverse := striatedPlane()
	inverse.Striation.Movement = fault.MovInverse
	res = faultcheck.Check(inverse)
	require.True(t, res.OK)
	assert.Positive(t, res.Vectors.Striation.Z, "inverse sense: hanging wall up")

	// Right-lateral on a vertical plane: slip runs against the strike
	// azimuth.
	rl := fault.Observation{
		Plane:     fault.Plane{StrikeDeg: f(0), DipDeg: f(90), DipDirection: fault.DirEast},
		Striation: fault.Striation{RakeDeg: f(0), Movement: fault.MovRightLateral},
	}
	res = faultcheck.Check(rl)
	require.True(t, res.OK, "errors: %v", res.Errors)
	assert.Negative(t, res.Vectors.Strike.Dot(res.Vectors.Striation))
}
