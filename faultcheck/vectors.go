// Package faultcheck: derivation of the plane vectors from a record
// that passed every consistency rule.
package faultcheck

import (
	"math"

	"github.com/katalvlaran/faultkin/fault"
	"github.com/katalvlaran/faultkin/orient"
)

// sideTieTol is the tolerance (degrees) under which the two candidate
// dip sides (or strike ends) are equidistant from the declared compass
// direction, which makes the declaration ambiguous.
const sideTieTol = 1e-9

// dipAzimuth resolves the azimuth toward which the plane dips. The two
// candidates are strike±90; a geographic dip direction selects the
// closer one, anything else falls back to strike+90 (only reached for
// cases where the side is geometrically immaterial).
func dipAzimuth(strikeDeg float64, dd fault.Direction) (float64, *Diagnostic) {
	c1 := orient.NormalizeAzimuth(strikeDeg + 90)
	c2 := orient.NormalizeAzimuth(strikeDeg - 90)
	if !dd.IsGeographic() {
		return c1, nil
	}

	center, err := dd.Azimuth()
	if err != nil {
		return 0, &Diagnostic{CodeInvalidEnumeration, fieldDipDir, err.Error()}
	}
	d1 := orient.AzimuthDistance(c1, center)
	d2 := orient.AzimuthDistance(c2, center)
	if math.Abs(d1-d2) < sideTieTol {
		return 0, &Diagnostic{CodeConflictingDescription, fieldDipDir,
			"parallel to strike; cannot choose a dip side"}
	}
	if d1 < d2 {
		return c1, nil
	}

	return c2, nil
}

// strikeEnd resolves which end of the strike line the rake is measured
// from. A non-geographic strike direction keeps the canonical end
// (only reached for rakes of exactly 0 or 90, where the end does not
// change the striation line).
func strikeEnd(strikeVec orient.Vec3, sd fault.Direction) (orient.Vec3, *Diagnostic) {
	if !sd.IsGeographic() {
		return strikeVec, nil
	}

	az := orient.NormalizeAzimuth(orient.Rad2Deg(math.Atan2(strikeVec.X, strikeVec.Y)))
	center, err := sd.Azimuth()
	if err != nil {
		return orient.Vec3{}, &Diagnostic{CodeInvalidEnumeration, fieldStrikeDir, err.Error()}
	}
	d1 := orient.AzimuthDistance(az, center)
	d2 := orient.AzimuthDistance(az+180, center)
	if math.Abs(d1-d2) < sideTieTol {
		return orient.Vec3{}, &Diagnostic{CodeConflictingDescription, fieldStrikeDir,
			"perpendicular to the strike line; cannot choose an end"}
	}
	if d1 < d2 {
		return strikeVec, nil
	}

	return strikeVec.Neg(), nil
}

// verticalSense returns +1 for inverse senses, -1 for normal senses.
func verticalSense(m fault.TypeOfMovement) int {
	switch m {
	case fault.MovInverse, fault.MovInverseRL, fault.MovInverseLL:
		return +1
	case fault.MovNormal, fault.MovNormalRL, fault.MovNormalLL:
		return -1
	default:
		return 0
	}
}

// lateralSense returns +1 for left-lateral senses (slip along the
// strike azimuth), -1 for right-lateral.
func lateralSense(m fault.TypeOfMovement) int {
	switch m {
	case fault.MovLeftLateral, fault.MovNormalLL, fault.MovInverseLL:
		return +1
	case fault.MovRightLateral, fault.MovNormalRL, fault.MovInverseRL:
		return -1
	default:
		return 0
	}
}

// orientStriation flips the striation line onto the slip sense implied
// by the declared movement: vertical sense governs the up/down
// component, lateral sense the along-strike component. Without a
// declared sense, a vertical striation on a vertical plane points
// toward the uplifted block (up, on the dip-direction side); anything
// else keeps the as-built line.
func orientStriation(sv, strikeVec orient.Vec3, movement fault.TypeOfMovement) orient.Vec3 {
	if vs := verticalSense(movement); vs != 0 {
		if float64(vs)*sv.Z < 0 {
			return sv.Neg()
		}
		return sv
	}
	if ls := lateralSense(movement); ls != 0 {
		if float64(ls)*strikeVec.Dot(sv) < 0 {
			return sv.Neg()
		}
		return sv
	}
	if sv.Z < -1+orient.UnitTol { // vertical striation, unknown sense
		return sv.Neg()
	}

	return sv
}

// deriveVectors computes the plane's unit-vector set. Only called once
// every rule has passed; the orthogonality check at the end is the
// final hard stop of the procedure.
func deriveVectors(obs fault.Observation) (*PlaneVectors, *Diagnostic) {
	strikeDeg := *obs.Plane.StrikeDeg
	dipDeg := *obs.Plane.DipDeg

	beta, diag := dipAzimuth(strikeDeg, obs.Plane.DipDirection)
	if diag != nil {
		return nil, diag
	}

	normal := orient.LineVector(beta, dipDeg-90) // upward pole
	dipVec := orient.LineVector(beta, dipDeg)
	strikeVec := normal.Cross(dipVec)

	var sv orient.Vec3
	if obs.Striation.TrendDeg != nil {
		sv = orient.HorizontalVector(*obs.Striation.TrendDeg)
	} else {
		end, diag := strikeEnd(strikeVec, obs.Striation.StrikeDirection)
		if diag != nil {
			return nil, diag
		}
		r := orient.Deg2Rad(*obs.Striation.RakeDeg)
		sv = end.Scale(math.Cos(r)).Add(dipVec.Scale(math.Sin(r)))
	}

	if math.Abs(sv.Dot(normal)) > orient.OrthoTol {
		return nil, &Diagnostic{CodeGeometricInconsistency, fieldRake,
			"striation vector is not on the plane"}
	}
	sv = orientStriation(sv, strikeVec, obs.Striation.Movement)

	return &PlaneVectors{
		Normal:        normal,
		Strike:        strikeVec,
		Dip:           dipVec,
		Striation:     sv,
		PerpStriation: normal.Cross(sv),
	}, nil
}

// ReconstructNormal rebuilds the plane normal from the in-plane basis,
// Dip × Strike. Hosts and tests use it to cross-check a vector set.
func ReconstructNormal(v PlaneVectors) orient.Vec3 {
	return v.Dip.Cross(v.Strike)
}
