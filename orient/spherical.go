// Package orient: spherical↔Cartesian conversion in the ENU frame.
// Azimuths are degrees clockwise from North; plunges are degrees below
// horizontal. A line with trend α and plunge p maps to
// (cos p·sin α, cos p·cos α, −sin p).
package orient

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeAzimuth folds an azimuth in degrees into [0, 360).
func NormalizeAzimuth(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}

	return d
}

// AzimuthDistance returns the circular distance in degrees between two
// azimuths, in [0, 180].
func AzimuthDistance(a, b float64) float64 {
	d := math.Abs(NormalizeAzimuth(a) - NormalizeAzimuth(b))
	if d > 180 {
		d = 360 - d
	}

	return d
}

// HorizontalVector returns the unit horizontal vector at the given
// azimuth (clockwise from North): (sin α, cos α, 0).
func HorizontalVector(azimuthDeg float64) Vec3 {
	a := Deg2Rad(azimuthDeg)

	return Vec3{X: math.Sin(a), Y: math.Cos(a), Z: 0}
}

// LineVector converts (trend, plunge) to a unit Cartesian vector.
// Plunge is positive downward; a negative plunge yields an upward line.
func LineVector(trendDeg, plungeDeg float64) Vec3 {
	a := Deg2Rad(trendDeg)
	p := Deg2Rad(plungeDeg)
	cp := math.Cos(p)

	return Vec3{X: cp * math.Sin(a), Y: cp * math.Cos(a), Z: -math.Sin(p)}
}

// TrendPlunge converts a direction to geological (trend, plunge) in
// degrees, normalized to the lower hemisphere (plunge ≥ 0): an upward
// vector is replaced by its antipode first. A vertical line reports
// trend 0. Returns ErrZeroVector for a (near-)zero input.
func TrendPlunge(v Vec3) (trendDeg, plungeDeg float64, err error) {
	u, err := v.Normalize()
	if err != nil {
		return 0, 0, err
	}
	if u.Z > 0 { // fold into the lower hemisphere
		u = u.Neg()
	}

	h := math.Hypot(u.X, u.Y)
	if h <= UnitTol { // vertical line: trend is arbitrary, report 0
		return 0, 90, nil
	}

	trendDeg = NormalizeAzimuth(Rad2Deg(math.Atan2(u.X, u.Y)))
	plungeDeg = Rad2Deg(math.Atan2(-u.Z, h))

	return trendDeg, plungeDeg, nil
}
