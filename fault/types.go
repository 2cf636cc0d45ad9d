// Package fault: observation record types. Optional numeric fields are
// pointers: nil means "not supplied", which the consistency validator
// distinguishes from a supplied zero.
package fault

// Interval is a closed angular interval in degrees.
type Interval struct {
	LowerDeg float64
	UpperDeg float64
}

// HalfWidth returns half the interval span.
func (iv Interval) HalfWidth() float64 { return (iv.UpperDeg - iv.LowerDeg) / 2 }

// MidDeg returns the interval midpoint.
func (iv Interval) MidDeg() float64 { return (iv.LowerDeg + iv.UpperDeg) / 2 }

// Plane is the raw orientation description of a fault plane.
type Plane struct {
	// StrikeDeg is the strike azimuth, degrees clockwise from North,
	// [0,360). Nil when not supplied.
	StrikeDeg *float64

	// DipDeg is the dip angle from horizontal, [0,90]. Nil when not
	// supplied.
	DipDeg *float64

	// DipDirection is the compass direction toward which the plane
	// dips. Meaningful as a geographic direction only for 0 < dip < 90;
	// for a vertical plane with vertical striation it instead points
	// toward the uplifted block.
	DipDirection Direction
}

// Striation is the raw description of the slip lineation on a plane.
// Exactly one of rake (with optional strike direction) or trend must
// describe the orientation; the consistency validator enforces this.
type Striation struct {
	// RakeDeg is the angle of the striation within the plane, measured
	// from the strike line, [0,90]. Nil when not supplied.
	RakeDeg *float64

	// StrikeDirection is the compass direction of the strike-line end
	// the rake is measured from.
	StrikeDirection Direction

	// TrendDeg is the compass bearing of the striation line, [0,360),
	// used instead of rake for horizontal planes. Nil when not
	// supplied.
	TrendDeg *float64

	// Movement is the declared sense of movement.
	Movement TypeOfMovement
}

// TrendIsDefined reports whether the striation is described by a trend.
func (s Striation) TrendIsDefined() bool { return s.TrendDeg != nil }

// Observation is one field record: a plane, its striation, and for
// neoformed planes an optional orientation constraint given either as
// a friction-angle interval or as a σ1-to-normal angle interval.
type Observation struct {
	ID   string
	Type DataType

	Plane     Plane
	Striation Striation

	// FrictionAngle bounds the internal friction angle of a neoformed
	// plane, degrees. Nil when not supplied.
	FrictionAngle *Interval

	// Sigma1Normal bounds the angle between σ1 and the plane normal,
	// degrees. Nil when not supplied.
	Sigma1Normal *Interval
}
