package fault

import "errors"

// Sentinel errors for record decoding. Enum parsing itself is total and
// never returns an error; unparseable enum text surfaces later as the
// Error member of the enum.
var (
	// ErrBadNumeric is returned when a numeric column holds text that
	// does not parse as a number.
	ErrBadNumeric = errors.New("fault: numeric field does not parse")

	// ErrHalfInterval is returned when only one bound of a two-column
	// angular interval (friction angle, σ1-to-normal angle) is supplied.
	ErrHalfInterval = errors.New("fault: interval needs both lower and upper bounds")

	// ErrNotGeographic is returned by Direction.Azimuth for Und/Error,
	// which carry no compass bearing.
	ErrNotGeographic = errors.New("fault: direction has no geographic azimuth")
)
