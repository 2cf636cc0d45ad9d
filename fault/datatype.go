// Package fault: declared data-type enum for observation records.
package fault

// DataType is the declared kind of an observation record. Only the
// kinds that require a striation consistency check are modeled here;
// hosts may carry further kinds of their own.
type DataType int

const (
	// DTUnd means the data type is undefined or not supplied.
	DTUnd DataType = iota
	// DTStriatedPlane is a directly measured fault plane with striation.
	DTStriatedPlane
	// DTNeoformedStriatedPlane is a striated plane whose orientation
	// relative to the principal stresses is only bounded, not measured.
	DTNeoformedStriatedPlane
	// DTStriatedShearBand is a striated deformation band.
	DTStriatedShearBand
	// DTError marks non-empty text that did not parse.
	DTError
)

var dataTypeSynonyms = map[string]DataType{
	"striatedplane": DTStriatedPlane, "faultplane": DTStriatedPlane, "sp": DTStriatedPlane,
	"neoformedstriatedplane": DTNeoformedStriatedPlane, "neoformedplane": DTNeoformedStriatedPlane, "nsp": DTNeoformedStriatedPlane,
	"striatedshearband": DTStriatedShearBand, "striatedshearbands": DTStriatedShearBand, "shearband": DTStriatedShearBand, "ssb": DTStriatedShearBand,
	"und": DTUnd, "undefined": DTUnd,
}

var dataTypeNames = map[DataType]string{
	DTUnd:                    "UND",
	DTStriatedPlane:          "Striated Plane",
	DTNeoformedStriatedPlane: "Neoformed Striated Plane",
	DTStriatedShearBand:      "Striated Shear Band",
	DTError:                  "ERROR",
}

// ParseDataType parses free text into a DataType. Total, like the other
// enum parsers: "" → DTUnd, unknown → DTError.
func ParseDataType(text string) DataType {
	tok := normalizeToken(text)
	if tok == "" {
		return DTUnd
	}
	if dt, ok := dataTypeSynonyms[tok]; ok {
		return dt
	}

	return DTError
}

// RequiresStriation reports whether records of this type must carry a
// consistent striation description.
func (dt DataType) RequiresStriation() bool {
	return dt == DTStriatedPlane || dt == DTNeoformedStriatedPlane || dt == DTStriatedShearBand
}

// String returns the display name.
func (dt DataType) String() string {
	if s, ok := dataTypeNames[dt]; ok {
		return s
	}

	return "ERROR"
}
