// Package faultcheck: diagnostic taxonomy and result types.
package faultcheck

import (
	"fmt"

	"github.com/katalvlaran/faultkin/fault"
	"github.com/katalvlaran/faultkin/orient"
)

// Code classifies a diagnostic.
type Code int

const (
	// CodeMissingField — a field required for the given dip/rake case
	// is absent (or Und where a genuine value is required).
	CodeMissingField Code = iota

	// CodeConflictingDescription — mutually exclusive fields were both
	// (or neither) supplied, or a supplied value contradicts the
	// geometry of the case (e.g. a kinematic label on a horizontal
	// plane, a dip direction parallel to strike).
	CodeConflictingDescription

	// CodeInvalidEnumeration — free text in an enum column did not
	// parse to a known value.
	CodeInvalidEnumeration

	// CodeOutOfRange — a numeric field lies outside its documented
	// range.
	CodeOutOfRange

	// CodeGeometricInconsistency — the derived striation vector is not
	// on the plane within tolerance. Hard per-record failure.
	CodeGeometricInconsistency
)

var codeNames = map[Code]string{
	CodeMissingField:           "missing field",
	CodeConflictingDescription: "conflicting description",
	CodeInvalidEnumeration:     "invalid enumeration",
	CodeOutOfRange:             "out of range",
	CodeGeometricInconsistency: "geometric inconsistency",
}

// String returns the taxonomy name of the code.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}

	return "unknown"
}

// Diagnostic is one violated rule (or advisory) for a record.
type Diagnostic struct {
	Code    Code
	Field   string
	Message string
}

// String renders "field: message (code)".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Field, d.Message, d.Code)
}

// PlaneVectors are the derived unit vectors of a validated observation,
// in the ENU frame. Immutable once computed: Dip × Strike = Normal,
// PerpStriation = Normal × Striation, and Striation lies on the plane.
type PlaneVectors struct {
	Normal        orient.Vec3
	Strike        orient.Vec3
	Dip           orient.Vec3
	Striation     orient.Vec3
	PerpStriation orient.Vec3
}

// Result is the outcome of validating one observation. Errors hold
// every violated rule found for the record (not only the first);
// Warnings hold advisories that do not invalidate it. Vectors is
// non-nil exactly when OK.
type Result struct {
	OK       bool
	Errors   []Diagnostic
	Warnings []Diagnostic

	// Normalized is the observation with Und written into the fields
	// the conventions declare meaningless for the validated case
	// (e.g. dip direction of a horizontal plane). Meaningful only
	// when OK.
	Normalized fault.Observation

	Vectors *PlaneVectors
}
