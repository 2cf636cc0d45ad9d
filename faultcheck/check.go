// Package faultcheck: the consistency decision procedure. Each rule is
// an independent function returning zero or more diagnostics; Check
// concatenates them so a record reports every violated rule at once.
// Only two conditions stop the procedure early: a missing or
// out-of-range strike/dip (nothing else can be judged without the
// plane) and the final striation-on-plane check.
package faultcheck

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/faultkin/fault"
)

// Display names of the validated fields.
const (
	fieldStrike    = "strike"
	fieldDip       = "dip"
	fieldDipDir    = "dip direction"
	fieldRake      = "rake"
	fieldStrikeDir = "strike direction"
	fieldTrend     = "trend"
	fieldMovement  = "type of movement"
)

// scalarRanges is the declarative range contract for the numeric
// fields; violations map into the package's diagnostic taxonomy.
type scalarRanges struct {
	Strike *float64 `validate:"required,gte=0,lt=360"`
	Dip    *float64 `validate:"required,gte=0,lte=90"`
	Rake   *float64 `validate:"omitempty,gte=0,lte=90"`
	Trend  *float64 `validate:"omitempty,gte=0,lt=360"`
}

var scalarValidate = validator.New(validator.WithRequiredStructEnabled())

var scalarDisplay = map[string]struct{ name, span string }{
	"Strike": {fieldStrike, "[0,360)"},
	"Dip":    {fieldDip, "[0,90]"},
	"Rake":   {fieldRake, "[0,90]"},
	"Trend":  {fieldTrend, "[0,360)"},
}

// checkScalars validates presence and ranges of the numeric fields.
// A strike or dip violation is terminal: the record cannot be judged
// further without a plane.
func checkScalars(obs fault.Observation) (diags []Diagnostic, terminal bool) {
	in := scalarRanges{
		Strike: obs.Plane.StrikeDeg,
		Dip:    obs.Plane.DipDeg,
		Rake:   obs.Striation.RakeDeg,
		Trend:  obs.Striation.TrendDeg,
	}
	err := scalarValidate.Struct(in)
	if err == nil {
		return nil, false
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		// InvalidValidationError means the shadow struct itself is
		// broken: programmer error.
		panic(err)
	}
	for _, fe := range ferrs {
		disp := scalarDisplay[fe.StructField()]
		if fe.Tag() == "required" {
			diags = append(diags, Diagnostic{CodeMissingField, disp.name, "must be supplied"})
		} else {
			diags = append(diags, Diagnostic{CodeOutOfRange, disp.name, "must lie in " + disp.span})
		}
		if fe.StructField() == "Strike" || fe.StructField() == "Dip" {
			terminal = true
		}
	}

	return diags, terminal
}

// checkExclusiveStriation enforces that exactly one of rake or trend
// describes the striation.
func checkExclusiveStriation(s fault.Striation) []Diagnostic {
	switch {
	case s.RakeDeg != nil && s.TrendDeg != nil:
		return []Diagnostic{{CodeConflictingDescription, fieldRake,
			"striation described by both rake and trend; supply exactly one"}}
	case s.RakeDeg == nil && s.TrendDeg == nil:
		return []Diagnostic{{CodeConflictingDescription, fieldRake,
			"striation described by neither rake nor trend; supply exactly one"}}
	default:
		return nil
	}
}

// checkEnumParse reports unparseable enum text regardless of case.
func checkEnumParse(obs fault.Observation) (diags []Diagnostic) {
	if obs.Plane.DipDirection == fault.DirError {
		diags = append(diags, Diagnostic{CodeInvalidEnumeration, fieldDipDir,
			"text does not parse to a compass direction"})
	}
	if obs.Striation.StrikeDirection == fault.DirError {
		diags = append(diags, Diagnostic{CodeInvalidEnumeration, fieldStrikeDir,
			"text does not parse to a compass direction"})
	}
	if obs.Striation.Movement == fault.MovError {
		diags = append(diags, Diagnostic{CodeInvalidEnumeration, fieldMovement,
			"text does not parse to a sense of movement"})
	}

	return diags
}

// checkGeneralPlane covers 0 < dip < 90: striation by rake, genuine
// dip direction and sense of movement, strike direction for oblique
// rakes.
func checkGeneralPlane(obs fault.Observation) (diags []Diagnostic) {
	s := obs.Striation
	if s.TrendDeg != nil && s.RakeDeg == nil {
		diags = append(diags, Diagnostic{CodeConflictingDescription, fieldTrend,
			"striation of an inclined plane must be given as a rake, not a trend"})
	}
	if s.RakeDeg != nil && *s.RakeDeg > 0 && *s.RakeDeg < 90 &&
		s.StrikeDirection == fault.DirUnd {
		diags = append(diags, Diagnostic{CodeMissingField, fieldStrikeDir,
			"required for an oblique rake on an inclined plane"})
	}
	if obs.Plane.DipDirection == fault.DirUnd {
		diags = append(diags, Diagnostic{CodeMissingField, fieldDipDir,
			"required for an inclined plane"})
	}
	if s.Movement == fault.MovUnd {
		diags = append(diags, Diagnostic{CodeMissingField, fieldMovement,
			"required for an inclined plane"})
	}

	return diags
}

// checkHorizontalPlane covers dip = 0: striation by trend, no
// kinematic label, dip direction meaningless.
func checkHorizontalPlane(obs fault.Observation) (diags, warns []Diagnostic) {
	s := obs.Striation
	if s.RakeDeg != nil && s.TrendDeg == nil {
		diags = append(diags, Diagnostic{CodeConflictingDescription, fieldRake,
			"rake is undefined on a horizontal plane; describe the striation by its trend"})
	}
	if s.Movement.IsKinematic() {
		diags = append(diags, Diagnostic{CodeConflictingDescription, fieldMovement,
			"a horizontal plane carries no meaningful sense of movement"})
	}
	if obs.Plane.DipDirection.IsGeographic() {
		warns = append(warns, Diagnostic{CodeConflictingDescription, fieldDipDir,
			"ignored for a horizontal plane (normalized to UND)"})
	}

	return diags, warns
}

// checkVerticalPlane covers dip = 90: striation by rake; oblique rakes
// need a strike direction and a sense of movement; a vertical
// striation (rake 90) needs a dip direction marking the uplifted
// block.
func checkVerticalPlane(obs fault.Observation) (diags []Diagnostic) {
	s := obs.Striation
	if s.TrendDeg != nil && s.RakeDeg == nil {
		diags = append(diags, Diagnostic{CodeConflictingDescription, fieldTrend,
			"striation of a vertical plane must be given as a rake, not a trend"})
	}
	if s.RakeDeg == nil {
		return diags
	}

	rake := *s.RakeDeg
	if rake > 0 && rake < 90 {
		if s.StrikeDirection == fault.DirUnd {
			diags = append(diags, Diagnostic{CodeMissingField, fieldStrikeDir,
				"required for an oblique rake on a vertical plane"})
		}
		if s.Movement == fault.MovUnd {
			diags = append(diags, Diagnostic{CodeMissingField, fieldMovement,
				"required for an oblique rake on a vertical plane"})
		}
	}
	if rake == 90 && !obs.Plane.DipDirection.IsGeographic() {
		diags = append(diags, Diagnostic{CodeMissingField, fieldDipDir,
			"a vertical striation on a vertical plane needs a dip direction pointing toward the uplifted block"})
	}

	return diags
}

// normalize writes Und into the fields the conventions declare
// meaningless for the validated case.
func normalize(obs fault.Observation) fault.Observation {
	dip := *obs.Plane.DipDeg
	if dip == 0 {
		obs.Plane.DipDirection = fault.DirUnd
		obs.Striation.StrikeDirection = fault.DirUnd
	}

	return obs
}

// Check validates one observation against the plane/striation
// consistency rules and, on success, derives its plane vectors.
// Diagnostics are accumulated across all applicable rules; see the
// package documentation for the two hard stops.
func Check(obs fault.Observation) Result {
	var res Result
	res.Normalized = obs

	diags, terminal := checkScalars(obs)
	res.Errors = append(res.Errors, diags...)
	if terminal {
		return res
	}

	res.Errors = append(res.Errors, checkEnumParse(obs)...)
	res.Errors = append(res.Errors, checkExclusiveStriation(obs.Striation)...)

	switch dip := *obs.Plane.DipDeg; {
	case dip == 0:
		d, w := checkHorizontalPlane(obs)
		res.Errors = append(res.Errors, d...)
		res.Warnings = append(res.Warnings, w...)
	case dip == 90:
		res.Errors = append(res.Errors, checkVerticalPlane(obs)...)
	default:
		res.Errors = append(res.Errors, checkGeneralPlane(obs)...)
	}

	if len(res.Errors) > 0 {
		return res
	}

	vectors, derr := deriveVectors(obs)
	if derr != nil {
		res.Errors = append(res.Errors, *derr)
		return res
	}

	res.OK = true
	res.Normalized = normalize(obs)
	res.Vectors = vectors

	return res
}
