// Package fault: TypeOfMovement enum, synonym parser and slip-vector
// classification.
package fault

import "github.com/katalvlaran/faultkin/orient"

// TypeOfMovement is the kinematic sense of slip on a fault plane: a
// vertical sense (normal or inverse), a lateral sense (right- or
// left-lateral), one of their four combinations, Und, or MovError.
// The zero value is MovUnd, so an absent column decodes to "undefined".
type TypeOfMovement int

const (
	// MovUnd means the sense of movement is undefined or not supplied.
	MovUnd TypeOfMovement = iota
	// MovNormal is dip-slip with the hanging wall moving down.
	MovNormal
	// MovInverse is dip-slip with the hanging wall moving up (reverse,
	// thrust).
	MovInverse
	// MovRightLateral is strike-slip, dextral.
	MovRightLateral
	// MovLeftLateral is strike-slip, sinistral.
	MovLeftLateral
	// MovNormalRL .. MovInverseLL are the oblique combinations.
	MovNormalRL
	MovNormalLL
	MovInverseRL
	MovInverseLL
	// MovError marks non-empty text that did not parse.
	MovError
)

// verticalSynonyms and lateralSynonyms are the building blocks of the
// full synonym table; combined senses are generated from their product.
var (
	verticalSynonyms = map[string]TypeOfMovement{
		"n": MovNormal, "normal": MovNormal,
		"i": MovInverse, "inverse": MovInverse,
		"reverse": MovInverse, "thrust": MovInverse,
	}
	lateralSynonyms = map[string]TypeOfMovement{
		"rl": MovRightLateral, "rightlateral": MovRightLateral, "dextral": MovRightLateral,
		"ll": MovLeftLateral, "leftlateral": MovLeftLateral, "sinistral": MovLeftLateral,
	}
)

// combinedMovement folds a vertical and a lateral sense into one of the
// four oblique members.
func combinedMovement(vert, lat TypeOfMovement) TypeOfMovement {
	switch {
	case vert == MovNormal && lat == MovRightLateral:
		return MovNormalRL
	case vert == MovNormal && lat == MovLeftLateral:
		return MovNormalLL
	case vert == MovInverse && lat == MovRightLateral:
		return MovInverseRL
	default:
		return MovInverseLL
	}
}

// movementSynonyms is the full normalized-token table: singles plus all
// vertical×lateral products in both word orders.
var movementSynonyms = buildMovementSynonyms()

func buildMovementSynonyms() map[string]TypeOfMovement {
	table := map[string]TypeOfMovement{
		"und": MovUnd, "undefined": MovUnd,
	}
	for k, v := range verticalSynonyms {
		table[k] = v
	}
	for k, v := range lateralSynonyms {
		table[k] = v
	}
	for vk, vv := range verticalSynonyms {
		for lk, lv := range lateralSynonyms {
			table[vk+lk] = combinedMovement(vv, lv)
			table[lk+vk] = combinedMovement(vv, lv)
		}
	}

	return table
}

// movementNames holds the canonical short spellings.
var movementNames = map[TypeOfMovement]string{
	MovUnd:          "UND",
	MovNormal:       "N",
	MovInverse:      "I",
	MovRightLateral: "RL",
	MovLeftLateral:  "LL",
	MovNormalRL:     "N-RL",
	MovNormalLL:     "N-LL",
	MovInverseRL:    "I-RL",
	MovInverseLL:    "I-LL",
	MovError:        "ERROR",
}

// ParseMovement parses free text into a TypeOfMovement. Total: empty
// text yields MovUnd, unrecognized non-empty text yields MovError.
// Separators within and between sense words are ignored, so
// "normal + right lateral", "N-RL" and "normal dextral" all parse to
// MovNormalRL.
func ParseMovement(text string) TypeOfMovement {
	tok := normalizeToken(text)
	if tok == "" {
		return MovUnd
	}
	if m, ok := movementSynonyms[tok]; ok {
		return m
	}

	return MovError
}

// IsKinematic reports whether m is a genuine sense of movement
// (excludes Und and Error).
func (m TypeOfMovement) IsKinematic() bool {
	return m >= MovNormal && m <= MovInverseLL
}

// String returns the canonical short spelling.
func (m TypeOfMovement) String() string {
	if s, ok := movementNames[m]; ok {
		return s
	}

	return "ERROR"
}

// slipComponentFloor is the minimum vertical or lateral slip component
// that counts as a distinct sense of movement.
const slipComponentFloor = 0.1

// MovementFromSlip classifies the sense of movement of a hanging-wall
// slip vector relative to a strike vector. The vertical component
// picks inverse (up) or normal (down); the component along strike
// picks left- or right-lateral; both below the floor yields MovUnd.
func MovementFromSlip(slip, strike orient.Vec3) TypeOfMovement {
	var vert, lat TypeOfMovement
	switch {
	case slip.Z > slipComponentFloor:
		vert = MovInverse
	case slip.Z < -slipComponentFloor:
		vert = MovNormal
	}

	along := strike.Dot(slip)
	switch {
	case along > slipComponentFloor:
		lat = MovLeftLateral
	case along < -slipComponentFloor:
		lat = MovRightLateral
	}

	switch {
	case vert == MovUnd:
		return lat // lateral only, or Und
	case lat == MovUnd:
		return vert
	default:
		return combinedMovement(vert, lat)
	}
}
