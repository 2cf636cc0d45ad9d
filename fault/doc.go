// Package fault defines the closed field vocabularies and observation
// records of faultkin: compass directions, senses of movement, data
// types, and the raw plane/striation measurements they describe.
//
// 🚀 What is fault?
//
//	Field sheets describe fault-slip data with free text: "NE", "north
//	east", "dextral", "right lateral", "RL" all mean the same thing.
//	This package turns that text into closed sum types with total
//	parsers, and turns whole string-keyed records (one CSV row, after
//	external parsing) into typed Observation values.
//
// ✨ Key features:
//   - Direction / TypeOfMovement / DataType enums with synonym tables
//   - total parsers: never an error return — unrecognized text maps to
//     the Error member, empty text to the Und member
//   - case- and separator-insensitive matching ("right lateral",
//     "right-lateral", "RIGHT_LATERAL" are equivalent)
//   - DecodeRecord: column-name normalization + typed decoding of one
//     observation record
//   - MovementFromSlip: sense-of-movement classification from a slip
//     vector
//
// ⚙️ Usage:
//
//	d := fault.ParseDirection("north-east") // fault.DirNorthEast
//	obs, err := fault.DecodeRecord(row)     // row is map[string]string
//
// Und ("undefined") is a meaningful state distinct from Error
// (unparseable): a horizontal plane legitimately has an undefined dip
// direction, while "NNE" in a direction column is a data-entry problem.
package fault
