// Package fault: geographic Direction enum and its synonym parser.
package fault

import "strings"

// Direction is one of the eight compass points, or Und (undefined, a
// valid state), or DirError (unparseable input). The zero value is
// DirUnd, so an absent column decodes to "undefined".
type Direction int

const (
	// DirUnd means the direction is undefined or was not supplied.
	DirUnd Direction = iota
	// The eight compass points, clockwise from North.
	DirNorth
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirWest
	DirNorthWest
	// DirError marks non-empty text that did not parse.
	DirError
)

// directionSynonyms maps normalized tokens to directions. Keys must be
// pre-normalized (lowercase, separators stripped).
var directionSynonyms = map[string]Direction{
	"n": DirNorth, "north": DirNorth,
	"ne": DirNorthEast, "northeast": DirNorthEast,
	"e": DirEast, "east": DirEast,
	"se": DirSouthEast, "southeast": DirSouthEast,
	"s": DirSouth, "south": DirSouth,
	"sw": DirSouthWest, "southwest": DirSouthWest,
	"w": DirWest, "west": DirWest,
	"nw": DirNorthWest, "northwest": DirNorthWest,
	"und": DirUnd, "undefined": DirUnd,
}

// directionNames holds the canonical short spellings.
var directionNames = map[Direction]string{
	DirUnd:       "UND",
	DirNorth:     "N",
	DirNorthEast: "NE",
	DirEast:      "E",
	DirSouthEast: "SE",
	DirSouth:     "S",
	DirSouthWest: "SW",
	DirWest:      "W",
	DirNorthWest: "NW",
	DirError:     "ERROR",
}

// directionAzimuths holds the sector-center azimuth of each compass
// point, degrees clockwise from North.
var directionAzimuths = map[Direction]float64{
	DirNorth:     0,
	DirNorthEast: 45,
	DirEast:      90,
	DirSouthEast: 135,
	DirSouth:     180,
	DirSouthWest: 225,
	DirWest:      270,
	DirNorthWest: 315,
}

// normalizeToken lowercases s and strips the separators treated as
// equivalent in field sheets: spaces, hyphens, underscores, dots,
// slashes and plus signs.
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.', '/', '+':
			return -1
		}
		return r
	}, s)
}

// ParseDirection parses free text into a Direction. Total: empty text
// yields DirUnd, unrecognized non-empty text yields DirError, and the
// function never fails. Parsing is idempotent on canonical names and
// their standard abbreviations.
func ParseDirection(text string) Direction {
	tok := normalizeToken(text)
	if tok == "" {
		return DirUnd
	}
	if d, ok := directionSynonyms[tok]; ok {
		return d
	}

	return DirError
}

// IsGeographic reports whether d is one of the eight compass points
// (excludes Und and Error).
func (d Direction) IsGeographic() bool {
	_, ok := directionAzimuths[d]
	return ok
}

// Azimuth returns the sector-center azimuth of a compass point in
// degrees clockwise from North, or ErrNotGeographic for Und/Error.
func (d Direction) Azimuth() (float64, error) {
	az, ok := directionAzimuths[d]
	if !ok {
		return 0, ErrNotGeographic
	}

	return az, nil
}

// String returns the canonical short spelling ("N", "NE", …, "UND",
// "ERROR").
func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}

	return "ERROR"
}
