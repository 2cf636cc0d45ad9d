package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/faultkin/fault"
)

// TestParseDirection_Synonyms verifies synonym invariance across case
// and separators.
func TestParseDirection_Synonyms(t *testing.T) {
	cases := []struct {
		text string
		want fault.Direction
	}{
		{"N", fault.DirNorth},
		{"north", fault.DirNorth},
		{"NE", fault.DirNorthEast},
		{"north east", fault.DirNorthEast},
		{"North-East", fault.DirNorthEast},
		{"NORTH_EAST", fault.DirNorthEast},
		{"sw", fault.DirSouthWest},
		{"", fault.DirUnd},
		{"  ", fault.DirUnd},
		{"undefined", fault.DirUnd},
		{"NNE", fault.DirError},
		{"upward", fault.DirError},
	}
	for _, tc := range cases {
		t.Run("'"+tc.text+"'", func(t *testing.T) {
			assert.Equal(t, tc.want, fault.ParseDirection(tc.text))
		})
	}
}

// TestParseDirection_Idempotent re-parses every canonical spelling.
func TestParseDirection_Idempotent(t *testing.T) {
	all := []fault.Direction{
		fault.DirNorth, fault.DirNorthEast, fault.DirEast, fault.DirSouthEast,
		fault.DirSouth, fault.DirSouthWest, fault.DirWest, fault.DirNorthWest,
		fault.DirUnd,
	}
	for _, d := range all {
		assert.Equal(t, d, fault.ParseDirection(d.String()), "parse(%q)", d.String())
	}
}

// TestDirection_IsGeographic excludes Und and Error.
func TestDirection_IsGeographic(t *testing.T) {
	assert.True(t, fault.DirNorth.IsGeographic())
	assert.True(t, fault.DirSouthWest.IsGeographic())
	assert.False(t, fault.DirUnd.IsGeographic())
	assert.False(t, fault.DirError.IsGeographic())
}

// TestDirection_Azimuth pins sector centers and the non-geographic
// sentinel.
func TestDirection_Azimuth(t *testing.T) {
	az, err := fault.DirEast.Azimuth()
	require.NoError(t, err)
	assert.Equal(t, 90.0, az)

	az, err = fault.DirNorthWest.Azimuth()
	require.NoError(t, err)
	assert.Equal(t, 315.0, az)

	_, err = fault.DirUnd.Azimuth()
	assert.ErrorIs(t, err, fault.ErrNotGeographic)
	_, err = fault.DirError.Azimuth()
	assert.ErrorIs(t, err, fault.ErrNotGeographic)
}
