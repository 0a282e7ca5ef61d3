package otgsub_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipleSubstitutionExpandsHeadIntoSequence(t *testing.T) {
	sub := otgsub.NewMultipleSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"ffi"}),
		[][]string{{"f", "f", "i"}})

	processed, remaining, ok := sub.Process(nil, recs("ffi", "x"), "ccmp")
	require.True(t, ok)
	assert.Equal(t, []string{"f", "f", "i"}, glyphNames(processed))
	assert.Equal(t, []string{"x"}, glyphNames(remaining))
}

func TestMultipleSubstitutionZeroesFreshRecords(t *testing.T) {
	sub := otgsub.NewMultipleSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"ffi"}),
		[][]string{{"f", "f", "i"}})

	processed, _, ok := sub.Process(nil, recs("ffi"), "ccmp")
	require.True(t, ok)
	for _, r := range processed {
		assert.Zero(t, r.XAdvance)
		assert.Empty(t, r.LigatureComponents)
	}
}

func TestMultipleSubstitutionSkipsUncoveredGlyph(t *testing.T) {
	sub := otgsub.NewMultipleSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"ffi"}), [][]string{{"f", "f", "i"}})
	_, _, ok := sub.Process(nil, recs("x"), "ccmp")
	assert.False(t, ok)
}
