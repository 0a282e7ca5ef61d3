package otctx_test

import (
	"testing"

	"github.com/npillmayer/otengine/otctx"
	"github.com/npillmayer/otengine/otdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recs(names ...string) []otdata.GlyphRecord {
	out := make([]otdata.GlyphRecord, len(names))
	for i, n := range names {
		out[i] = *otdata.NewGlyphRecord(n)
	}
	return out
}

func TestMatchCoverageFormat3(t *testing.T) {
	processed := recs()
	remaining := recs("A", "space", "B")

	spec := otctx.MatchSpec{
		Input: otctx.CoverageSequence([]*otdata.Coverage{
			otdata.NewCoverage([]string{"A"}),
			otdata.NewCoverage([]string{"space"}),
			otdata.NewCoverage([]string{"B"}),
		}),
	}
	matched, ok := otctx.Match(processed, remaining, spec, otdata.LookupFlag{}, nil)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, matched)
}

func TestMatchSkipsFlagCoveredGlyphs(t *testing.T) {
	gdef := &otdata.GDEF{GlyphClassDef: otdata.NewClassDef(map[string]int{
		"acutecomb": otdata.GlyphClassMark,
	})}
	flag := otdata.LookupFlag{IgnoreMarks: true}

	remaining := recs("A", "acutecomb", "B")
	spec := otctx.MatchSpec{Input: otctx.GlyphSequence([]string{"A", "B"})}

	matched, ok := otctx.Match(nil, remaining, spec, flag, gdef)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, matched, "the mark at index 1 is skipped, not matched")
}

func TestMatchFailsWhenContextDoesNotReach(t *testing.T) {
	remaining := recs("A", "space")
	spec := otctx.MatchSpec{Input: otctx.GlyphSequence([]string{"A", "B"})}
	_, ok := otctx.Match(nil, remaining, spec, otdata.LookupFlag{}, nil)
	assert.False(t, ok)
}

func TestMatchBacktrackReversedOrder(t *testing.T) {
	processed := recs("f", "o", "o")
	remaining := recs("bar")

	spec := otctx.MatchSpec{
		Backtrack: otctx.GlyphSequence([]string{"o", "o"}), // nearest-to-input first
		Input:     otctx.GlyphSequence([]string{"bar"}),
	}
	_, ok := otctx.Match(processed, remaining, spec, otdata.LookupFlag{}, nil)
	assert.True(t, ok)

	badSpec := otctx.MatchSpec{
		Backtrack: otctx.GlyphSequence([]string{"f", "o"}), // wrong order
		Input:     otctx.GlyphSequence([]string{"bar"}),
	}
	_, ok = otctx.Match(processed, remaining, badSpec, otdata.LookupFlag{}, nil)
	assert.False(t, ok)
}

func TestMatchLookaheadMustFollow(t *testing.T) {
	remaining := recs("A", "B", "C")
	spec := otctx.MatchSpec{
		Input:     otctx.GlyphSequence([]string{"A"}),
		Lookahead: otctx.GlyphSequence([]string{"B"}),
	}
	_, ok := otctx.Match(nil, remaining, spec, otdata.LookupFlag{}, nil)
	assert.True(t, ok)

	spec.Lookahead = otctx.GlyphSequence([]string{"Z"})
	_, ok = otctx.Match(nil, remaining, spec, otdata.LookupFlag{}, nil)
	assert.False(t, ok)
}
