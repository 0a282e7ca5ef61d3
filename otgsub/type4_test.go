package otgsub_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLigatureSubstitutionSimpleLigature(t *testing.T) {
	lig := otgsub.NewLigatureSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"f"}),
		[][]otgsub.Ligature{{{LigGlyph: "fi", Component: []string{"i"}}}})

	processed, remaining, ok := lig.Process(nil, recs("f", "i", "x"), "liga")
	require.True(t, ok)
	require.Len(t, processed, 1)
	assert.Equal(t, "fi", processed[0].GlyphName)
	assert.Equal(t, []string{"f", "i"}, processed[0].LigatureComponents)
	assert.Equal(t, []string{"x"}, glyphNames(remaining))
}

func TestLigatureSubstitutionSkipsMarksDuringMatch(t *testing.T) {
	gdef := &otdata.GDEF{GlyphClassDef: otdata.NewClassDef(map[string]int{
		"acutecomb": otdata.GlyphClassMark,
	})}
	flag := otdata.LookupFlag{IgnoreMarks: true}
	lig := otgsub.NewLigatureSubstitution(flag, gdef,
		otdata.NewCoverage([]string{"f"}),
		[][]otgsub.Ligature{{{LigGlyph: "fi", Component: []string{"i"}}}})

	processed, remaining, ok := lig.Process(nil, recs("f", "acutecomb", "i"), "liga")
	require.True(t, ok)
	assert.Equal(t, "fi", processed[0].GlyphName)
	assert.Equal(t, []string{"acutecomb"}, glyphNames(remaining), "the skipped mark stays, unmatched")
}

func TestLigatureSubstitutionNoMatchFallsThrough(t *testing.T) {
	lig := otgsub.NewLigatureSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"f"}),
		[][]otgsub.Ligature{{{LigGlyph: "fi", Component: []string{"i"}}}})
	_, _, ok := lig.Process(nil, recs("f", "x"), "liga")
	assert.False(t, ok)
}
