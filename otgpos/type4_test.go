package otgpos_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkToBasePositionsMarkOnBaseAnchor(t *testing.T) {
	markCov := otdata.NewCoverage([]string{"acutecomb"})
	baseCov := otdata.NewCoverage([]string{"a"})
	markArray := []otgpos.MarkRecord{{Class: 0, MarkAnchor: otdata.Anchor{XCoordinate: 5, YCoordinate: 0}}}
	baseArray := [][]otdata.Anchor{{{XCoordinate: 250, YCoordinate: 400}}}
	m := otgpos.NewMarkToBase(otdata.LookupFlag{}, nil, markCov, baseCov, markArray, baseArray)

	processed := recs("a")
	processed, remaining, ok := m.Process(processed, recs("acutecomb"), "mark")
	require.True(t, ok)
	require.Len(t, processed, 2)
	assert.Equal(t, int32(245), processed[1].XPlacement)
	assert.Equal(t, int32(400), processed[1].YPlacement)
	assert.Empty(t, remaining)
}

func TestMarkToBaseSkipsInterveningMarksWhenSearchingForBase(t *testing.T) {
	gdef := &otdata.GDEF{GlyphClassDef: otdata.NewClassDef(map[string]int{
		"gravecomb": otdata.GlyphClassMark,
	})}
	markCov := otdata.NewCoverage([]string{"acutecomb"})
	baseCov := otdata.NewCoverage([]string{"a"})
	markArray := []otgpos.MarkRecord{{Class: 0, MarkAnchor: otdata.Anchor{}}}
	baseArray := [][]otdata.Anchor{{{XCoordinate: 10, YCoordinate: 20}}}
	m := otgpos.NewMarkToBase(otdata.LookupFlag{}, gdef, markCov, baseCov, markArray, baseArray)

	processed := append(recs("a"), recs("gravecomb")...)
	processed, _, ok := m.Process(processed, recs("acutecomb"), "mark")
	require.True(t, ok)
	assert.Equal(t, int32(10), processed[2].XPlacement, "the base is found past the intervening mark")
}

func TestMarkToBaseNoBaseFails(t *testing.T) {
	markCov := otdata.NewCoverage([]string{"acutecomb"})
	baseCov := otdata.NewCoverage([]string{"a"})
	m := otgpos.NewMarkToBase(otdata.LookupFlag{}, nil, markCov, baseCov, nil, nil)
	_, _, ok := m.Process(nil, recs("acutecomb"), "mark")
	assert.False(t, ok)
}
