package otgpos_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkToLigatureAlwaysUsesFirstComponent(t *testing.T) {
	markCov := otdata.NewCoverage([]string{"acutecomb"})
	ligCov := otdata.NewCoverage([]string{"fi"})
	markArray := []otgpos.MarkRecord{{Class: 0, MarkAnchor: otdata.Anchor{}}}
	ligArray := [][][]otdata.Anchor{
		{
			{{XCoordinate: 100, YCoordinate: 500}}, // component 0
			{{XCoordinate: 300, YCoordinate: 500}}, // component 1, never consulted
		},
	}
	m := otgpos.NewMarkToLigature(otdata.LookupFlag{}, nil, markCov, ligCov, markArray, ligArray)

	processed, _, ok := m.Process(recs("fi"), recs("acutecomb"), "mark")
	require.True(t, ok)
	assert.Equal(t, int32(100), processed[1].XPlacement)
}
