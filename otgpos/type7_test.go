package otgpos_test

import (
	"testing"

	"github.com/npillmayer/otengine/otctx"
	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextPositioningFormat3AppliesNestedAdjustment(t *testing.T) {
	inner := otgpos.NewSingleAdjustmentFormat1(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"A"}), otdata.ValueRecord{XAdvance: -80})
	innerLookup := otdata.Lookup{Type: 1, Subtables: []otdata.Evaluator{inner}}
	lookupList := otdata.NewLookupList([]otdata.Lookup{innerLookup})

	ctxPos := otgpos.NewContextPositioningFormat3(otdata.LookupFlag{}, nil,
		[]*otdata.Coverage{
			otdata.NewCoverage([]string{"A"}),
			otdata.NewCoverage([]string{"V"}),
		},
		[]otctx.ActionRecord{{SequenceIndex: 0, LookupListIndex: 0}})
	ctxPos.SetDispatcher(lookupList)

	processed, remaining, ok := ctxPos.Process(nil, recs("A", "V"), "kern")
	require.True(t, ok)
	assert.Equal(t, int32(-80), processed[0].XAdvance)
	assert.Empty(t, remaining)
}
