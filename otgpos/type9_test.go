package otgpos_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionDelegatesToInner(t *testing.T) {
	inner := otgpos.NewSingleAdjustmentFormat1(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"A"}), otdata.ValueRecord{XAdvance: -80})
	ext := otgpos.NewExtension(1, inner)

	processed, _, ok := ext.Process(nil, recs("A"), "kern")
	require.True(t, ok)
	assert.Equal(t, int32(-80), processed[0].XAdvance)
}
