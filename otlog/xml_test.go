package otlog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable() *otdata.Table {
	scripts := otdata.NewScriptList(map[otdata.Tag]otdata.Script{
		"latn": {DefaultLangSys: otdata.LangSys{ReqFeatureIndex: otdata.NoRequiredFeature, FeatureIndex: []int{0, 1}}},
	})
	feats := otdata.NewFeatureList([]otdata.FeatureRecord{
		{Tag: "liga", LookupListIndex: []int{0}},
		{Tag: "kern", LookupListIndex: []int{1}},
	})
	lookups := otdata.NewLookupList([]otdata.Lookup{{Type: 4}, {Type: 2}})
	return otdata.NewTable(otdata.KindGSUB, scripts, feats, lookups)
}

func TestXMLLoggerProducesWellFormedTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := otlog.NewXMLLogger(&buf)
	tbl := newTable()

	logger.LogStart()
	logger.LogMainSettings([]string{"H", "e", "l", "l", "o"}, "latn", "")
	logger.LogTableStart(tbl)
	logger.LogApplicableLookups(tbl, []otdata.ResolvedLookup{
		{FeatureTag: "liga", LookupIndex: 0},
		{FeatureTag: "kern", LookupIndex: 1},
	})
	logger.LogProcessingStart()
	logger.LogLookupStart(tbl, "liga", 0)
	logger.LogSubTableStart(0, 0, "LigatureSubstitutionFormat1")
	logger.LogInput(nil, []otdata.GlyphRecord{*otdata.NewGlyphRecord("H")})
	logger.LogOutput([]otdata.GlyphRecord{*otdata.NewGlyphRecord("H")}, nil)
	logger.LogSubTableEnd()
	logger.LogLookupEnd()
	logger.LogProcessingEnd()
	logger.LogResults([]otdata.GlyphRecord{*otdata.NewGlyphRecord("H")})
	logger.LogTableEnd()
	logger.LogEnd()
	require.NoError(t, logger.Flush())

	out := buf.String()
	assert.True(t, strings.Contains(out, `<table name="GSUB">`))
	assert.True(t, strings.Contains(out, `<lookups feature="liga" indices="0">`))
	assert.True(t, strings.Contains(out, `<lookups feature="kern" indices="1">`))
	assert.True(t, strings.Contains(out, `<glyphRecord name="H"`))
}

func TestXMLLoggerGroupsConsecutiveLookupIndicesByFeature(t *testing.T) {
	var buf bytes.Buffer
	logger := otlog.NewXMLLogger(&buf)
	tbl := newTable()
	logger.LogApplicableLookups(tbl, []otdata.ResolvedLookup{
		{FeatureTag: "liga", LookupIndex: 0},
		{FeatureTag: "liga", LookupIndex: 2},
		{FeatureTag: "kern", LookupIndex: 1},
	})
	require.NoError(t, logger.Flush())
	out := buf.String()
	assert.True(t, strings.Contains(out, `indices="0 2"`))
}

func TestNopLoggerSatisfiesInterface(t *testing.T) {
	var l otlog.Logger = otlog.NopLogger{}
	l.LogStart()
	l.LogEnd()
}
