package otdata_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGSUBTable() *otdata.Table {
	scripts := otdata.NewScriptList(map[otdata.Tag]otdata.Script{
		"latn": {DefaultLangSys: otdata.LangSys{ReqFeatureIndex: otdata.NoRequiredFeature, FeatureIndex: []int{0, 1}}},
	})
	feats := otdata.NewFeatureList([]otdata.FeatureRecord{
		{Tag: "liga", LookupListIndex: []int{0}},
		{Tag: "calt", LookupListIndex: []int{1}},
	})
	lookups := otdata.NewLookupList([]otdata.Lookup{
		{Type: 4, Subtables: nil},
		{Type: 5, Subtables: nil},
	})
	return otdata.NewTable(otdata.KindGSUB, scripts, feats, lookups)
}

func TestDefaultFeatureStateClosedEnumeration(t *testing.T) {
	tbl := newTestGSUBTable()
	on, ok := tbl.FeatureState("liga")
	require.True(t, ok)
	assert.True(t, on, "liga is in the default-on GSUB enumeration")

	on, ok = tbl.FeatureState("calt")
	require.True(t, ok)
	assert.True(t, on, "calt is in the default-on GSUB enumeration")
}

func TestFeatureStateAbsentTag(t *testing.T) {
	tbl := newTestGSUBTable()
	_, ok := tbl.FeatureState("smcp")
	assert.False(t, ok, "smcp is not declared in this table's FeatureList")
}

func TestSetFeatureStateInvalidatesCache(t *testing.T) {
	tbl := newTestGSUBTable()
	tbl.StoreCachedLookups("latn", "", []otdata.ResolvedLookup{{FeatureTag: "liga", LookupIndex: 0}})
	_, ok := tbl.CachedLookups("latn", "")
	require.True(t, ok)

	tbl.SetFeatureState("liga", false)
	_, ok = tbl.CachedLookups("latn", "")
	assert.False(t, ok, "changing feature state clears the applicable-feature cache")
}

func TestScriptListFallsBackToDFLT(t *testing.T) {
	scripts := otdata.NewScriptList(map[otdata.Tag]otdata.Script{
		"DFLT": {DefaultLangSys: otdata.LangSys{ReqFeatureIndex: otdata.NoRequiredFeature}},
	})
	_, ok := scripts.Lookup("arab")
	assert.True(t, ok, "falls back to DFLT when arab is absent")

	empty := otdata.NewScriptList(nil)
	_, ok = empty.Lookup("arab")
	assert.False(t, ok)
}
