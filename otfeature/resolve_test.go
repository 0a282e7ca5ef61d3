package otfeature_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otfeature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable() *otdata.Table {
	scripts := otdata.NewScriptList(map[otdata.Tag]otdata.Script{
		"latn": {
			DefaultLangSys: otdata.LangSys{ReqFeatureIndex: 2, FeatureIndex: []int{0, 1}},
		},
	})
	feats := otdata.NewFeatureList([]otdata.FeatureRecord{
		{Tag: "liga", LookupListIndex: []int{3}},
		{Tag: "calt", LookupListIndex: []int{0}},
		{Tag: "smcp", LookupListIndex: []int{1}},
	})
	lookups := otdata.NewLookupList([]otdata.Lookup{
		{Type: 5, Subtables: nil},
		{Type: 1, Subtables: nil},
		{Type: 1, Subtables: nil},
		{Type: 4, Subtables: nil},
	})
	return otdata.NewTable(otdata.KindGSUB, scripts, feats, lookups)
}

func TestResolveOrdersByLookupIndexAscending(t *testing.T) {
	tbl := newTable()
	resolved := otfeature.Resolve(tbl, "latn", "")
	require.Len(t, resolved, 2, "smcp is off by default and excluded")
	assert.Equal(t, otdata.Tag("calt"), resolved[0].FeatureTag)
	assert.Equal(t, 0, resolved[0].LookupIndex)
	assert.Equal(t, otdata.Tag("liga"), resolved[1].FeatureTag)
	assert.Equal(t, 3, resolved[1].LookupIndex)
}

func TestResolveFallsBackToDFLTScript(t *testing.T) {
	scripts := otdata.NewScriptList(map[otdata.Tag]otdata.Script{
		"DFLT": {DefaultLangSys: otdata.LangSys{ReqFeatureIndex: otdata.NoRequiredFeature, FeatureIndex: []int{0}}},
	})
	feats := otdata.NewFeatureList([]otdata.FeatureRecord{{Tag: "liga", LookupListIndex: []int{0}}})
	lookups := otdata.NewLookupList([]otdata.Lookup{{Type: 4}})
	tbl := otdata.NewTable(otdata.KindGSUB, scripts, feats, lookups)

	resolved := otfeature.Resolve(tbl, "arab", "")
	require.Len(t, resolved, 1)
	assert.Equal(t, otdata.Tag("liga"), resolved[0].FeatureTag)
}

func TestResolveCachesResult(t *testing.T) {
	tbl := newTable()
	first := otfeature.Resolve(tbl, "latn", "")
	cached, ok := tbl.CachedLookups("latn", "")
	require.True(t, ok)
	assert.Equal(t, first, cached)
}

func TestResolveUnknownScriptIsEmpty(t *testing.T) {
	scripts := otdata.NewScriptList(nil)
	feats := otdata.NewFeatureList(nil)
	lookups := otdata.NewLookupList(nil)
	tbl := otdata.NewTable(otdata.KindGSUB, scripts, feats, lookups)

	resolved := otfeature.Resolve(tbl, "latn", "")
	assert.Empty(t, resolved)
}
