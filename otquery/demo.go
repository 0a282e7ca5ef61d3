package main

import (
	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgpos"
	"github.com/npillmayer/otengine/otgsub"
)

// demoGSUB/demoGPOS are modeled on otcli's fixtures: this module has no
// binary font parser (§A.1's Non-goals, carried over from
// otdata/gdef.go), so both CLIs introspect small hand-built tables
// rather than a loaded font file. These differ from otcli's: smcp
// covers only "a", and GSUB adds a latn script with a TRK language
// system.
func demoGSUB() *otdata.Table {
	liga := otgsub.NewLigatureSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"f"}),
		[][]otgsub.Ligature{{{LigGlyph: "fi", Component: []string{"i"}}}})
	smcp := otgsub.NewSingleSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"a"}), []string{"a.sc"})
	aalt := otgsub.NewSingleSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"a"}), []string{"a.alt"})

	lookups := otdata.NewLookupList([]otdata.Lookup{
		{Type: 4, Subtables: []otdata.Evaluator{liga}},
		{Type: 1, Subtables: []otdata.Evaluator{smcp}},
		{Type: 1, Subtables: []otdata.Evaluator{aalt}},
	})
	feats := otdata.NewFeatureList([]otdata.FeatureRecord{
		{Tag: "liga", LookupListIndex: []int{0}},
		{Tag: "smcp", LookupListIndex: []int{1}},
		{Tag: otdata.AALT, LookupListIndex: []int{2}},
	})
	scripts := otdata.NewScriptList(map[otdata.Tag]otdata.Script{
		otdata.DFLT: {DefaultLangSys: otdata.LangSys{
			ReqFeatureIndex: otdata.NoRequiredFeature,
			FeatureIndex:    []int{0, 1, 2},
		}},
		"latn": {
			DefaultLangSys: otdata.LangSys{ReqFeatureIndex: otdata.NoRequiredFeature, FeatureIndex: []int{0, 1}},
			LangSysRecords: map[otdata.Tag]otdata.LangSys{
				"TRK": {ReqFeatureIndex: otdata.NoRequiredFeature, FeatureIndex: []int{0}},
			},
		},
	})
	return otdata.NewTable(otdata.KindGSUB, scripts, feats, lookups)
}

func demoGPOS() *otdata.Table {
	kern := otgpos.NewPairAdjustmentFormat1(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"A"}),
		[][]otgpos.PairValueRecord{{{SecondGlyph: "V", Value1: otdata.ValueRecord{XAdvance: -80}}}})
	lookups := otdata.NewLookupList([]otdata.Lookup{{Type: 2, Subtables: []otdata.Evaluator{kern}}})
	feats := otdata.NewFeatureList([]otdata.FeatureRecord{{Tag: "kern", LookupListIndex: []int{0}}})
	scripts := otdata.NewScriptList(map[otdata.Tag]otdata.Script{
		otdata.DFLT: {DefaultLangSys: otdata.LangSys{
			ReqFeatureIndex: otdata.NoRequiredFeature,
			FeatureIndex:    []int{0},
		}},
	})
	return otdata.NewTable(otdata.KindGPOS, scripts, feats, lookups)
}
