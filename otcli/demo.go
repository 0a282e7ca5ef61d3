package main

import (
	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgpos"
	"github.com/npillmayer/otengine/otgsub"
)

// Binary font parsing is out of this engine's scope (§A.1's Non-goals,
// carried over from otdata/gdef.go's own boundary note): there is no
// sfnt/cmap-table loader anywhere in this module. demoGSUB/demoGPOS
// stand in for "load a font" the way the teacher's otcli loads a file
// from testdata/, except here the GSUB/GPOS tables and character map
// are small, hand-built fixtures, just enough to exercise every
// command this REPL offers.
type asciiCMAP struct{}

func (asciiCMAP) Glyph(r rune) (string, bool) {
	if r == ' ' {
		return "space", true
	}
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return string(r), true
	}
	return "", false
}

type asciiReverseCMAP struct{}

func (asciiReverseCMAP) Lookup(name string) (rune, bool) {
	if name == "space" {
		return ' ', true
	}
	rs := []rune(name)
	if len(rs) == 1 {
		return rs[0], true
	}
	return 0, false
}

func demoGSUB() *otdata.Table {
	liga := newSingleLigature("f", "i", "fi")
	smcp := newUpperCaseSmallCaps()
	aalt := newAlternateA()

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
	})
	return otdata.NewTable(otdata.KindGSUB, scripts, feats, lookups)
}

func demoGPOS() *otdata.Table {
	kern := newDemoKerningPair()
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

func newSingleLigature(head, tail, ligature string) *otgsub.LigatureSubstitution {
	return otgsub.NewLigatureSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{head}),
		[][]otgsub.Ligature{{{LigGlyph: ligature, Component: []string{tail}}}})
}

// newUpperCaseSmallCaps renames every lowercase letter to its
// ".sc" small-cap variant, off by default like a real font's smcp.
func newUpperCaseSmallCaps() *otgsub.SingleSubstitution {
	var coverage, substitute []string
	for r := 'a'; r <= 'z'; r++ {
		name := string(r)
		coverage = append(coverage, name)
		substitute = append(substitute, name+".sc")
	}
	return otgsub.NewSingleSubstitution(otdata.LookupFlag{}, nil, otdata.NewCoverage(coverage), substitute)
}

func newAlternateA() *otgsub.SingleSubstitution {
	return otgsub.NewSingleSubstitution(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"a"}), []string{"a.alt"})
}

func newDemoKerningPair() *otgpos.PairAdjustmentFormat1 {
	return otgpos.NewPairAdjustmentFormat1(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"A"}),
		[][]otgpos.PairValueRecord{{{SecondGlyph: "V", Value1: otdata.ValueRecord{XAdvance: -80}}}})
}
