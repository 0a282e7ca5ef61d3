package otgpos

import (
	"github.com/npillmayer/otengine/otctx"
	"github.com/npillmayer/otengine/otdata"
)

// ChainContextRule is one entry of a chaining-contextual positioning
// rule/class-rule set, mirroring otgsub.ChainContextRule (§A.4.4 type
// 8, §A.4.5).
type ChainContextRule struct {
	BacktrackGlyphs []string
	Glyphs          []string
	LookAheadGlyphs []string

	BacktrackClasses []int
	Classes          []int
	LookAheadClasses []int

	Actions []otctx.ActionRecord
}

// ChainContextPositioningFormat1 is GPOS lookup type 8 format 1
// (§A.4.4 type 8, §A.4.5).
type ChainContextPositioningFormat1 struct {
	otdata.FlagFilter
	Coverage   *otdata.Coverage
	RuleSets   [][]ChainContextRule
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ChainContextPositioningFormat1)(nil)
	_ otdata.Dispatched = (*ChainContextPositioningFormat1)(nil)
)

func NewChainContextPositioningFormat1(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, ruleSets [][]ChainContextRule) *ChainContextPositioningFormat1 {
	return &ChainContextPositioningFormat1{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		RuleSets:   ruleSets,
	}
}

func (c *ChainContextPositioningFormat1) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ChainContextPositioningFormat1) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !c.Coverage.Contains(head.GlyphName) || c.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	for _, rule := range c.RuleSets[c.Coverage.Index(head.GlyphName)] {
		spec := otctx.MatchSpec{
			Backtrack: otctx.GlyphSequence(rule.BacktrackGlyphs),
			Input:     append([]otctx.Predicate{otctx.GlyphPredicate(head.GlyphName)}, otctx.GlyphSequence(rule.Glyphs)...),
			Lookahead: otctx.GlyphSequence(rule.LookAheadGlyphs),
			Actions:   rule.Actions,
		}
		if matched, ok := otctx.Match(processed, remaining, spec, c.Flag, c.GDEF); ok {
			return otctx.ApplyMatch(processed, remaining, matched, rule.Actions, c.dispatcher, featureTag)
		}
	}
	return processed, remaining, false
}

// ChainContextPositioningFormat2 is GPOS lookup type 8 format 2
// (§A.4.4 type 8, §A.4.5).
type ChainContextPositioningFormat2 struct {
	otdata.FlagFilter
	Coverage          *otdata.Coverage
	BacktrackClassDef *otdata.ClassDef
	InputClassDef     *otdata.ClassDef
	LookAheadClassDef *otdata.ClassDef
	ClassSets         map[int][]ChainContextRule
	dispatcher        otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ChainContextPositioningFormat2)(nil)
	_ otdata.Dispatched = (*ChainContextPositioningFormat2)(nil)
)

func NewChainContextPositioningFormat2(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, backtrack, input, lookahead *otdata.ClassDef, classSets map[int][]ChainContextRule) *ChainContextPositioningFormat2 {
	return &ChainContextPositioningFormat2{
		FlagFilter:        otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:          coverage,
		BacktrackClassDef: backtrack,
		InputClassDef:     input,
		LookAheadClassDef: lookahead,
		ClassSets:         classSets,
	}
}

func (c *ChainContextPositioningFormat2) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ChainContextPositioningFormat2) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !c.Coverage.Contains(head.GlyphName) || c.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	headClass := c.InputClassDef.Get(head.GlyphName)
	for _, rule := range c.ClassSets[headClass] {
		spec := otctx.MatchSpec{
			Backtrack: otctx.ClassSequence(c.BacktrackClassDef, rule.BacktrackClasses),
			Input:     append([]otctx.Predicate{otctx.ClassPredicate(c.InputClassDef, headClass)}, otctx.ClassSequence(c.InputClassDef, rule.Classes)...),
			Lookahead: otctx.ClassSequence(c.LookAheadClassDef, rule.LookAheadClasses),
			Actions:   rule.Actions,
		}
		if matched, ok := otctx.Match(processed, remaining, spec, c.Flag, c.GDEF); ok {
			return otctx.ApplyMatch(processed, remaining, matched, rule.Actions, c.dispatcher, featureTag)
		}
	}
	return processed, remaining, false
}

// ChainContextPositioningFormat3 is GPOS lookup type 8 format 3
// (§A.4.4 type 8, §A.4.5).
type ChainContextPositioningFormat3 struct {
	otdata.FlagFilter
	Backtrack  []*otdata.Coverage
	Input      []*otdata.Coverage
	LookAhead  []*otdata.Coverage
	Actions    []otctx.ActionRecord
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ChainContextPositioningFormat3)(nil)
	_ otdata.Dispatched = (*ChainContextPositioningFormat3)(nil)
)

func NewChainContextPositioningFormat3(flag otdata.LookupFlag, gdef *otdata.GDEF, backtrack, input, lookahead []*otdata.Coverage, actions []otctx.ActionRecord) *ChainContextPositioningFormat3 {
	return &ChainContextPositioningFormat3{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Backtrack:  backtrack,
		Input:      input,
		LookAhead:  lookahead,
		Actions:    actions,
	}
}

func (c *ChainContextPositioningFormat3) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ChainContextPositioningFormat3) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 || len(c.Input) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !c.Input[0].Contains(head.GlyphName) || c.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	spec := otctx.MatchSpec{
		Backtrack: otctx.CoverageSequence(c.Backtrack),
		Input:     otctx.CoverageSequence(c.Input),
		Lookahead: otctx.CoverageSequence(c.LookAhead),
		Actions:   c.Actions,
	}
	matched, ok := otctx.Match(processed, remaining, spec, c.Flag, c.GDEF)
	if !ok {
		return processed, remaining, false
	}
	return otctx.ApplyMatch(processed, remaining, matched, c.Actions, c.dispatcher, featureTag)
}
