package otgsub

import (
	"github.com/npillmayer/otengine/otctx"
	"github.com/npillmayer/otengine/otdata"
)

// ChainContextRule is one entry of a chaining-contextual rule/class-rule
// set: Backtrack and LookAhead are given nearest-to-input first, as
// §A.4.5 requires; Glyphs/Classes describe the input positions after
// the head the same way ContextRule does.
type ChainContextRule struct {
	BacktrackGlyphs []string
	Glyphs          []string
	LookAheadGlyphs []string

	BacktrackClasses []int
	Classes          []int
	LookAheadClasses []int

	Actions []otctx.ActionRecord
}

// ChainContextSubstitutionFormat1 is GSUB lookup type 6 format 1
// (§A.4.3 type 6, §A.4.5).
type ChainContextSubstitutionFormat1 struct {
	otdata.FlagFilter
	Coverage   *otdata.Coverage
	RuleSets   [][]ChainContextRule
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ChainContextSubstitutionFormat1)(nil)
	_ otdata.Dispatched = (*ChainContextSubstitutionFormat1)(nil)
)

func NewChainContextSubstitutionFormat1(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, ruleSets [][]ChainContextRule) *ChainContextSubstitutionFormat1 {
	return &ChainContextSubstitutionFormat1{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		RuleSets:   ruleSets,
	}
}

func (c *ChainContextSubstitutionFormat1) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ChainContextSubstitutionFormat1) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
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

// ChainContextSubstitutionFormat2 is GSUB lookup type 6 format 2: three
// independent ClassDefs, one each for backtrack/input/lookahead
// (§A.4.3 type 6, §A.4.5).
type ChainContextSubstitutionFormat2 struct {
	otdata.FlagFilter
	Coverage          *otdata.Coverage
	BacktrackClassDef *otdata.ClassDef
	InputClassDef     *otdata.ClassDef
	LookAheadClassDef *otdata.ClassDef
	ClassSets         map[int][]ChainContextRule
	dispatcher        otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ChainContextSubstitutionFormat2)(nil)
	_ otdata.Dispatched = (*ChainContextSubstitutionFormat2)(nil)
)

func NewChainContextSubstitutionFormat2(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, backtrack, input, lookahead *otdata.ClassDef, classSets map[int][]ChainContextRule) *ChainContextSubstitutionFormat2 {
	return &ChainContextSubstitutionFormat2{
		FlagFilter:        otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:          coverage,
		BacktrackClassDef: backtrack,
		InputClassDef:     input,
		LookAheadClassDef: lookahead,
		ClassSets:         classSets,
	}
}

func (c *ChainContextSubstitutionFormat2) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ChainContextSubstitutionFormat2) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
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

// ChainContextSubstitutionFormat3 is GSUB lookup type 6 format 3: a
// single rule given directly as backtrack/input/lookahead coverage
// arrays (§A.4.3 type 6, §A.4.5).
type ChainContextSubstitutionFormat3 struct {
	otdata.FlagFilter
	Backtrack  []*otdata.Coverage
	Input      []*otdata.Coverage
	LookAhead  []*otdata.Coverage
	Actions    []otctx.ActionRecord
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ChainContextSubstitutionFormat3)(nil)
	_ otdata.Dispatched = (*ChainContextSubstitutionFormat3)(nil)
)

func NewChainContextSubstitutionFormat3(flag otdata.LookupFlag, gdef *otdata.GDEF, backtrack, input, lookahead []*otdata.Coverage, actions []otctx.ActionRecord) *ChainContextSubstitutionFormat3 {
	return &ChainContextSubstitutionFormat3{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Backtrack:  backtrack,
		Input:      input,
		LookAhead:  lookahead,
		Actions:    actions,
	}
}

func (c *ChainContextSubstitutionFormat3) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ChainContextSubstitutionFormat3) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
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
