package otgsub

import (
	"github.com/npillmayer/otengine/otctx"
	"github.com/npillmayer/otengine/otdata"
)

// ContextRule is one entry of a contextual subtable's rule/class-rule
// set: everything needed to build an otctx.MatchSpec once the head
// glyph is already known to be eligible. Glyphs/Classes describe only
// the positions after the head (position 0), matching the font tools'
// own Input/Class lists.
type ContextRule struct {
	Glyphs  []string // format 1
	Classes []int    // format 2
	Actions []otctx.ActionRecord
}

// ContextSubstitutionFormat1 is GSUB lookup type 5 format 1: per-head
// coverage index, an ordered set of glyph-sequence rules, first match
// wins (§A.4.3 type 5, §A.4.5).
type ContextSubstitutionFormat1 struct {
	otdata.FlagFilter
	Coverage   *otdata.Coverage
	RuleSets   [][]ContextRule
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ContextSubstitutionFormat1)(nil)
	_ otdata.Dispatched = (*ContextSubstitutionFormat1)(nil)
)

func NewContextSubstitutionFormat1(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, ruleSets [][]ContextRule) *ContextSubstitutionFormat1 {
	return &ContextSubstitutionFormat1{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		RuleSets:   ruleSets,
	}
}

func (c *ContextSubstitutionFormat1) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ContextSubstitutionFormat1) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !c.Coverage.Contains(head.GlyphName) || c.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	for _, rule := range c.RuleSets[c.Coverage.Index(head.GlyphName)] {
		spec := otctx.MatchSpec{
			Input:   append([]otctx.Predicate{otctx.GlyphPredicate(head.GlyphName)}, otctx.GlyphSequence(rule.Glyphs)...),
			Actions: rule.Actions,
		}
		if matched, ok := otctx.Match(processed, remaining, spec, c.Flag, c.GDEF); ok {
			return otctx.ApplyMatch(processed, remaining, matched, rule.Actions, c.dispatcher, featureTag)
		}
	}
	return processed, remaining, false
}

// ContextSubstitutionFormat2 is GSUB lookup type 5 format 2: the head's
// class (via ClassDef) selects a rule set, each rule giving the classes
// of the following positions (§A.4.3 type 5, §A.4.5).
type ContextSubstitutionFormat2 struct {
	otdata.FlagFilter
	Coverage   *otdata.Coverage
	ClassDef   *otdata.ClassDef
	ClassSets  map[int][]ContextRule
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ContextSubstitutionFormat2)(nil)
	_ otdata.Dispatched = (*ContextSubstitutionFormat2)(nil)
)

func NewContextSubstitutionFormat2(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, classDef *otdata.ClassDef, classSets map[int][]ContextRule) *ContextSubstitutionFormat2 {
	return &ContextSubstitutionFormat2{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		ClassDef:   classDef,
		ClassSets:  classSets,
	}
}

func (c *ContextSubstitutionFormat2) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ContextSubstitutionFormat2) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !c.Coverage.Contains(head.GlyphName) || c.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	headClass := c.ClassDef.Get(head.GlyphName)
	for _, rule := range c.ClassSets[headClass] {
		spec := otctx.MatchSpec{
			Input:   append([]otctx.Predicate{otctx.ClassPredicate(c.ClassDef, headClass)}, otctx.ClassSequence(c.ClassDef, rule.Classes)...),
			Actions: rule.Actions,
		}
		if matched, ok := otctx.Match(processed, remaining, spec, c.Flag, c.GDEF); ok {
			return otctx.ApplyMatch(processed, remaining, matched, rule.Actions, c.dispatcher, featureTag)
		}
	}
	return processed, remaining, false
}

// ContextSubstitutionFormat3 is GSUB lookup type 5 format 3: a single
// rule given directly as a sequence of per-position coverage tables
// (§A.4.3 type 5, §A.4.5).
type ContextSubstitutionFormat3 struct {
	otdata.FlagFilter
	Coverages  []*otdata.Coverage
	Actions    []otctx.ActionRecord
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ContextSubstitutionFormat3)(nil)
	_ otdata.Dispatched = (*ContextSubstitutionFormat3)(nil)
)

func NewContextSubstitutionFormat3(flag otdata.LookupFlag, gdef *otdata.GDEF, coverages []*otdata.Coverage, actions []otctx.ActionRecord) *ContextSubstitutionFormat3 {
	return &ContextSubstitutionFormat3{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverages:  coverages,
		Actions:    actions,
	}
}

func (c *ContextSubstitutionFormat3) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ContextSubstitutionFormat3) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 || len(c.Coverages) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !c.Coverages[0].Contains(head.GlyphName) || c.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	spec := otctx.MatchSpec{Input: otctx.CoverageSequence(c.Coverages), Actions: c.Actions}
	matched, ok := otctx.Match(processed, remaining, spec, c.Flag, c.GDEF)
	if !ok {
		return processed, remaining, false
	}
	return otctx.ApplyMatch(processed, remaining, matched, c.Actions, c.dispatcher, featureTag)
}
