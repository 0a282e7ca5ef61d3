package otgpos

import (
	"github.com/npillmayer/otengine/otctx"
	"github.com/npillmayer/otengine/otdata"
)

// ContextRule is one entry of a contextual positioning rule/class-rule
// set, mirroring otgsub.ContextRule (§A.4.4 type 7, §A.4.5).
type ContextRule struct {
	Glyphs  []string
	Classes []int
	Actions []otctx.ActionRecord
}

// ContextPositioningFormat1 is GPOS lookup type 7 format 1 (§A.4.4 type
// 7, §A.4.5).
type ContextPositioningFormat1 struct {
	otdata.FlagFilter
	Coverage   *otdata.Coverage
	RuleSets   [][]ContextRule
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ContextPositioningFormat1)(nil)
	_ otdata.Dispatched = (*ContextPositioningFormat1)(nil)
)

func NewContextPositioningFormat1(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, ruleSets [][]ContextRule) *ContextPositioningFormat1 {
	return &ContextPositioningFormat1{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		RuleSets:   ruleSets,
	}
}

func (c *ContextPositioningFormat1) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ContextPositioningFormat1) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
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

// ContextPositioningFormat2 is GPOS lookup type 7 format 2 (§A.4.4 type
// 7, §A.4.5).
type ContextPositioningFormat2 struct {
	otdata.FlagFilter
	Coverage   *otdata.Coverage
	ClassDef   *otdata.ClassDef
	ClassSets  map[int][]ContextRule
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ContextPositioningFormat2)(nil)
	_ otdata.Dispatched = (*ContextPositioningFormat2)(nil)
)

func NewContextPositioningFormat2(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, classDef *otdata.ClassDef, classSets map[int][]ContextRule) *ContextPositioningFormat2 {
	return &ContextPositioningFormat2{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		ClassDef:   classDef,
		ClassSets:  classSets,
	}
}

func (c *ContextPositioningFormat2) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ContextPositioningFormat2) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
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

// ContextPositioningFormat3 is GPOS lookup type 7 format 3 (§A.4.4 type
// 7, §A.4.5).
type ContextPositioningFormat3 struct {
	otdata.FlagFilter
	Coverages  []*otdata.Coverage
	Actions    []otctx.ActionRecord
	dispatcher otdata.LookupDispatcher
}

var (
	_ otdata.Evaluator  = (*ContextPositioningFormat3)(nil)
	_ otdata.Dispatched = (*ContextPositioningFormat3)(nil)
)

func NewContextPositioningFormat3(flag otdata.LookupFlag, gdef *otdata.GDEF, coverages []*otdata.Coverage, actions []otctx.ActionRecord) *ContextPositioningFormat3 {
	return &ContextPositioningFormat3{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverages:  coverages,
		Actions:    actions,
	}
}

func (c *ContextPositioningFormat3) SetDispatcher(d otdata.LookupDispatcher) { c.dispatcher = d }

func (c *ContextPositioningFormat3) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
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
