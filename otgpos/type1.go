package otgpos

import "github.com/npillmayer/otengine/otdata"

// SingleAdjustmentFormat1 is GPOS lookup type 1 format 1: every covered
// glyph receives the same ValueRecord (§A.4.4 type 1, grounded on
// GPOSLookupType1Format1's `currentRecord += self.Value`).
type SingleAdjustmentFormat1 struct {
	otdata.FlagFilter
	Coverage *otdata.Coverage
	Value    otdata.ValueRecord
}

var _ otdata.Evaluator = (*SingleAdjustmentFormat1)(nil)

func NewSingleAdjustmentFormat1(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, value otdata.ValueRecord) *SingleAdjustmentFormat1 {
	return &SingleAdjustmentFormat1{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		Value:      value,
	}
}

func (s *SingleAdjustmentFormat1) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !s.Coverage.Contains(head.GlyphName) || s.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	rec := head
	rec.AddValue(s.Value)
	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), rec)
	return newProcessed, remaining[1:], true
}

// SingleAdjustmentFormat2 is GPOS lookup type 1 format 2: a
// coverage-parallel array of ValueRecords, one per covered glyph
// (§A.4.4 type 1, grounded on GPOSLookupType1Format2).
type SingleAdjustmentFormat2 struct {
	otdata.FlagFilter
	Coverage *otdata.Coverage
	Value    []otdata.ValueRecord
}

var _ otdata.Evaluator = (*SingleAdjustmentFormat2)(nil)

func NewSingleAdjustmentFormat2(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, value []otdata.ValueRecord) *SingleAdjustmentFormat2 {
	return &SingleAdjustmentFormat2{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		Value:      append([]otdata.ValueRecord(nil), value...),
	}
}

func (s *SingleAdjustmentFormat2) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !s.Coverage.Contains(head.GlyphName) || s.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	rec := head
	rec.AddValue(s.Value[s.Coverage.Index(head.GlyphName)])
	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), rec)
	return newProcessed, remaining[1:], true
}
