package otgpos

import "github.com/npillmayer/otengine/otdata"

// PairValueRecord is one entry of a format-1 pair set: the second glyph
// of the pair, with the adjustments for each side. ValueFormat2 mirrors
// the wire ValueFormat2 mask: it is what decides whether the cursor
// advances past the second glyph, not whether Value2 happens to be
// zero.
type PairValueRecord struct {
	SecondGlyph  string
	Value1       otdata.ValueRecord
	Value2       otdata.ValueRecord
	ValueFormat2 bool
}

// PairAdjustmentFormat1 is GPOS lookup type 2 format 1: coverage
// selects a PairSet for the first glyph, keyed by the second glyph's
// name (§A.4.4 type 2). Per the reference semantics, the cursor
// advances past both glyphs only when the pair's ValueFormat2 is set;
// otherwise the second glyph remains available to head a following
// pair.
type PairAdjustmentFormat1 struct {
	otdata.FlagFilter
	Coverage *otdata.Coverage
	PairSet  [][]PairValueRecord
}

var _ otdata.Evaluator = (*PairAdjustmentFormat1)(nil)

func NewPairAdjustmentFormat1(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, pairSet [][]PairValueRecord) *PairAdjustmentFormat1 {
	return &PairAdjustmentFormat1{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		PairSet:    pairSet,
	}
}

func (p *PairAdjustmentFormat1) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	first := remaining[0]
	if !p.Coverage.Contains(first.GlyphName) || p.Skip(first.GlyphName) {
		return processed, remaining, false
	}
	secondIdx, ok := nextRecordIndex(remaining[1:], p.FlagFilter)
	if !ok {
		return processed, remaining, false
	}
	secondIdx++ // index within remaining, not remaining[1:]

	var pair *PairValueRecord
	for i, pv := range p.PairSet[p.Coverage.Index(first.GlyphName)] {
		if pv.SecondGlyph == remaining[secondIdx].GlyphName {
			pair = &p.PairSet[p.Coverage.Index(first.GlyphName)][i]
			break
		}
	}
	if pair == nil {
		return processed, remaining, false
	}
	return applyPair(processed, remaining, secondIdx, pair.Value1, pair.Value2, pair.ValueFormat2)
}

// applyPair is the shared advance/consume logic for pair positioning,
// grounded on the nextRecordIndex advance-by-one-or-two behaviour
// (§A.4.4 type 2). hasValue2 is the subtable's ValueFormat2 mask, not a
// property of value2's contents: a pair with ValueFormat2 set but a
// zero Value2 still advances past both glyphs.
func applyPair(processed, remaining []otdata.GlyphRecord, secondIdx int, value1, value2 otdata.ValueRecord, hasValue2 bool) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	first := remaining[0]
	first.AddValue(value1)
	skipped := remaining[1:secondIdx]
	second := remaining[secondIdx]
	rest := remaining[secondIdx+1:]

	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), first)
	if !hasValue2 {
		newRemaining := append(append(append([]otdata.GlyphRecord{}, skipped...), second), rest...)
		return newProcessed, newRemaining, true
	}
	second.AddValue(value2)
	newProcessed = append(append(newProcessed, skipped...), second)
	return newProcessed, rest, true
}

// PairAdjustmentFormat2 is GPOS lookup type 2 format 2: both glyphs are
// classified, and a class1 x class2 matrix supplies the adjustments
// (§A.4.4 type 2).
type PairAdjustmentFormat2 struct {
	otdata.FlagFilter
	Coverage     *otdata.Coverage
	ClassDef1    *otdata.ClassDef
	ClassDef2    *otdata.ClassDef
	Class1Count  int
	Class2Count  int
	Value1       [][]otdata.ValueRecord // [class1][class2]
	Value2       [][]otdata.ValueRecord
	ValueFormat2 bool
}

var _ otdata.Evaluator = (*PairAdjustmentFormat2)(nil)

func NewPairAdjustmentFormat2(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, classDef1, classDef2 *otdata.ClassDef, value1, value2 [][]otdata.ValueRecord, valueFormat2 bool) *PairAdjustmentFormat2 {
	return &PairAdjustmentFormat2{
		FlagFilter:   otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:     coverage,
		ClassDef1:    classDef1,
		ClassDef2:    classDef2,
		Value1:       value1,
		Value2:       value2,
		ValueFormat2: valueFormat2,
	}
}

func (p *PairAdjustmentFormat2) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	first := remaining[0]
	if !p.Coverage.Contains(first.GlyphName) || p.Skip(first.GlyphName) {
		return processed, remaining, false
	}
	secondIdx, ok := nextRecordIndex(remaining[1:], p.FlagFilter)
	if !ok {
		return processed, remaining, false
	}
	secondIdx++

	class1 := p.ClassDef1.Get(first.GlyphName)
	class2 := p.ClassDef2.Get(remaining[secondIdx].GlyphName)
	if class1 >= len(p.Value1) || class2 >= len(p.Value1[class1]) {
		return processed, remaining, false
	}
	return applyPair(processed, remaining, secondIdx, p.Value1[class1][class2], p.Value2[class1][class2], p.ValueFormat2)
}
