package otgpos

import "github.com/npillmayer/otengine/otdata"

// MarkToMark is GPOS lookup type 6: a mark glyph is positioned against
// the nearest preceding mark glyph, such as a stacked combining mark
// attaching to the mark below it (§A.4.4 type 6). Unlike types 4/5, the
// backward search does not exclude GDEF mark-class glyphs.
type MarkToMark struct {
	otdata.FlagFilter
	Mark1Coverage *otdata.Coverage
	Mark2Coverage *otdata.Coverage
	Mark1Array    []MarkRecord
	Mark2Array    [][]otdata.Anchor // [mark2CoverageIndex][markClass]
}

var _ otdata.Evaluator = (*MarkToMark)(nil)

func NewMarkToMark(flag otdata.LookupFlag, gdef *otdata.GDEF, mark1Coverage, mark2Coverage *otdata.Coverage, mark1Array []MarkRecord, mark2Array [][]otdata.Anchor) *MarkToMark {
	return &MarkToMark{
		FlagFilter:    otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Mark1Coverage: mark1Coverage,
		Mark2Coverage: mark2Coverage,
		Mark1Array:    mark1Array,
		Mark2Array:    mark2Array,
	}
}

func (m *MarkToMark) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	mark1 := remaining[0]
	if !m.Mark1Coverage.Contains(mark1.GlyphName) || m.Skip(mark1.GlyphName) {
		return processed, remaining, false
	}
	mark2Idx, ok := previousAny(processed, m.FlagFilter)
	if !ok {
		return processed, remaining, false
	}
	mark2 := processed[mark2Idx]
	if !m.Mark2Coverage.Contains(mark2.GlyphName) {
		return processed, remaining, false
	}
	markRecord := m.Mark1Array[m.Mark1Coverage.Index(mark1.GlyphName)]
	mark2Anchor := m.Mark2Array[m.Mark2Coverage.Index(mark2.GlyphName)][markRecord.Class]

	mark1.AddValue(mark2Anchor.Diff(markRecord.MarkAnchor))

	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), mark1)
	return newProcessed, remaining[1:], true
}
