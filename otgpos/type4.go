package otgpos

import "github.com/npillmayer/otengine/otdata"

// MarkRecord is one coverage-indexed entry of a mark array: the
// attachment class the mark belongs to, and its anchor within that
// class (§A.4.4 types 4-6).
type MarkRecord struct {
	Class      int
	MarkAnchor otdata.Anchor
}

// MarkToBase is GPOS lookup type 4: a mark glyph is positioned against
// the nearest preceding base glyph, via baseAnchor.Diff(markAnchor)
// (§A.4.4 type 4). The backward search excludes GDEF mark-class
// glyphs, so a mark still reaches its base when other marks sit
// between them.
type MarkToBase struct {
	otdata.FlagFilter
	MarkCoverage *otdata.Coverage
	BaseCoverage *otdata.Coverage
	MarkArray    []MarkRecord
	BaseArray    [][]otdata.Anchor // [baseCoverageIndex][markClass]
}

var _ otdata.Evaluator = (*MarkToBase)(nil)

func NewMarkToBase(flag otdata.LookupFlag, gdef *otdata.GDEF, markCoverage, baseCoverage *otdata.Coverage, markArray []MarkRecord, baseArray [][]otdata.Anchor) *MarkToBase {
	return &MarkToBase{
		FlagFilter:   otdata.FlagFilter{Flag: flag, GDEF: gdef},
		MarkCoverage: markCoverage,
		BaseCoverage: baseCoverage,
		MarkArray:    markArray,
		BaseArray:    baseArray,
	}
}

func (m *MarkToBase) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	mark := remaining[0]
	if !m.MarkCoverage.Contains(mark.GlyphName) || m.Skip(mark.GlyphName) {
		return processed, remaining, false
	}
	baseIdx, ok := previousNonMark(processed, m.FlagFilter, m.GDEF)
	if !ok {
		return processed, remaining, false
	}
	base := processed[baseIdx]
	if !m.BaseCoverage.Contains(base.GlyphName) {
		return processed, remaining, false
	}
	markRecord := m.MarkArray[m.MarkCoverage.Index(mark.GlyphName)]
	baseAnchor := m.BaseArray[m.BaseCoverage.Index(base.GlyphName)][markRecord.Class]

	mark.AddValue(baseAnchor.Diff(markRecord.MarkAnchor))

	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), mark)
	return newProcessed, remaining[1:], true
}
