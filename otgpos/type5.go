package otgpos

import "github.com/npillmayer/otengine/otdata"

// MarkToLigature is GPOS lookup type 5: a mark glyph is positioned
// against a component of the nearest preceding ligature (§A.4.4 type
// 5). The reference implementation always anchors to the ligature's
// first component regardless of which component the mark actually sits
// over; that limitation is reproduced here rather than fixed, per the
// decided open question in DESIGN.md.
type MarkToLigature struct {
	otdata.FlagFilter
	MarkCoverage     *otdata.Coverage
	LigatureCoverage *otdata.Coverage
	MarkArray        []MarkRecord
	// LigatureArray[ligCoverageIndex][componentIndex][markClass] is the
	// anchor for that component/class pair; only index 0 is consulted.
	LigatureArray [][][]otdata.Anchor
}

var _ otdata.Evaluator = (*MarkToLigature)(nil)

func NewMarkToLigature(flag otdata.LookupFlag, gdef *otdata.GDEF, markCoverage, ligatureCoverage *otdata.Coverage, markArray []MarkRecord, ligatureArray [][][]otdata.Anchor) *MarkToLigature {
	return &MarkToLigature{
		FlagFilter:       otdata.FlagFilter{Flag: flag, GDEF: gdef},
		MarkCoverage:     markCoverage,
		LigatureCoverage: ligatureCoverage,
		MarkArray:        markArray,
		LigatureArray:    ligatureArray,
	}
}

func (m *MarkToLigature) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	mark := remaining[0]
	if !m.MarkCoverage.Contains(mark.GlyphName) || m.Skip(mark.GlyphName) {
		return processed, remaining, false
	}
	ligIdx, ok := previousNonMark(processed, m.FlagFilter, m.GDEF)
	if !ok {
		return processed, remaining, false
	}
	lig := processed[ligIdx]
	if !m.LigatureCoverage.Contains(lig.GlyphName) {
		return processed, remaining, false
	}
	markRecord := m.MarkArray[m.MarkCoverage.Index(mark.GlyphName)]
	const componentIndex = 0
	ligAnchor := m.LigatureArray[m.LigatureCoverage.Index(lig.GlyphName)][componentIndex][markRecord.Class]

	mark.AddValue(ligAnchor.Diff(markRecord.MarkAnchor))

	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), mark)
	return newProcessed, remaining[1:], true
}
