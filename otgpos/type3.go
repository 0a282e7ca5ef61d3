package otgpos

import "github.com/npillmayer/otengine/otdata"

// EntryExit is one coverage-indexed entry of a cursive attachment
// table: either anchor may be absent (§A.4.4 type 3).
type EntryExit struct {
	Entry *otdata.Anchor
	Exit  *otdata.Anchor
}

// CursiveAttachment is GPOS lookup type 3: shifts a following glyph's
// placement so its entry anchor lands on the current glyph's exit
// anchor, via Anchor.Diff (§A.4.4 type 3, §A.3). Only the first glyph
// advances into processed; the second glyph's placement is updated in
// place so a following cursive link can chain off it in turn.
type CursiveAttachment struct {
	otdata.FlagFilter
	Coverage  *otdata.Coverage
	EntryExit []EntryExit
}

var _ otdata.Evaluator = (*CursiveAttachment)(nil)

func NewCursiveAttachment(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, entryExit []EntryExit) *CursiveAttachment {
	return &CursiveAttachment{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		EntryExit:  entryExit,
	}
}

func (c *CursiveAttachment) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	first := remaining[0]
	if !c.Coverage.Contains(first.GlyphName) || c.Skip(first.GlyphName) {
		return processed, remaining, false
	}
	exit := c.EntryExit[c.Coverage.Index(first.GlyphName)].Exit
	if exit == nil {
		return processed, remaining, false
	}
	secondIdx, ok := nextRecordIndex(remaining[1:], c.FlagFilter)
	if !ok {
		return processed, remaining, false
	}
	secondIdx++
	second := remaining[secondIdx]
	if !c.Coverage.Contains(second.GlyphName) {
		return processed, remaining, false
	}
	entry := c.EntryExit[c.Coverage.Index(second.GlyphName)].Entry
	if entry == nil {
		return processed, remaining, false
	}

	second.AddValue(exit.Diff(*entry))

	skipped := remaining[1:secondIdx]
	rest := remaining[secondIdx+1:]
	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), first)
	newRemaining := append(append(append([]otdata.GlyphRecord{}, skipped...), second), rest...)
	return newProcessed, newRemaining, true
}
