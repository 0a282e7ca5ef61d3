package otgsub

import "github.com/npillmayer/otengine/otdata"

// Ligature is one entry of a LigatureSet: the replacement glyph and the
// component names that must follow the head glyph (head itself is not
// repeated here, matching the font tools' own Component list).
type Ligature struct {
	LigGlyph  string
	Component []string
}

// LigatureSubstitution is GSUB lookup type 4 (§A.4.3 type 4): for the
// head glyph's coverage index, tries each candidate ligature in order,
// matching its Component list against the following stream positions
// (skipping flag-covered records, which stay interleaved and
// unconsumed on a failed or successful match alike). The first
// ligature whose components fully match wins.
type LigatureSubstitution struct {
	otdata.FlagFilter
	Coverage    *otdata.Coverage
	LigatureSet [][]Ligature
}

var _ otdata.Evaluator = (*LigatureSubstitution)(nil)

// NewLigatureSubstitution builds a LigatureSubstitution evaluator.
func NewLigatureSubstitution(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, ligatureSet [][]Ligature) *LigatureSubstitution {
	cp := make([][]Ligature, len(ligatureSet))
	for i, set := range ligatureSet {
		cp[i] = append([]Ligature(nil), set...)
	}
	return &LigatureSubstitution{
		FlagFilter:  otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:    coverage,
		LigatureSet: cp,
	}
}

func (l *LigatureSubstitution) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !l.Coverage.Contains(head.GlyphName) || l.Skip(head.GlyphName) {
		return processed, remaining, false
	}

	for _, lig := range l.LigatureSet[l.Coverage.Index(head.GlyphName)] {
		if len(lig.Component) == 0 {
			continue
		}
		var matchedIdx []int
		componentIdx := 0
		lastWasMatch := false
		for i := 1; i < len(remaining); i++ {
			name := remaining[i].GlyphName
			if l.Skip(name) {
				continue
			}
			if name != lig.Component[componentIdx] {
				lastWasMatch = false
				break
			}
			lastWasMatch = true
			matchedIdx = append(matchedIdx, i)
			componentIdx++
			if componentIdx == len(lig.Component) {
				break
			}
		}
		if !lastWasMatch || componentIdx != len(lig.Component) {
			continue
		}

		components := append([]string{head.GlyphName}, lig.Component...)
		rec := head
		rec.SaveLigatureState(components)
		rec.GlyphName = lig.LigGlyph
		rec.LigatureComponents = components

		matchedSet := make(map[int]bool, len(matchedIdx))
		for _, m := range matchedIdx {
			matchedSet[m] = true
		}
		newRemaining := make([]otdata.GlyphRecord, 0, len(remaining))
		for i := 1; i < len(remaining); i++ {
			if matchedSet[i] {
				continue
			}
			newRemaining = append(newRemaining, remaining[i])
		}
		newProcessed := append(append([]otdata.GlyphRecord{}, processed...), rec)
		return newProcessed, newRemaining, true
	}
	return processed, remaining, false
}
