package otgsub

import "github.com/npillmayer/otengine/otdata"

// SingleSubstitution is GSUB lookup type 1: a coverage-parallel array
// of replacement glyph names. The reference implementation only ever
// needs format 2 (fontTools folds format 1's delta-based variant into
// the same object), so this models format 2's explicit Substitute
// array directly (§A.4.3 type 1).
type SingleSubstitution struct {
	otdata.FlagFilter
	Coverage   *otdata.Coverage
	Substitute []string
}

var _ otdata.Evaluator = (*SingleSubstitution)(nil)

// NewSingleSubstitution builds a SingleSubstitution evaluator. coverage
// and substitute must have equal length; substitute[i] replaces
// coverage.Glyph(i).
func NewSingleSubstitution(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, substitute []string) *SingleSubstitution {
	return &SingleSubstitution{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		Substitute: append([]string(nil), substitute...),
	}
}

func (s *SingleSubstitution) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !s.Coverage.Contains(head.GlyphName) || s.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	substitute := s.Substitute[s.Coverage.Index(head.GlyphName)]

	rec := head
	if featureTag == otdata.AALT {
		rec.ResetAlternatesIfStale(rec.GlyphName)
		rec.Alternates = append(rec.Alternates, substitute)
	} else {
		rec.SaveState()
		rec.GlyphName = substitute
	}

	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), rec)
	return newProcessed, remaining[1:], true
}
