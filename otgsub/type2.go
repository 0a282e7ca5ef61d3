package otgsub

import "github.com/npillmayer/otengine/otdata"

// MultipleSubstitution is GSUB lookup type 2: replaces the head record
// with a fresh sequence of records, each with zeroed placement/advance,
// discarding the head's prior substitution state entirely (§A.4.3
// type 2).
type MultipleSubstitution struct {
	otdata.FlagFilter
	Coverage  *otdata.Coverage
	Sequences [][]string
}

var _ otdata.Evaluator = (*MultipleSubstitution)(nil)

// NewMultipleSubstitution builds a MultipleSubstitution evaluator.
// sequences[i] is the glyph-name replacement list for coverage.Glyph(i).
func NewMultipleSubstitution(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, sequences [][]string) *MultipleSubstitution {
	cp := make([][]string, len(sequences))
	for i, s := range sequences {
		cp[i] = append([]string(nil), s...)
	}
	return &MultipleSubstitution{
		FlagFilter: otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:   coverage,
		Sequences:  cp,
	}
}

func (m *MultipleSubstitution) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !m.Coverage.Contains(head.GlyphName) || m.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	sequence := m.Sequences[m.Coverage.Index(head.GlyphName)]

	fresh := make([]otdata.GlyphRecord, len(sequence))
	for i, name := range sequence {
		fresh[i] = *otdata.NewGlyphRecord(name)
	}
	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), fresh...)
	return newProcessed, remaining[1:], true
}
