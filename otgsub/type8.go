package otgsub

import "github.com/npillmayer/otengine/otdata"

// ReverseChainingSubstitution is GSUB lookup type 8: declared but not
// implemented (§A.4.3 type 8). Reverse chaining scans the glyph stream
// right-to-left and can rewrite a position behind the current head,
// which does not fit this engine's left-to-right, head-only stream
// processor (§A.4.7) without restructuring it; kept as a recognized,
// inert evaluator so a font that declares one does not crash the
// lookup dispatch, per the type's own "must not crash" requirement.
type ReverseChainingSubstitution struct{}

var _ otdata.Evaluator = ReverseChainingSubstitution{}

func (ReverseChainingSubstitution) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	return processed, remaining, false
}
