package otdata

// Glyph classes as assigned by GDEF's glyph_class_def (§A.3).
const (
	GlyphClassUnassigned = 0
	GlyphClassBase       = 1
	GlyphClassLigature   = 2
	GlyphClassMark       = 3
	GlyphClassComponent  = 4
)

// GDEF is the optional glyph-definition table: a glyph classification
// consulted by the lookup-flag filter, plus a mark-attachment
// sub-classification. AttachList and LigCaretList are deliberately not
// modeled — the reference implementation raises NotImplementedError for
// both, and this engine's purpose excludes ligature-caret positioning
// (§A.1's "drawing of glyph outlines" boundary; §D.6). A GDEF value
// that would carry either is constructed with just the two ClassDefs
// below; the rest is a documented no-op.
type GDEF struct {
	GlyphClassDef      *ClassDef
	MarkAttachClassDef *ClassDef
}

// ClassOf returns the GDEF glyph class for name, or GlyphClassUnassigned
// if g is nil or name is unlisted.
func (g *GDEF) ClassOf(name string) int {
	if g == nil || g.GlyphClassDef == nil {
		return GlyphClassUnassigned
	}
	return g.GlyphClassDef.Get(name)
}

// MarkAttachClassOf returns name's mark-attachment class, or 0 if g is
// nil, has no MarkAttachClassDef, or name is unlisted.
func (g *GDEF) MarkAttachClassOf(name string) int {
	if g == nil || g.MarkAttachClassDef == nil {
		return 0
	}
	return g.MarkAttachClassDef.Get(name)
}
