package otdata

// LookupFlag packs the five independent predicates a Lookup derives
// from its 16-bit flag value (§A.3): direction, three ignore-class
// bits, and an 8-bit mark-attachment class (zero means unused).
type LookupFlag struct {
	RightToLeft       bool
	IgnoreBaseGlyphs  bool
	IgnoreLigatures   bool
	IgnoreMarks       bool
	MarkAttachClass   uint8
	UseMarkFilterSet  bool // recognized, not resolved: mark-glyph-set filtering is out of scope
}

// CoversGlyph decides whether a glyph is transparent to a lookup with
// this flag, given the font's GDEF (§A.4.2). "Covers" here means the
// flag actively hides the glyph from matching and mutation — the same
// sense lookupList.py's LookupFlag.coversGlyph uses, not the unrelated
// "Coverage" table sense.
func (f LookupFlag) CoversGlyph(name string, gdef *GDEF) bool {
	if gdef == nil {
		return false
	}
	class := gdef.ClassOf(name)
	if class == GlyphClassUnassigned {
		return false
	}
	switch class {
	case GlyphClassBase:
		if f.IgnoreBaseGlyphs {
			return true
		}
	case GlyphClassLigature:
		if f.IgnoreLigatures {
			return true
		}
	case GlyphClassMark:
		if f.IgnoreMarks {
			return true
		}
		if f.MarkAttachClass != 0 {
			if gdef.MarkAttachClassDef == nil {
				return false
			}
			return uint8(gdef.MarkAttachClassOf(name)) != f.MarkAttachClass
		}
	}
	return false
}

// FlagFilter bundles a lookup's flag with the table's GDEF, the pair
// every subtable evaluator needs to decide whether a glyph is
// transparent to it (§A.4.2). Concrete subtable types embed one instead
// of reaching back through a borrowed lookup/table pointer for
// something this cheap to copy.
type FlagFilter struct {
	Flag LookupFlag
	GDEF *GDEF
}

// Skip reports whether name is flag-covered (transparent) under this
// filter.
func (f FlagFilter) Skip(name string) bool {
	return f.Flag.CoversGlyph(name, f.GDEF)
}

// LookupFlagFromUint16 decodes a raw 16-bit OpenType lookup flag value
// into its component predicates, per the OpenType LookupFlag bit
// layout: bit 0 rightToLeft, bit 1 ignoreBaseGlyphs, bit 2
// ignoreLigatures, bit 3 ignoreMarks, bit 4 useMarkFilteringSet, bits
// 8-15 markAttachmentClass.
func LookupFlagFromUint16(raw uint16) LookupFlag {
	return LookupFlag{
		RightToLeft:      raw&0x0001 != 0,
		IgnoreBaseGlyphs: raw&0x0002 != 0,
		IgnoreLigatures:  raw&0x0004 != 0,
		IgnoreMarks:      raw&0x0008 != 0,
		UseMarkFilterSet: raw&0x0010 != 0,
		MarkAttachClass:  uint8(raw >> 8),
	}
}
