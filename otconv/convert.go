package otconv

import "github.com/npillmayer/otengine/otdata"

// StringToGlyphNames maps each rune of s through cmap, substituting
// fallbackGlyph for runes with no CMAP entry. An empty fallbackGlyph
// drops such runes from the result entirely, mirroring the source's
// "fallbackGlyph is not None" guard.
func StringToGlyphNames(s string, cmap otdata.CMAP, fallbackGlyph string) []string {
	names := make([]string, 0, len(s))
	for _, r := range s {
		if name, ok := cmap.Glyph(r); ok {
			names = append(names, name)
			continue
		}
		if fallbackGlyph != "" {
			names = append(names, fallbackGlyph)
		}
	}
	return names
}

// StringToGlyphRecords is StringToGlyphNames followed by
// GlyphListToGlyphRecords.
func StringToGlyphRecords(s string, cmap otdata.CMAP, fallbackGlyph string) []otdata.GlyphRecord {
	return GlyphListToGlyphRecords(StringToGlyphNames(s, cmap, fallbackGlyph))
}

// GlyphListToGlyphRecords wraps each glyph name in a fresh GlyphRecord
// with all placement/advance fields zeroed.
func GlyphListToGlyphRecords(glyphNames []string) []otdata.GlyphRecord {
	records := make([]otdata.GlyphRecord, len(glyphNames))
	for i, name := range glyphNames {
		records[i] = *otdata.NewGlyphRecord(name)
	}
	return records
}

// GlyphRecordsToGlyphNames extracts the current identity of every
// record, discarding placement/advance/history.
func GlyphRecordsToGlyphNames(records []otdata.GlyphRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.GlyphName
	}
	return names
}
