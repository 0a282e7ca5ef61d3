// Package otconv holds the small conversions between raw Unicode text,
// glyph-name lists, and GlyphRecord streams that sit at the seam
// between an Engine's input surface and its processing pipeline
// (§D.4). They're exposed independently so a caller batching many
// Process calls over the same table can run conversion once.
package otconv

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine.conv")
}
