// Package otdata holds the pre-parsed, in-memory representation of the
// OpenType layout tables (GSUB, GPOS, GDEF) that the rest of otengine
// operates on.
//
// otdata never touches a font file. Callers are expected to have already
// decoded the binary SFNT container elsewhere and to construct these
// structures directly (or via a loader of their own). This mirrors the way
// the reference compositor implementation receives already-parsed
// fontTools objects rather than raw table bytes.
package otdata

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine.data")
}
