// Package otengine is the top-level entry point: Engine ties a CMAP, an
// optional GDEF, and optional GSUB/GPOS tables together and drives text
// or glyph input through feature resolution and per-lookup stream
// processing (§A.4.7, §A.6).
package otengine

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine")
}
