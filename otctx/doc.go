// Package otctx implements the contextual and chaining-contextual
// matching core shared by GSUB types 5/6 and GPOS types 7/8 (§A.4.5).
// It is format-agnostic: callers build a MatchSpec out of Predicates
// that already encode whether a format-1 (glyph), format-2 (class), or
// format-3 (coverage) test applies at each position, and otctx only
// ever sees "does this glyph satisfy the next predicate".
package otctx

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine.ctx")
}
