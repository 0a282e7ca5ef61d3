// Package otgsub implements the eight GSUB lookup subtable evaluators
// and their format variants (§A.4.3). Every concrete type implements
// otdata.Evaluator; contextual and chaining-contextual formats build on
// the shared matching core in otctx rather than re-implementing
// backtrack/input/lookahead walking themselves.
package otgsub

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine.gsub")
}
