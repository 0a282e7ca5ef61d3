// Package otlog defines the structured processing-trace Logger
// interface the stream processor drives as it walks scripts, features,
// lookups and subtables, and an XMLLogger implementation that renders
// the trace as a single XML document (§A.6, §D.1).
package otlog

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine.log")
}
