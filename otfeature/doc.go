// Package otfeature resolves a (script, langSys) pair against a
// table's feature_state into the ordered list of lookups a stream
// processor must walk (§A.4.6).
package otfeature

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine.feature")
}
