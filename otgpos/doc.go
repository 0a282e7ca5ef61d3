// Package otgpos implements the nine GPOS lookup subtable evaluators
// and their format variants (§A.4.4). Identities never change here,
// only placement/advance; contextual and chaining-contextual formats
// build on the shared matching core in otctx, exactly as otgsub does.
package otgpos

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine.gpos")
}
