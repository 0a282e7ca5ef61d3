// Package ottext implements the Unicode-aware text helpers the engine
// consumes: a closed UAX #29 word-boundary subset (§A.4.8) used for
// Arabic-style init/medi/fina/isol gating and Greek Final_Sigma casing,
// and locale-sensitive case conversion.
package ottext

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otengine.text")
}
