package otlog

import "github.com/npillmayer/otengine/otdata"

// Logger is the processing-trace interface the stream processor drives
// (§A.6). Every method is a narration hook: callers that don't want a
// trace pass NopLogger{}.
type Logger interface {
	LogStart()
	LogEnd()
	LogMainSettings(glyphNames []string, script, langSys otdata.Tag)

	LogTableStart(table *otdata.Table)
	LogTableEnd()
	LogTableFeatureStates(table *otdata.Table)
	LogApplicableLookups(table *otdata.Table, resolved []otdata.ResolvedLookup)

	LogProcessingStart()
	LogProcessingEnd()

	LogLookupStart(table *otdata.Table, tag otdata.Tag, lookupIndex int)
	LogLookupEnd()
	LogSubTableStart(lookupIndex, subtableIndex int, subtableType string)
	LogSubTableEnd()

	LogInput(processed, remaining []otdata.GlyphRecord)
	LogOutput(processed, remaining []otdata.GlyphRecord)
	LogResults(processed []otdata.GlyphRecord)
}

// NopLogger discards every call. It is the zero-cost default a caller
// gets when it doesn't ask for a trace (§B.3's WithLogger option).
type NopLogger struct{}

func (NopLogger) LogStart() {}
func (NopLogger) LogEnd()   {}
func (NopLogger) LogMainSettings([]string, otdata.Tag, otdata.Tag) {}

func (NopLogger) LogTableStart(*otdata.Table)                             {}
func (NopLogger) LogTableEnd()                                            {}
func (NopLogger) LogTableFeatureStates(*otdata.Table)                     {}
func (NopLogger) LogApplicableLookups(*otdata.Table, []otdata.ResolvedLookup) {}

func (NopLogger) LogProcessingStart() {}
func (NopLogger) LogProcessingEnd()   {}

func (NopLogger) LogLookupStart(*otdata.Table, otdata.Tag, int) {}
func (NopLogger) LogLookupEnd()                                 {}
func (NopLogger) LogSubTableStart(int, int, string)             {}
func (NopLogger) LogSubTableEnd()                               {}

func (NopLogger) LogInput([]otdata.GlyphRecord, []otdata.GlyphRecord)   {}
func (NopLogger) LogOutput([]otdata.GlyphRecord, []otdata.GlyphRecord)  {}
func (NopLogger) LogResults([]otdata.GlyphRecord)                      {}

var _ Logger = NopLogger{}
