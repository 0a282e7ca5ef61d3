package otlog

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/npillmayer/otengine/otdata"
)

// XMLLogger renders a processing trace as a single XML document, one
// element per narration call, matching the nesting the teacher's
// tracing calls use elsewhere in the module for structured output
// (§D.1): initialSettings, table/featureStates/applicableLookups,
// processing/lookup/subTable, input/output/results each wrapping
// processed/unprocessed glyphRecord lists.
type XMLLogger struct {
	enc *xml.Encoder
}

// NewXMLLogger returns an XMLLogger writing to w. Call LogStart before
// any other method and LogEnd when the trace is complete, then Flush.
func NewXMLLogger(w io.Writer) *XMLLogger {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return &XMLLogger{enc: enc}
}

// Flush writes any buffered output. Call it after LogEnd.
func (l *XMLLogger) Flush() error {
	return l.enc.Flush()
}

func (l *XMLLogger) start(name string, attrs ...xml.Attr) {
	_ = l.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (l *XMLLogger) end(name string) {
	_ = l.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func (l *XMLLogger) LogStart() { l.start("xml") }
func (l *XMLLogger) LogEnd()   { l.end("xml") }

func (l *XMLLogger) LogMainSettings(glyphNames []string, script, langSys otdata.Tag) {
	l.start("initialSettings")
	joined := ""
	for i, n := range glyphNames {
		if i > 0 {
			joined += " "
		}
		joined += n
	}
	l.start("string", attr("value", joined))
	l.end("string")
	l.start("script", attr("value", string(script)))
	l.end("script")
	l.start("langSys", attr("value", string(langSys)))
	l.end("langSys")
	l.end("initialSettings")
}

func (l *XMLLogger) LogTableStart(table *otdata.Table) {
	l.start("table", attr("name", table.Kind.String()))
	l.LogTableFeatureStates(table)
}

func (l *XMLLogger) LogTableEnd() { l.end("table") }

func (l *XMLLogger) LogTableFeatureStates(table *otdata.Table) {
	l.start("featureStates")
	tags := table.Feats.Tags()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	for _, tag := range tags {
		on, _ := table.FeatureState(tag)
		state := "0"
		if on {
			state = "1"
		}
		l.start("feature", attr("name", string(tag)), attr("state", state))
		l.end("feature")
	}
	l.end("featureStates")
}

func (l *XMLLogger) LogApplicableLookups(table *otdata.Table, resolved []otdata.ResolvedLookup) {
	l.start("applicableLookups")
	var run []int
	var last otdata.Tag
	haveRun := false
	flush := func() {
		if haveRun {
			l.logLookupRun(last, run)
		}
	}
	for _, r := range resolved {
		if haveRun && r.FeatureTag != last {
			flush()
			run = nil
		}
		run = append(run, r.LookupIndex)
		last = r.FeatureTag
		haveRun = true
	}
	flush()
	l.end("applicableLookups")
}

func (l *XMLLogger) logLookupRun(tag otdata.Tag, indices []int) {
	joined := ""
	for i, idx := range indices {
		if i > 0 {
			joined += " "
		}
		joined += strconv.Itoa(idx)
	}
	l.start("lookups", attr("feature", string(tag)), attr("indices", joined))
	l.end("lookups")
}

func (l *XMLLogger) LogProcessingStart() { l.start("processing") }
func (l *XMLLogger) LogProcessingEnd()   { l.end("processing") }

func (l *XMLLogger) LogLookupStart(table *otdata.Table, tag otdata.Tag, lookupIndex int) {
	l.start("lookup", attr("feature", string(tag)), attr("index", strconv.Itoa(lookupIndex)))
}

func (l *XMLLogger) LogLookupEnd() { l.end("lookup") }

func (l *XMLLogger) LogSubTableStart(lookupIndex, subtableIndex int, subtableType string) {
	l.start("subTable", attr("index", strconv.Itoa(subtableIndex)), attr("type", subtableType))
}

func (l *XMLLogger) LogSubTableEnd() { l.end("subTable") }

func (l *XMLLogger) logGlyphRecords(records []otdata.GlyphRecord) {
	for _, r := range records {
		l.start("glyphRecord",
			attr("name", r.GlyphName),
			attr("xPlacement", fmt.Sprint(r.XPlacement)),
			attr("yPlacement", fmt.Sprint(r.YPlacement)),
			attr("xAdvance", fmt.Sprint(r.XAdvance)),
			attr("yAdvance", fmt.Sprint(r.YAdvance)),
		)
		l.end("glyphRecord")
	}
}

func (l *XMLLogger) logGlyphSplit(wrapper string, processed, remaining []otdata.GlyphRecord) {
	l.start(wrapper)
	l.start("processed")
	l.logGlyphRecords(processed)
	l.end("processed")
	l.start("unprocessed")
	l.logGlyphRecords(remaining)
	l.end("unprocessed")
	l.end(wrapper)
}

func (l *XMLLogger) LogInput(processed, remaining []otdata.GlyphRecord) {
	l.logGlyphSplit("input", processed, remaining)
}

func (l *XMLLogger) LogOutput(processed, remaining []otdata.GlyphRecord) {
	l.logGlyphSplit("output", processed, remaining)
}

func (l *XMLLogger) LogResults(processed []otdata.GlyphRecord) {
	l.start("results")
	l.logGlyphRecords(processed)
	l.end("results")
}

var _ Logger = (*XMLLogger)(nil)
