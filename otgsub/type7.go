package otgsub

import "github.com/npillmayer/otengine/otdata"

// Extension is GSUB lookup type 7: holds an inner lookup type and
// subtable, transparently delegating Process (§A.4.3 type 7). It
// forwards SetDispatcher to the inner subtable when the inner subtable
// itself needs one (contextual/chaining types), so the arena-and-index
// wiring reaches through the extension unchanged.
type Extension struct {
	InnerType int
	Inner     otdata.Evaluator
}

var (
	_ otdata.Evaluator  = (*Extension)(nil)
	_ otdata.Dispatched = (*Extension)(nil)
)

func NewExtension(innerType int, inner otdata.Evaluator) *Extension {
	return &Extension{InnerType: innerType, Inner: inner}
}

func (e *Extension) SetDispatcher(d otdata.LookupDispatcher) {
	if inner, ok := e.Inner.(otdata.Dispatched); ok {
		inner.SetDispatcher(d)
	}
}

func (e *Extension) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	return e.Inner.Process(processed, remaining, featureTag)
}
