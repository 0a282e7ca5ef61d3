package otgpos

import "github.com/npillmayer/otengine/otdata"

// Extension is GPOS lookup type 9: holds an inner lookup type and
// subtable, transparently delegating Process, mirroring
// otgsub.Extension (§A.4.4 type 9).
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
