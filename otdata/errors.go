package otdata

import "fmt"

// ErrorKind classifies the failure modes named in §A.7. It plays the
// role the teacher's ot.ErrorSeverity enum plays for font-parsing
// errors, but classifies layout-processing errors instead.
type ErrorKind int

const (
	// CmapMissing means no acceptable CMAP subtable was found among the
	// preferred (3,10), (0,3), (3,1) platform/encoding pairs.
	CmapMissing ErrorKind = iota
	// NameExtractionFailed is reserved for an external collaborator's
	// concern (name-table extraction); the core never raises it.
	NameExtractionFailed
	// FeatureStateInconsistent means FeatureState(tag) found GSUB and
	// GPOS disagreeing about whether tag is on.
	FeatureStateInconsistent
	// FeatureAbsent means FeatureState(tag) was called for a tag present
	// in neither table.
	FeatureAbsent
	// UnimplementedCasingContext means a special-casing context this
	// engine does not resolve (Not_After_I, Not_After_Soft_Dotted,
	// Not_More_Above, Before_Dot) was encountered.
	UnimplementedCasingContext
	// MalformedTable means a referenced index fell out of range, or a
	// subtable declared an unrecognized format. Engine.Process also
	// returns it for input that is neither a string nor a []string.
	MalformedTable
)

// String renders an ErrorKind the way the teacher's
// ErrorSeverity.String() renders font-parsing severities.
func (k ErrorKind) String() string {
	switch k {
	case CmapMissing:
		return "CmapMissing"
	case NameExtractionFailed:
		return "NameExtractionFailed"
	case FeatureStateInconsistent:
		return "FeatureStateInconsistent"
	case FeatureAbsent:
		return "FeatureAbsent"
	case UnimplementedCasingContext:
		return "UnimplementedCasingContext"
	case MalformedTable:
		return "MalformedTable"
	default:
		return "ErrorKind(?)"
	}
}

// Error is the typed error value carried by every failure this module
// produces, mirroring the teacher's FontError: a kind, a human message,
// and optional context fields callers may inspect without parsing the
// message text.
type Error struct {
	Kind    ErrorKind
	Message string
	Tag     Tag // feature/script tag involved, if any
}

func (e *Error) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("otdata: %s: %s (tag=%q)", e.Kind, e.Message, e.Tag)
	}
	return fmt.Sprintf("otdata: %s: %s", e.Kind, e.Message)
}

// NewError builds an *Error of the given kind. Use errors.As to recover
// the kind from a wrapped error chain.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithTag returns a copy of e carrying tag as context.
func (e *Error) WithTag(tag Tag) *Error {
	cp := *e
	cp.Tag = tag
	return &cp
}

// Is supports errors.Is comparisons against sentinel *Error values that
// only differ by Message/Tag — two *Error values are equivalent for
// matching purposes when their Kind matches.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
