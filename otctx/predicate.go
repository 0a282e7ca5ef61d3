package otctx

import "github.com/npillmayer/otengine/otdata"

// Predicate decides whether a single glyph name satisfies one position
// of a backtrack, input, or lookahead sequence. The three constructors
// below are the only three ways §A.4.5 allows one to be built — one per
// contextual subtable format.
type Predicate func(glyphName string) bool

// GlyphPredicate builds a format-1 element predicate: exact glyph-name
// equality.
func GlyphPredicate(name string) Predicate {
	return func(g string) bool { return g == name }
}

// ClassPredicate builds a format-2 element predicate: ClassDef
// membership. Chaining format 2 gives backtrack, input, and lookahead
// each their own ClassDef, so the classDef this closes over varies per
// sequence, not just per subtable.
func ClassPredicate(classDef *otdata.ClassDef, class int) Predicate {
	return func(g string) bool { return classDef.Get(g) == class }
}

// CoveragePredicate builds a format-3 element predicate: Coverage
// membership.
func CoveragePredicate(cov *otdata.Coverage) Predicate {
	return func(g string) bool { return cov.Contains(g) }
}

// GlyphSequence builds the format-1 predicate list for an entire
// backtrack, input, or lookahead sequence.
func GlyphSequence(names []string) []Predicate {
	preds := make([]Predicate, len(names))
	for i, n := range names {
		preds[i] = GlyphPredicate(n)
	}
	return preds
}

// ClassSequence builds the format-2 predicate list for an entire
// sequence against one ClassDef.
func ClassSequence(classDef *otdata.ClassDef, classes []int) []Predicate {
	preds := make([]Predicate, len(classes))
	for i, c := range classes {
		preds[i] = ClassPredicate(classDef, c)
	}
	return preds
}

// CoverageSequence builds the format-3 predicate list for an entire
// sequence of per-position coverage tables.
func CoverageSequence(covs []*otdata.Coverage) []Predicate {
	preds := make([]Predicate, len(covs))
	for i, c := range covs {
		preds[i] = CoveragePredicate(c)
	}
	return preds
}
