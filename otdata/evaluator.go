package otdata

import "math/rand/v2"

// Evaluator is the single method every concrete lookup subtable
// implements, regardless of GSUB/GPOS or format (§A.9). It is handed
// the processed prefix and the remaining suffix of the glyph stream,
// attempts one action at the head of remaining, and reports whether it
// performed one.
//
// Only remaining[0] is ever examined for initial eligibility; a
// subtable that finds itself unable to act — out of coverage,
// flag-covered, context not matched — returns performed=false and its
// inputs unchanged. Implementations that recurse into other lookups
// (contextual, chaining contextual, extension) hold a borrowed
// LookupDispatcher set when they are attached to their owning table,
// per the arena-and-index back-reference strategy in §A.9 — Process's
// signature itself carries no table reference.
type Evaluator interface {
	Process(processed, remaining []GlyphRecord, featureTag Tag) (newProcessed, newRemaining []GlyphRecord, performed bool)
}

// LookupDispatcher is the borrowed capability a contextual, chaining
// contextual, or extension subtable needs to recurse: resolve a lookup
// index to the lookup it names. Table implements it; subtable types
// that need it are attached via SetDispatcher when the LookupList
// holding them is built, never by holding a pointer to Table itself, keeping otdata
// free of an import cycle back to the packages that implement those
// subtable types.
type LookupDispatcher interface {
	LookupAt(index int) (Lookup, bool)
}

// Dispatched is implemented by subtable types that need a
// LookupDispatcher to recurse into nested lookups (contextual, chaining
// contextual, extension). NewLookupList calls SetDispatcher on every
// subtable implementing this interface.
type Dispatched interface {
	SetDispatcher(d LookupDispatcher)
}

// RandSeedable is implemented by subtable types that consult a random
// source under the rand feature tag (GSUB type 3's alternate pick,
// §A.9). An Engine built with WithRandSource walks a table's lookups
// and calls SetRand on every subtable implementing this interface that
// doesn't already carry one, so callers don't have to thread a *rand.Rand
// through their own table construction by hand.
type RandSeedable interface {
	SetRand(r *rand.Rand)
	HasRand() bool
}

// Lookup is an ordered, non-empty list of subtables sharing one type
// and flag (§A.3). Evaluation stops at the first subtable that performs
// an action.
type Lookup struct {
	Type      int
	Flag      LookupFlag
	Subtables []Evaluator
}

// Process tries each subtable in order, returning the first one that
// performs an action. If none do, it reports performed=false and
// returns its inputs unchanged.
func (l Lookup) Process(processed, remaining []GlyphRecord, featureTag Tag) ([]GlyphRecord, []GlyphRecord, bool) {
	for _, sub := range l.Subtables {
		if p, r, ok := sub.Process(processed, remaining, featureTag); ok {
			return p, r, true
		}
	}
	return processed, remaining, false
}

// LookupList is an indexed, owned collection of Lookups. It implements
// LookupDispatcher.
type LookupList struct {
	lookups []Lookup
}

// NewLookupList builds a LookupList over lookups and attaches itself as
// the LookupDispatcher of every subtable that needs one.
func NewLookupList(lookups []Lookup) *LookupList {
	ll := &LookupList{lookups: lookups}
	for _, lk := range ll.lookups {
		for _, sub := range lk.Subtables {
			if d, ok := sub.(Dispatched); ok {
				d.SetDispatcher(ll)
			}
		}
	}
	return ll
}

// LookupAt returns the lookup at index, implementing LookupDispatcher.
func (ll *LookupList) LookupAt(index int) (Lookup, bool) {
	if ll == nil || index < 0 || index >= len(ll.lookups) {
		return Lookup{}, false
	}
	return ll.lookups[index], true
}

// Len returns the number of lookups in the list.
func (ll *LookupList) Len() int {
	if ll == nil {
		return 0
	}
	return len(ll.lookups)
}
