package otdata

import "sync"

// Kind distinguishes a GSUB table from a GPOS table — the only
// difference in their default feature-state enumeration (§A.4.6).
type Kind int

const (
	KindGSUB Kind = iota
	KindGPOS
)

func (k Kind) String() string {
	if k == KindGPOS {
		return "GPOS"
	}
	return "GSUB"
}

// ResolvedLookup is one entry of a feature resolver's output: a feature
// tag paired with the lookup it selected, carried alongside the lookup
// index so callers can report ordering without re-deriving it.
type ResolvedLookup struct {
	FeatureTag  Tag
	LookupIndex int
	Lookup      Lookup
}

type cacheKey struct {
	script  Tag
	langSys Tag
}

// Table is a GSUB or GPOS table: its ScriptList, FeatureList, and
// LookupList, plus the two pieces of mutable state §A.3/§A.9 call out —
// the per-tag feature_state map and the applicable-feature cache keyed
// by (script, langSys). Both are guarded by a lock so concurrent
// read-only Process calls are safe as long as no caller mutates
// feature_state concurrently with them (§A.5).
type Table struct {
	Kind    Kind
	Scripts *ScriptList
	Feats   *FeatureList
	Lookups *LookupList

	mu           sync.RWMutex
	featureState map[Tag]bool
	cache        map[cacheKey][]ResolvedLookup
}

// NewTable builds a Table, seeding feature_state with the closed
// default-on enumeration for kind (§A.4.6): every default-on tag starts
// true, every other feature tag present in feats starts false.
func NewTable(kind Kind, scripts *ScriptList, feats *FeatureList, lookups *LookupList) *Table {
	t := &Table{
		Kind:         kind,
		Scripts:      scripts,
		Feats:        feats,
		Lookups:      lookups,
		featureState: make(map[Tag]bool),
		cache:        make(map[cacheKey][]ResolvedLookup),
	}
	defaults := defaultGSUBFeatures
	if kind == KindGPOS {
		defaults = defaultGPOSFeatures
	}
	on := make(map[Tag]bool, len(defaults))
	for _, tag := range defaults {
		on[tag] = true
	}
	for _, tag := range feats.Tags() {
		t.featureState[tag] = on[tag]
	}
	return t
}

// HasFeature reports whether tag is declared anywhere in this table's
// FeatureList.
func (t *Table) HasFeature(tag Tag) bool {
	_, ok := t.featureStateLocked(tag)
	return ok
}

func (t *Table) featureStateLocked(tag Tag) (bool, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.featureState[tag]
	return v, ok
}

// FeatureState returns tag's current on/off state. ok is false when tag
// is not declared in this table's FeatureList.
func (t *Table) FeatureState(tag Tag) (on bool, ok bool) {
	return t.featureStateLocked(tag)
}

// SetFeatureState sets tag's on/off state and invalidates the
// applicable-feature cache, since cached results were built by
// filtering on the feature_state snapshot in effect at resolution time
// (§A.4.6 step 3). The core spec text describes the cache as
// "invalidated only when the table is replaced"; in practice a
// feature-state flip is indistinguishable from a fresh table for
// caching purposes, so this engine clears the cache here rather than
// ask every caller to remember to do it.
func (t *Table) SetFeatureState(tag Tag, on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.featureState[tag] = on
	t.cache = make(map[cacheKey][]ResolvedLookup)
}

// CachedLookups returns a previously resolved (script, langSys) result,
// if present.
func (t *Table) CachedLookups(script, langSys Tag) ([]ResolvedLookup, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.cache[cacheKey{script, langSys}]
	return v, ok
}

// StoreCachedLookups memoizes a resolver result for (script, langSys).
func (t *Table) StoreCachedLookups(script, langSys Tag, result []ResolvedLookup) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache[cacheKey{script, langSys}] = result
}

// LookupAt implements LookupDispatcher by delegating to the table's
// LookupList.
func (t *Table) LookupAt(index int) (Lookup, bool) {
	return t.Lookups.LookupAt(index)
}
