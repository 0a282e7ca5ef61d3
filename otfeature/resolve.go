package otfeature

import (
	"sort"

	"github.com/npillmayer/otengine/otdata"
)

// pending is one (tag, lookup_index) pair before sorting, carrying its
// discovery order so the final sort can break lookup_index ties by
// insertion order (§A.4.6 step 5).
type pending struct {
	tag    otdata.Tag
	lookup int
	order  int
}

// Resolve implements §A.4.6's five-step feature resolution algorithm:
// script lookup with DFLT fallback, langSys resolution, feature_state
// filtering, expansion to (tag, lookup_index) pairs, and a stable sort
// by ascending lookup_index. Results are memoized on table, keyed by
// (script, langSys); a cache hit skips all five steps.
func Resolve(table *otdata.Table, script, langSys otdata.Tag) []otdata.ResolvedLookup {
	if cached, ok := table.CachedLookups(script, langSys); ok {
		return cached
	}

	sc, ok := table.Scripts.Lookup(script)
	if !ok {
		tracer().Infof("otfeature: script %q not found, no DFLT fallback either", script)
		table.StoreCachedLookups(script, langSys, nil)
		return nil
	}
	ls := sc.Resolve(langSys)

	indices := make([]int, 0, len(ls.FeatureIndex)+1)
	seen := make(map[int]bool, len(ls.FeatureIndex)+1)
	if ls.HasRequiredFeature() {
		indices = append(indices, ls.ReqFeatureIndex)
		seen[ls.ReqFeatureIndex] = true
	}
	for _, idx := range ls.FeatureIndex {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}

	var pairs []pending
	for _, idx := range indices {
		rec, ok := table.Feats.At(idx)
		if !ok {
			tracer().Infof("otfeature: feature index %d out of range", idx)
			continue
		}
		on, known := table.FeatureState(rec.Tag)
		if !known || !on {
			continue
		}
		for _, lookupIdx := range rec.LookupListIndex {
			pairs = append(pairs, pending{tag: rec.Tag, lookup: lookupIdx, order: len(pairs)})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].lookup != pairs[j].lookup {
			return pairs[i].lookup < pairs[j].lookup
		}
		return pairs[i].order < pairs[j].order
	})

	result := make([]otdata.ResolvedLookup, 0, len(pairs))
	for _, p := range pairs {
		lookup, found := table.LookupAt(p.lookup)
		if !found {
			tracer().Infof("otfeature: lookup_list_index %d out of range for tag %s", p.lookup, p.tag)
			continue
		}
		result = append(result, otdata.ResolvedLookup{FeatureTag: p.tag, LookupIndex: p.lookup, Lookup: lookup})
	}

	table.StoreCachedLookups(script, langSys, result)
	return result
}
