package otengine

import (
	"math/rand/v2"
	"sort"

	"github.com/npillmayer/otengine/otdata"
)

// Engine ties a font's CMAP and optional GDEF/GSUB/GPOS tables together
// (§A.2). It is the caller's unit of construction; Process is called
// against it, once per run of input.
type Engine struct {
	CMAP        otdata.CMAP
	ReverseCMAP otdata.ReverseCMAP
	GDEF        *otdata.GDEF
	GSUB        *otdata.Table
	GPOS        *otdata.Table

	Config Config
}

// NewEngine builds an Engine from its tables. cmap/reverseCMAP may be
// nil only if the caller never passes raw text to Process (glyph-name
// input doesn't need them). opts seed the Engine's default Config,
// consulted by every Process call that doesn't override a setting
// itself.
func NewEngine(cmap otdata.CMAP, reverseCMAP otdata.ReverseCMAP, gdef *otdata.GDEF, gsub, gpos *otdata.Table, opts ...Option) *Engine {
	e := &Engine{
		CMAP:        cmap,
		ReverseCMAP: reverseCMAP,
		GDEF:        gdef,
		GSUB:        gsub,
		GPOS:        gpos,
		Config:      newConfig(opts),
	}
	for tag, on := range e.Config.FeatureOverrides {
		if e.GSUB != nil && e.GSUB.HasFeature(tag) {
			e.GSUB.SetFeatureState(tag, on)
		}
		if e.GPOS != nil && e.GPOS.HasFeature(tag) {
			e.GPOS.SetFeatureState(tag, on)
		}
	}
	if e.Config.RandSource != nil {
		seedRand(e.GSUB, e.Config.RandSource)
		seedRand(e.GPOS, e.Config.RandSource)
	}
	return e
}

// seedRand walks table's lookups and seeds every subtable implementing
// otdata.RandSeedable that doesn't already carry a random source.
func seedRand(table *otdata.Table, r *rand.Rand) {
	if table == nil {
		return
	}
	for i := 0; ; i++ {
		lookup, ok := table.LookupAt(i)
		if !ok {
			return
		}
		for _, sub := range lookup.Subtables {
			if rs, ok := sub.(otdata.RandSeedable); ok && !rs.HasRand() {
				rs.SetRand(r)
			}
		}
	}
}

// ScriptList returns the sorted union of GSUB's and GPOS's script tags
// (§A.6, §D.5).
func (e *Engine) ScriptList() []otdata.Tag {
	set := map[otdata.Tag]bool{}
	if e.GSUB != nil {
		for _, t := range e.GSUB.Scripts.Tags() {
			set[t] = true
		}
	}
	if e.GPOS != nil {
		for _, t := range e.GPOS.Scripts.Tags() {
			set[t] = true
		}
	}
	return sortedTags(set)
}

// LanguageList returns the sorted union of language-system tags
// declared under scriptTag in GSUB and GPOS.
func (e *Engine) LanguageList(scriptTag otdata.Tag) []otdata.Tag {
	set := map[otdata.Tag]bool{}
	if e.GSUB != nil {
		for _, t := range e.GSUB.Scripts.LanguageSystems(scriptTag) {
			set[t] = true
		}
	}
	if e.GPOS != nil {
		for _, t := range e.GPOS.Scripts.LanguageSystems(scriptTag) {
			set[t] = true
		}
	}
	return sortedTags(set)
}

// FeatureList returns the sorted union of GSUB's and GPOS's declared
// feature tags.
func (e *Engine) FeatureList() []otdata.Tag {
	set := map[otdata.Tag]bool{}
	if e.GSUB != nil {
		for _, t := range e.GSUB.Feats.Tags() {
			set[t] = true
		}
	}
	if e.GPOS != nil {
		for _, t := range e.GPOS.Feats.Tags() {
			set[t] = true
		}
	}
	return sortedTags(set)
}

// FeatureState returns tag's current state, consulting whichever of
// GSUB/GPOS declares it. It returns a *otdata.Error of kind
// FeatureStateInconsistent if the two tables disagree, and
// FeatureAbsent if neither declares tag (§A.7).
func (e *Engine) FeatureState(tag otdata.Tag) (bool, error) {
	var gsubState, gposState *bool
	if e.GSUB != nil {
		if on, ok := e.GSUB.FeatureState(tag); ok {
			gsubState = &on
		}
	}
	if e.GPOS != nil {
		if on, ok := e.GPOS.FeatureState(tag); ok {
			gposState = &on
		}
	}
	switch {
	case gsubState != nil && gposState != nil:
		if *gsubState != *gposState {
			return false, otdata.NewError(otdata.FeatureStateInconsistent, "GSUB and GPOS disagree").WithTag(tag)
		}
		return *gsubState, nil
	case gsubState != nil:
		return *gsubState, nil
	case gposState != nil:
		return *gposState, nil
	default:
		return false, otdata.NewError(otdata.FeatureAbsent, "feature not declared in GSUB or GPOS").WithTag(tag)
	}
}

// SetFeatureState applies state to tag in whichever of GSUB/GPOS
// declares it (both, if both do).
func (e *Engine) SetFeatureState(tag otdata.Tag, on bool) {
	if e.GSUB != nil && e.GSUB.HasFeature(tag) {
		e.GSUB.SetFeatureState(tag, on)
	}
	if e.GPOS != nil && e.GPOS.HasFeature(tag) {
		e.GPOS.SetFeatureState(tag, on)
	}
}

func sortedTags(set map[otdata.Tag]bool) []otdata.Tag {
	tags := make([]otdata.Tag, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
