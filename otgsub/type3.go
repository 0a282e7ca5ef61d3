package otgsub

import (
	"math/rand/v2"

	"github.com/npillmayer/otengine/otdata"
)

// AlternateSubstitution is GSUB lookup type 3: publishes an alternate
// set as the head record's Alternates, with the same
// identity-keyed reset discipline as aalt accumulation. Under the rand
// feature it instead picks uniformly at random and rewrites the
// identity immediately (§A.4.3 type 3).
type AlternateSubstitution struct {
	otdata.FlagFilter
	Coverage     *otdata.Coverage
	AlternateSet [][]string
	Rand         *rand.Rand
}

var _ otdata.Evaluator = (*AlternateSubstitution)(nil)
var _ otdata.RandSeedable = (*AlternateSubstitution)(nil)

// SetRand implements otdata.RandSeedable, letting an Engine built with
// a configured random source seed every AlternateSubstitution in a
// table without the caller threading one through by hand.
func (a *AlternateSubstitution) SetRand(r *rand.Rand) { a.Rand = r }

// HasRand implements otdata.RandSeedable.
func (a *AlternateSubstitution) HasRand() bool { return a.Rand != nil }

// NewAlternateSubstitution builds an AlternateSubstitution evaluator.
// rng is the injected random source consulted only under the rand
// feature tag (§A.9). Pass a seeded *rand.Rand in tests, never rely on
// a package-global generator.
func NewAlternateSubstitution(flag otdata.LookupFlag, gdef *otdata.GDEF, coverage *otdata.Coverage, alternateSet [][]string, rng *rand.Rand) *AlternateSubstitution {
	cp := make([][]string, len(alternateSet))
	for i, s := range alternateSet {
		cp[i] = append([]string(nil), s...)
	}
	return &AlternateSubstitution{
		FlagFilter:   otdata.FlagFilter{Flag: flag, GDEF: gdef},
		Coverage:     coverage,
		AlternateSet: cp,
		Rand:         rng,
	}
}

func (a *AlternateSubstitution) Process(processed, remaining []otdata.GlyphRecord, featureTag otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 {
		return processed, remaining, false
	}
	head := remaining[0]
	if !a.Coverage.Contains(head.GlyphName) || a.Skip(head.GlyphName) {
		return processed, remaining, false
	}
	alternates := a.AlternateSet[a.Coverage.Index(head.GlyphName)]

	rec := head
	if featureTag == otdata.RAND {
		rng := a.Rand
		if rng == nil {
			rng = rand.New(rand.NewPCG(1, 1))
		}
		rec.SaveState()
		rec.GlyphName = alternates[rng.IntN(len(alternates))]
	} else {
		rec.ResetAlternatesIfStale(rec.GlyphName)
		rec.Alternates = append(rec.Alternates, alternates...)
	}

	newProcessed := append(append([]otdata.GlyphRecord{}, processed...), rec)
	return newProcessed, remaining[1:], true
}
