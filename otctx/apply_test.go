package otctx_test

import (
	"testing"

	"github.com/npillmayer/otengine/otctx"
	"github.com/npillmayer/otengine/otdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renameEvaluator is a minimal otdata.Evaluator standing in for a type-1
// single substitution, used to exercise ApplyMatch's recursion without
// importing otgsub (which itself depends on otctx).
type renameEvaluator struct {
	from, to string
}

func (r renameEvaluator) Process(processed, remaining []otdata.GlyphRecord, _ otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) == 0 || remaining[0].GlyphName != r.from {
		return processed, remaining, false
	}
	g := remaining[0]
	g.SaveState()
	g.GlyphName = r.to
	newRemaining := append([]otdata.GlyphRecord{g}, remaining[1:]...)
	return processed, newRemaining, true
}

// shrinkEvaluator merges the first two glyphs of remaining into one,
// standing in for a ligature substitution, to exercise index remapping.
type shrinkEvaluator struct{ to string }

func (s shrinkEvaluator) Process(processed, remaining []otdata.GlyphRecord, _ otdata.Tag) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	if len(remaining) < 2 {
		return processed, remaining, false
	}
	merged := *otdata.NewGlyphRecord(s.to)
	newRemaining := append([]otdata.GlyphRecord{merged}, remaining[2:]...)
	return processed, newRemaining, true
}

func TestApplyMatchNoActionsMovesSpanToProcessed(t *testing.T) {
	processed := recs()
	remaining := recs("A", "space", "B", "tail")
	out, rest, ok := otctx.ApplyMatch(processed, remaining, []int{0, 1, 2}, nil, nil, "")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "space", "B"}, names(out))
	assert.Equal(t, []string{"tail"}, names(rest))
}

type fakeDispatcher struct {
	lookups map[int]otdata.Lookup
}

func (d fakeDispatcher) LookupAt(i int) (otdata.Lookup, bool) {
	lk, ok := d.lookups[i]
	return lk, ok
}

func TestApplyMatchSingleAction(t *testing.T) {
	remaining := recs("A", "space", "B", "tail")
	dispatcher := fakeDispatcher{lookups: map[int]otdata.Lookup{
		0: {Type: 1, Subtables: []otdata.Evaluator{renameEvaluator{from: "A", to: "A.alt"}}},
	}}
	actions := []otctx.ActionRecord{{SequenceIndex: 0, LookupListIndex: 0}}

	out, rest, ok := otctx.ApplyMatch(nil, remaining, []int{0, 1, 2}, actions, dispatcher, "")
	require.True(t, ok)
	assert.Equal(t, []string{"A.alt", "space", "B"}, names(out))
	assert.Equal(t, []string{"tail"}, names(rest))
}

func TestApplyMatchRemapsIndexesAfterShrink(t *testing.T) {
	// matched positions 0,1,2,3 ("f","f","i","x"); an action at
	// sequence_index 0 merges positions 0-1 into one ligature glyph,
	// shifting every later matched position left by one.
	remaining := recs("f", "f", "i", "x", "tail")
	dispatcher := fakeDispatcher{lookups: map[int]otdata.Lookup{
		0: {Type: 4, Subtables: []otdata.Evaluator{shrinkEvaluator{to: "ff"}}},
		1: {Type: 1, Subtables: []otdata.Evaluator{renameEvaluator{from: "i", to: "i.alt"}}},
	}}
	actions := []otctx.ActionRecord{
		{SequenceIndex: 0, LookupListIndex: 0},
		{SequenceIndex: 2, LookupListIndex: 1},
	}

	out, rest, ok := otctx.ApplyMatch(nil, remaining, []int{0, 1, 2, 3}, actions, dispatcher, "")
	require.True(t, ok)
	assert.Equal(t, []string{"ff", "i.alt", "x"}, names(out))
	assert.Equal(t, []string{"tail"}, names(rest))
}

func names(recs []otdata.GlyphRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.GlyphName
	}
	return out
}
