package otgsub_test

import (
	"testing"

	"github.com/npillmayer/otengine/otctx"
	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otgsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func innerSingleSubDispatcher(coverage, substitute []string) (*otdata.LookupList, []otctx.ActionRecord) {
	inner := otgsub.NewSingleSubstitution(otdata.LookupFlag{}, nil, otdata.NewCoverage(coverage), substitute)
	lookupList := otdata.NewLookupList([]otdata.Lookup{{Type: 1, Subtables: []otdata.Evaluator{inner}}})
	return lookupList, []otctx.ActionRecord{{SequenceIndex: 0, LookupListIndex: 0}}
}

func TestChainContextSubstitutionFormat1MatchesWithBacktrackAndLookAhead(t *testing.T) {
	dispatcher, actions := innerSingleSubDispatcher([]string{"A"}, []string{"A.alt"})
	chain := otgsub.NewChainContextSubstitutionFormat1(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"A"}),
		[][]otgsub.ChainContextRule{{{
			BacktrackGlyphs: []string{"L"},
			LookAheadGlyphs: []string{"R"},
			Actions:         actions,
		}}})
	chain.SetDispatcher(dispatcher)

	processed, remaining, ok := chain.Process(recs("L"), recs("A", "R"), "test")
	require.True(t, ok)
	assert.Equal(t, []string{"L", "A.alt"}, glyphNames(processed))
	assert.Equal(t, []string{"R"}, glyphNames(remaining))
}

func TestChainContextSubstitutionFormat1FailsWhenBacktrackDoesNotMatch(t *testing.T) {
	dispatcher, actions := innerSingleSubDispatcher([]string{"A"}, []string{"A.alt"})
	chain := otgsub.NewChainContextSubstitutionFormat1(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"A"}),
		[][]otgsub.ChainContextRule{{{
			BacktrackGlyphs: []string{"L"},
			LookAheadGlyphs: []string{"R"},
			Actions:         actions,
		}}})
	chain.SetDispatcher(dispatcher)

	_, _, ok := chain.Process(recs("X"), recs("A", "R"), "test")
	assert.False(t, ok)
}

func TestChainContextSubstitutionFormat2UsesClassMatrixForContext(t *testing.T) {
	dispatcher, actions := innerSingleSubDispatcher([]string{"A"}, []string{"A.alt"})
	backtrackClasses := otdata.NewClassDef(map[string]int{"L": 1})
	inputClasses := otdata.NewClassDef(map[string]int{"A": 1})
	lookAheadClasses := otdata.NewClassDef(map[string]int{"R": 1})

	chain := otgsub.NewChainContextSubstitutionFormat2(otdata.LookupFlag{}, nil,
		otdata.NewCoverage([]string{"A"}), backtrackClasses, inputClasses, lookAheadClasses,
		map[int][]otgsub.ChainContextRule{
			1: {{BacktrackClasses: []int{1}, LookAheadClasses: []int{1}, Actions: actions}},
		})
	chain.SetDispatcher(dispatcher)

	processed, remaining, ok := chain.Process(recs("L"), recs("A", "R"), "test")
	require.True(t, ok)
	assert.Equal(t, []string{"L", "A.alt"}, glyphNames(processed))
	assert.Equal(t, []string{"R"}, glyphNames(remaining))
}

func TestChainContextSubstitutionFormat3MatchesDirectCoverageArrays(t *testing.T) {
	dispatcher, actions := innerSingleSubDispatcher([]string{"A"}, []string{"A.alt"})
	chain := otgsub.NewChainContextSubstitutionFormat3(otdata.LookupFlag{}, nil,
		[]*otdata.Coverage{otdata.NewCoverage([]string{"L"})},
		[]*otdata.Coverage{otdata.NewCoverage([]string{"A"})},
		[]*otdata.Coverage{otdata.NewCoverage([]string{"R"})},
		actions)
	chain.SetDispatcher(dispatcher)

	processed, remaining, ok := chain.Process(recs("L"), recs("A", "R"), "test")
	require.True(t, ok)
	assert.Equal(t, []string{"L", "A.alt"}, glyphNames(processed))
	assert.Equal(t, []string{"R"}, glyphNames(remaining))
}

func TestChainContextSubstitutionFormat3FailsWhenLookAheadDoesNotMatch(t *testing.T) {
	dispatcher, actions := innerSingleSubDispatcher([]string{"A"}, []string{"A.alt"})
	chain := otgsub.NewChainContextSubstitutionFormat3(otdata.LookupFlag{}, nil,
		nil,
		[]*otdata.Coverage{otdata.NewCoverage([]string{"A"})},
		[]*otdata.Coverage{otdata.NewCoverage([]string{"R"})},
		actions)
	chain.SetDispatcher(dispatcher)

	_, _, ok := chain.Process(nil, recs("A", "X"), "test")
	assert.False(t, ok)
}
