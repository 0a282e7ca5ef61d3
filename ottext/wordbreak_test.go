package ottext_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/ottext"
	"github.com/stretchr/testify/assert"
)

type runeMap map[string]rune

func (m runeMap) Lookup(name string) (rune, bool) {
	r, ok := m[name]
	return r, ok
}

func rec(name string) otdata.GlyphRecord { return *otdata.NewGlyphRecord(name) }

func TestBreakBeforeStartOfSequence(t *testing.T) {
	b := ottext.NewBreaker(runeMap{"X": 'X'})
	assert.True(t, b.BreakBefore(nil, []otdata.GlyphRecord{rec("X")}))
}

func TestNoBreakBetweenTwoLetters(t *testing.T) {
	b := ottext.NewBreaker(runeMap{"a": 'a', "b": 'b'})
	processed := []otdata.GlyphRecord{rec("a")}
	remaining := []otdata.GlyphRecord{rec("b")}
	assert.False(t, b.BreakBefore(processed, remaining))
}

func TestBreakBetweenLetterAndSpace(t *testing.T) {
	b := ottext.NewBreaker(runeMap{"a": 'a', "space": ' '})
	processed := []otdata.GlyphRecord{rec("a")}
	remaining := []otdata.GlyphRecord{rec("space")}
	assert.True(t, b.BreakBefore(processed, remaining))
}

func TestNoBreakAcrossApostropheBetweenLetters(t *testing.T) {
	b := ottext.NewBreaker(runeMap{"o": 'o', "quote": '\'', "t": 't'})
	processed := []otdata.GlyphRecord{rec("o")}
	remaining := []otdata.GlyphRecord{rec("quote"), rec("t")}
	assert.False(t, b.BreakBefore(processed, remaining), "can't: MidLetter needs ALetter on both sides")
	assert.False(t, b.BreakAfter(processed, remaining))
}

func TestBreakAroundApostropheWithoutLetterContext(t *testing.T) {
	b := ottext.NewBreaker(runeMap{"space": ' ', "quote": '\'', "t": 't'})
	processed := []otdata.GlyphRecord{rec("space")}
	remaining := []otdata.GlyphRecord{rec("quote"), rec("t")}
	assert.True(t, b.BreakBefore(processed, remaining), "no ALetter precedes the quote")
}
