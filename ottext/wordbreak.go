package ottext

import (
	"unicode"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/uax"
)

// wbClass is one of the UAX #29 word-break property classes this
// engine's closed do-not-break set actually distinguishes (§A.4.8).
// Every other Unicode rune not covered below is treated as a boundary
// on both sides.
type wbClass int

const (
	wbOther wbClass = iota
	wbCR
	wbLF
	wbALetter
	wbNumeric
	wbKatakana
	wbExtendNumLet
	wbMidLetter
	wbMidNum
)

// classify maps a code point to its word-break property class,
// restricted to the classes the closed do-not-break set in §A.4.8
// references. ALetter is approximated by unicode.Letter, so ideographs
// and other letters of any script are classed ALetter here; combining
// marks fall outside the letter/numeric/katakana classes entirely and
// so never suppress a break.
func classify(r rune) wbClass {
	switch r {
	case '\r':
		return wbCR
	case '\n':
		return wbLF
	case '_', 0xFF3F, 0x2040, 0x2054, 0x202F, 0xFE33, 0xFE34, 0xFE4D, 0xFE4E, 0xFE4F:
		return wbExtendNumLet
	case ':', 0xB7, 0x387, 0x5F4, 0x2027, 0xFE13, 0xFE55, 0xFF1A, '\'':
		return wbMidLetter
	case ',', ';', 0x37E, 0x589, 0x60D, 0x6D4, 0x7F8, 0x2044, 0xFE10, 0xFE14, 0xFE50, 0xFE54, 0xFF0C, 0xFF1B:
		return wbMidNum
	}
	switch {
	case unicode.IsDigit(r):
		return wbNumeric
	case unicode.In(r, unicode.Katakana):
		return wbKatakana
	case unicode.IsLetter(r):
		return wbALetter
	}
	return wbOther
}

func classOfRune(r rune, known bool) wbClass {
	if !known {
		return wbOther
	}
	return classify(r)
}

// Breaker decides word boundaries over a glyph-record stream using a
// reverse CMAP to recover the Unicode code points GlyphRecord.Side1/
// Side2Unicode need (§A.4.8).
type Breaker struct {
	ReverseCMAP otdata.ReverseCMAP
}

func NewBreaker(reverseCMAP otdata.ReverseCMAP) *Breaker {
	return &Breaker{ReverseCMAP: reverseCMAP}
}

// penaltyOf turns a no-break decision into a uax.Penalty the way the
// rest of the pack's line- and word-breaking code does: an infinite
// penalty forbids the break, zero permits it freely. The engine only
// ever compares against uax.InfinitePenalty, but carrying the richer
// type keeps this helper interchangeable with the pack's other
// breakers rather than collapsing straight to bool.
func penaltyOf(noBreak bool) uax.Penalty {
	if noBreak {
		return uax.InfinitePenalty
	}
	return 0
}

// boundary decides whether a break falls between the glyph classified
// by (twoBefore, before) and the glyph classified by (after, twoAfter),
// all four positions optional (ok=false when out of range), per the
// closed pair/triple table of §A.4.8.
func boundary(twoBefore, before, after, twoAfter wbClass, haveBefore, haveAfter bool) uax.Penalty {
	if !haveBefore || !haveAfter {
		return 0 // start or end of sequence always breaks
	}
	switch {
	case before == wbCR && after == wbLF:
		return penaltyOf(true)
	case before == wbALetter && after == wbALetter:
		return penaltyOf(true)
	case before == wbNumeric && after == wbNumeric:
		return penaltyOf(true)
	case before == wbNumeric && after == wbALetter:
		return penaltyOf(true)
	case before == wbALetter && after == wbNumeric:
		return penaltyOf(true)
	case before == wbKatakana && after == wbKatakana:
		return penaltyOf(true)
	case before == wbExtendNumLet && after == wbExtendNumLet:
		return penaltyOf(true)
	case isAlphanumeric(before) && after == wbExtendNumLet:
		return penaltyOf(true)
	case before == wbExtendNumLet && isAlphanumeric(after):
		return penaltyOf(true)
	case before == wbMidLetter && after == wbALetter && twoBefore == wbALetter:
		return penaltyOf(true)
	case before == wbALetter && after == wbMidLetter && twoAfter == wbALetter:
		return penaltyOf(true)
	case before == wbMidNum && after == wbNumeric && twoBefore == wbNumeric:
		return penaltyOf(true)
	case before == wbNumeric && after == wbMidNum && twoAfter == wbNumeric:
		return penaltyOf(true)
	}
	return 0
}

func isAlphanumeric(c wbClass) bool {
	return c == wbALetter || c == wbNumeric || c == wbKatakana
}

func (b *Breaker) classAt(rec otdata.GlyphRecord, side1 bool) wbClass {
	var r rune
	var ok bool
	if side1 {
		r, ok = rec.Side1Unicode(b.ReverseCMAP)
	} else {
		r, ok = rec.Side2Unicode(b.ReverseCMAP)
	}
	return classOfRune(r, ok)
}

// BreakBefore reports whether a word boundary falls immediately before
// remaining[0], given the already-processed glyphs to its left.
func (b *Breaker) BreakBefore(processed, remaining []otdata.GlyphRecord) bool {
	if len(remaining) == 0 {
		return true
	}
	var twoBefore, before wbClass
	haveBefore := len(processed) > 0
	if haveBefore {
		before = b.classAt(processed[len(processed)-1], false)
	}
	if len(processed) > 1 {
		twoBefore = b.classAt(processed[len(processed)-2], false)
	}
	after := b.classAt(remaining[0], true)
	var twoAfter wbClass
	if len(remaining) > 1 {
		twoAfter = b.classAt(remaining[1], true)
	}
	return boundary(twoBefore, before, after, twoAfter, haveBefore, true) != uax.InfinitePenalty
}

// BreakAfter reports whether a word boundary falls immediately after
// remaining[0], given what follows it in remaining.
func (b *Breaker) BreakAfter(processed, remaining []otdata.GlyphRecord) bool {
	if len(remaining) == 0 {
		return true
	}
	before := b.classAt(remaining[0], false)
	var twoBefore wbClass
	if len(processed) > 0 {
		twoBefore = b.classAt(processed[len(processed)-1], false)
	}
	haveAfter := len(remaining) > 1
	var after, twoAfter wbClass
	if haveAfter {
		after = b.classAt(remaining[1], true)
	}
	if len(remaining) > 2 {
		twoAfter = b.classAt(remaining[2], true)
	}
	return boundary(twoBefore, before, after, twoAfter, true, haveAfter) != uax.InfinitePenalty
}
