package ottext

import (
	"github.com/npillmayer/otengine/otdata"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Case selects the direction of a ConvertCase call.
type Case int

const (
	Lower Case = iota
	Upper
)

// specialCase is one entry of a language-keyed special-casing table
// (§A.4.8): the context that must hold for it to fire, and the
// replacement sequence for each direction. A drop flag means the
// character is deleted rather than replaced.
type specialCase struct {
	context   casingContext
	lower     []rune
	upper     []rune
	lowerDrop bool
	upperDrop bool
}

func (sc specialCase) replacement(c Case) []rune {
	if c == Upper {
		return sc.upper
	}
	return sc.lower
}

func (sc specialCase) drops(c Case) bool {
	if c == Upper {
		return sc.upperDrop
	}
	return sc.lowerDrop
}

// appliesTo reports whether sc actually defines a rule for direction c.
// A table entry that only specifies a lower-case conversion must not
// fire when the caller asked for upper-casing: without this check an
// otherwise-unset replacement would be read as "delete the character".
func (sc specialCase) appliesTo(c Case) bool {
	if c == Upper {
		return sc.upperDrop || len(sc.upper) > 0
	}
	return sc.lowerDrop || len(sc.lower) > 0
}

type casingContext int

const (
	contextNone casingContext = iota
	contextAfterI
	contextAfterSoftDotted
	contextMoreAbove
	contextNotBeforeDot
	contextFinalSigma
)

// softDotted is the closed set of Soft_Dotted base characters the
// After_Soft_Dotted context checks against.
var softDotted = map[rune]bool{
	'i': true, 'j': true,
	0x012F: true, 0x0268: true, 0x0456: true, 0x0458: true,
	0x1E2D: true, 0x1ECB: true,
}

// specialCasing holds the language-keyed and language-agnostic
// special-casing rules this engine bundles. language.Und is the
// language-agnostic table, consulted regardless of the caller's
// requested language.
var specialCasing = map[language.Tag]map[rune]specialCase{
	language.Und: {
		// uppercase SIGMA lowercases to final sigma at the end of a
		// word, to medial sigma otherwise.
		0x03A3: {context: contextFinalSigma, lower: []rune{0x03C2}},
	},
	language.MustParse("lt"): {
		0x0307: {context: contextAfterSoftDotted, upperDrop: true},
	},
	language.MustParse("tr"): {
		// dotless i unless immediately followed by a combining dot
		// above, in which case the pair is handled one unit at a time:
		// the "I" passes through to the default single-case mapping
		// and the dot above, on its own turn, is kept unchanged.
		0x0049: {context: contextNotBeforeDot, lower: []rune{0x0131}},
		0x0069: {context: contextNone, upper: []rune{0x0130}},
	},
	language.MustParse("az"): {
		0x0049: {context: contextNotBeforeDot, lower: []rune{0x0131}},
		0x0069: {context: contextNone, upper: []rune{0x0130}},
	},
}

// unit is one glyph recovered to a code point, or left as an opaque
// glyph name when no code point is known.
type unit struct {
	r     rune
	known bool
	name  string
}

// ConvertCase converts glyphNames to their upper or lowercase forms
// following locale-specific Unicode case conversion rules (§A.4.8).
// Each glyph is first recovered to a code point via reverseCMAP; glyph
// names with no known code point pass through unchanged. lang may be
// language.Und, in which case only the language-agnostic table is
// consulted. fallbackGlyph is substituted for any converted code point
// the forward cmap cannot produce; an empty fallbackGlyph drops such a
// code point from the output. A non-nil breaker enables the Final_Sigma
// context, whose word end is computed from the recovered code points
// themselves; with a nil breaker Final_Sigma never fires.
func ConvertCase(c Case, glyphNames []string, cmap otdata.CMAP, reverseCMAP otdata.ReverseCMAP, lang language.Tag, fallbackGlyph string, breaker *Breaker) []string {
	units := make([]unit, len(glyphNames))
	for i, name := range glyphNames {
		if r, ok := reverseCMAP.Lookup(name); ok {
			units[i] = unit{r: r, known: true}
		} else {
			units[i] = unit{name: name}
		}
	}

	var convertedRunes []rune
	var convertedNames []string // "" alongside convertedRunes[i] means that slot is a rune, not a passthrough name
	emitRune := func(r rune) {
		convertedRunes = append(convertedRunes, r)
		convertedNames = append(convertedNames, "")
	}
	emitName := func(name string) {
		convertedRunes = append(convertedRunes, 0)
		convertedNames = append(convertedNames, name)
	}

	for index, u := range units {
		if !u.known {
			emitName(u.name)
			continue
		}
		if lang != language.Und {
			if handled, dropped, repl := fireSpecialCasing(c, units, index, lang, breaker); handled {
				if !dropped {
					for _, r := range repl {
						emitRune(r)
					}
				}
				continue
			}
		}
		if handled, dropped, repl := fireSpecialCasing(c, units, index, language.Und, breaker); handled {
			if !dropped {
				for _, r := range repl {
					emitRune(r)
				}
			}
			continue
		}
		emitRune(singleCase(c, u.r))
	}

	result := make([]string, 0, len(convertedRunes))
	for i, r := range convertedRunes {
		if convertedNames[i] != "" {
			result = append(result, convertedNames[i])
			continue
		}
		if name, ok := cmap.Glyph(r); ok {
			result = append(result, name)
			continue
		}
		if fallbackGlyph != "" {
			result = append(result, fallbackGlyph)
		}
	}
	return result
}

// fireSpecialCasing reports whether lang's table has a rule for the
// code point at index whose context matches, whether that rule deletes
// the character, and its replacement runes when it does not.
func fireSpecialCasing(c Case, units []unit, index int, lang language.Tag, breaker *Breaker) (handled, dropped bool, repl []rune) {
	table, ok := specialCasing[lang]
	if !ok {
		return false, false, nil
	}
	sc, ok := table[units[index].r]
	if !ok || !sc.appliesTo(c) {
		return false, false, nil
	}
	if !contextMatches(sc.context, units, index, breaker) {
		return false, false, nil
	}
	return true, sc.drops(c), sc.replacement(c)
}

// contextMatches resolves one of the recognized special-casing
// contexts (§A.4.8). Not_After_I, Not_After_Soft_Dotted, Not_More_Above
// and Before_Dot have no casingContext value and are never requested by
// the bundled table above; any context not handled below reaches the
// default branch, which panics with an UnimplementedCasingContext error
// instead of silently matching everything.
func contextMatches(ctx casingContext, units []unit, index int, breaker *Breaker) bool {
	switch ctx {
	case contextNone:
		return true
	case contextAfterI:
		return lastBaseRune(units, index) == 0x0049
	case contextAfterSoftDotted:
		return softDotted[lastBaseRune(units, index)]
	case contextMoreAbove:
		if index+1 >= len(units) || !units[index+1].known {
			return false
		}
		return combiningClass(units[index+1].r) == 230
	case contextNotBeforeDot:
		for i := index + 1; i < len(units); i++ {
			if !units[i].known {
				break
			}
			if units[i].r == 0x0307 {
				return false
			}
			ccc := combiningClass(units[i].r)
			if ccc == 0 || ccc == 230 {
				break
			}
		}
		return true
	case contextFinalSigma:
		return breaker != nil && endsWord(units, index)
	default:
		panic(otdata.NewError(otdata.UnimplementedCasingContext,
			"casing context not supported by the bundled special-casing table"))
	}
}

// lastBaseRune walks backward from index over any intervening marks of
// a combining class other than 0 and 230 and returns the first
// combining-class-zero rune it finds, or 0 if an unknown glyph or a
// class-230 mark interrupts the walk first.
func lastBaseRune(units []unit, index int) rune {
	for i := index - 1; i >= 0; i-- {
		if !units[i].known {
			return 0
		}
		switch combiningClass(units[i].r) {
		case 230:
			return 0
		case 0:
			return units[i].r
		}
	}
	return 0
}

func combiningClass(r rune) int {
	return int(norm.NFC.PropertiesString(string(r)).CCC())
}

// unitRuneCMAP adapts a contiguous slice of units to otdata.ReverseCMAP
// by treating each unit's own rune as its "glyph name" (stringified),
// letting a Breaker classify the run without needing real glyph names.
type unitRuneCMAP struct{}

func (unitRuneCMAP) Lookup(name string) (rune, bool) {
	rs := []rune(name)
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}

// endsWord reports whether the rune at index is the last letter of its
// word by handing the whole unit sequence, split at index, to a Breaker.
func endsWord(units []unit, index int) bool {
	localBreaker := NewBreaker(unitRuneCMAP{})
	processed := make([]otdata.GlyphRecord, 0, index)
	for i := 0; i < index; i++ {
		processed = append(processed, unitRecord(units[i]))
	}
	remaining := make([]otdata.GlyphRecord, 0, len(units)-index)
	for i := index; i < len(units); i++ {
		remaining = append(remaining, unitRecord(units[i]))
	}
	return localBreaker.BreakAfter(processed, remaining)
}

func unitRecord(u unit) otdata.GlyphRecord {
	if !u.known {
		return *otdata.NewGlyphRecord(u.name)
	}
	return *otdata.NewGlyphRecord(string(u.r))
}

// singleCase applies the single-character-table tier (§A.4.8) via
// golang.org/x/text/cases, the tier reached once no special-casing rule
// fires.
func singleCase(c Case, r rune) rune {
	var caser cases.Caser
	if c == Upper {
		caser = cases.Upper(language.Und)
	} else {
		caser = cases.Lower(language.Und)
	}
	out := []rune(caser.String(string(r)))
	if len(out) == 0 {
		return r
	}
	return out[0]
}
