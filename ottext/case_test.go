package ottext_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/ottext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type fontCmap map[rune]string

func (m fontCmap) Glyph(r rune) (string, bool) {
	name, ok := m[r]
	return name, ok
}

func reverseOf(m fontCmap) runeMap {
	rm := runeMap{}
	for r, name := range m {
		rm[name] = r
	}
	return rm
}

func TestConvertCaseSimpleUpper(t *testing.T) {
	fwd := fontCmap{'A': "A", 'a': "a"}
	rev := reverseOf(fwd)
	out := ottext.ConvertCase(ottext.Upper, []string{"a"}, fwd, rev, language.Und, ".notdef", nil)
	assert.Equal(t, []string{"A"}, out)
}

func TestConvertCasePassesThroughUnmappedGlyph(t *testing.T) {
	fwd := fontCmap{'a': "a"}
	rev := reverseOf(fwd)
	out := ottext.ConvertCase(ottext.Upper, []string{"a", "a.alt"}, fwd, rev, language.Und, ".notdef", nil)
	require.Len(t, out, 2)
	assert.Equal(t, "a.alt", out[1])
}

func TestConvertCaseFallsBackWhenTargetGlyphMissing(t *testing.T) {
	fwd := fontCmap{'a': "a"}
	rev := reverseOf(fwd)
	out := ottext.ConvertCase(ottext.Upper, []string{"a"}, fwd, rev, language.Und, ".notdef", nil)
	assert.Equal(t, []string{".notdef"}, out)
}

func TestConvertCaseTurkishDottedI(t *testing.T) {
	fwd := fontCmap{'I': "I", 'i': "i", 0x0307: "dotabove", 0x0131: "dotlessi", 0x0130: "Idotabove"}
	rev := reverseOf(fwd)
	tr := language.MustParse("tr")

	out := ottext.ConvertCase(ottext.Lower, []string{"I"}, fwd, rev, tr, ".notdef", nil)
	assert.Equal(t, []string{"dotlessi"}, out, "bare I lowercases to dotless i in Turkish")

	out = ottext.ConvertCase(ottext.Upper, []string{"i"}, fwd, rev, tr, ".notdef", nil)
	assert.Equal(t, []string{"Idotabove"}, out, "i uppercases to dotted I in Turkish")
}

func TestConvertCaseTurkishNotBeforeDotContextSuppressesRule(t *testing.T) {
	fwd := fontCmap{'I': "I", 'i': "i", 0x0307: "dotabove", 0x0131: "dotlessi"}
	rev := reverseOf(fwd)
	tr := language.MustParse("tr")

	out := ottext.ConvertCase(ottext.Lower, []string{"I", "dotabove"}, fwd, rev, tr, ".notdef", nil)
	require.Len(t, out, 2)
	assert.Equal(t, "i", out[0], "I immediately before a combining dot above falls back to plain lowercase i")
	assert.Equal(t, "dotabove", out[1])
}

func TestConvertCaseFinalSigma(t *testing.T) {
	fwd := fontCmap{0x03A3: "Sigma", 0x03C2: "sigmafinal", 0x03C3: "sigma", 'o': "o", 's': "s"}
	rev := reverseOf(fwd)
	breaker := ottext.NewBreaker(rev)

	out := ottext.ConvertCase(ottext.Lower, []string{"o", "Sigma"}, fwd, rev, language.Und, ".notdef", breaker)
	assert.Equal(t, []string{"o", "sigmafinal"}, out, "word-final SIGMA lowercases to final sigma")
}

func TestConvertCaseSigmaMedialWithoutBreaker(t *testing.T) {
	fwd := fontCmap{0x03A3: "Sigma", 0x03C3: "sigma", 's': "s"}
	rev := reverseOf(fwd)

	out := ottext.ConvertCase(ottext.Lower, []string{"Sigma", "s"}, fwd, rev, language.Und, ".notdef", nil)
	require.Len(t, out, 2)
	assert.NotEqual(t, "sigmafinal", out[0], "without a breaker Final_Sigma never fires")
}

func TestConvertCaseUpperCasesEachGlyphOfPair(t *testing.T) {
	fwd := fontCmap{'a': "a", 'b': "b", 'A': "A", 'B': "B"}
	rev := reverseOf(fwd)
	out := ottext.ConvertCase(ottext.Upper, []string{"a", "b"}, fwd, rev, language.Und, ".notdef", nil)
	assert.Equal(t, []string{"A", "B"}, out)
}

var _ otdata.ReverseCMAP = runeMap{}
var _ otdata.CMAP = fontCmap{}
