package otdata_test

import (
	"testing"

	"github.com/npillmayer/otengine/otdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoversGlyphNoGDEF(t *testing.T) {
	flag := otdata.LookupFlag{IgnoreMarks: true}
	assert.False(t, flag.CoversGlyph("acutecomb", nil), "no GDEF means flag never covers a glyph")
}

func TestCoversGlyphIgnoreMarks(t *testing.T) {
	gdef := &otdata.GDEF{GlyphClassDef: otdata.NewClassDef(map[string]int{
		"a":         otdata.GlyphClassBase,
		"acutecomb": otdata.GlyphClassMark,
	})}
	flag := otdata.LookupFlag{IgnoreMarks: true}
	assert.True(t, flag.CoversGlyph("acutecomb", gdef))
	assert.False(t, flag.CoversGlyph("a", gdef))
}

func TestCoversGlyphMarkAttachmentClass(t *testing.T) {
	gdef := &otdata.GDEF{
		GlyphClassDef: otdata.NewClassDef(map[string]int{
			"acutecomb": otdata.GlyphClassMark,
			"gravecomb": otdata.GlyphClassMark,
		}),
		MarkAttachClassDef: otdata.NewClassDef(map[string]int{
			"acutecomb": 1,
			"gravecomb": 2,
		}),
	}
	flag := otdata.LookupFlag{MarkAttachClass: 1}
	require.False(t, flag.CoversGlyph("acutecomb", gdef), "matching mark-attach class is not covered")
	require.True(t, flag.CoversGlyph("gravecomb", gdef), "differing mark-attach class is covered")
}

func TestCoversGlyphMarkAttachmentClassMissingDef(t *testing.T) {
	gdef := &otdata.GDEF{GlyphClassDef: otdata.NewClassDef(map[string]int{
		"acutecomb": otdata.GlyphClassMark,
	})}
	flag := otdata.LookupFlag{MarkAttachClass: 1}
	assert.False(t, flag.CoversGlyph("acutecomb", gdef), "absent MarkAttachClassDef never covers")
}

func TestCoversGlyphUnassignedClass(t *testing.T) {
	gdef := &otdata.GDEF{GlyphClassDef: otdata.NewClassDef(nil)}
	flag := otdata.LookupFlag{IgnoreBaseGlyphs: true, IgnoreLigatures: true, IgnoreMarks: true}
	assert.False(t, flag.CoversGlyph("space", gdef), "unassigned class is never covered")
}

func TestLookupFlagFromUint16(t *testing.T) {
	f := otdata.LookupFlagFromUint16(0x0105) // bits 0 and 2 set, markAttachClass = 1
	assert.True(t, f.RightToLeft)
	assert.True(t, f.IgnoreLigatures)
	assert.False(t, f.IgnoreMarks)
	assert.EqualValues(t, 1, f.MarkAttachClass)
}
