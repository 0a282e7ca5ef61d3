package otdata

// Tag is a four-character OpenType identifier: a script tag ("latn"),
// a language-system tag, or a feature tag ("liga", "kern", "aalt").
// Tags shorter than four characters are conventionally space-padded by
// the font tools that produce them; this package does not pad or trim
// on your behalf.
type Tag string

// DFLT is the fallback script tag consulted when a requested script is
// absent from a ScriptList.
const DFLT Tag = "DFLT"

// AALT is the feature tag that receives special held-aside treatment
// in the stream processor (otengine): its lookups are held aside and
// run only after every other lookup of the table, where they append
// alternates to the records without renaming them, rather than being
// applied inline like every other feature.
const AALT Tag = "aalt"

// RAND is the feature tag whose type-3 alternate-set lookups pick an
// alternate uniformly at random instead of leaving it for the caller
// to choose, per §A.4.3 type 3.
const RAND Tag = "rand"

// defaultGSUBFeatures and defaultGPOSFeatures are the closed
// enumeration of layout feature tags that are on by default when a
// table is constructed, per §A.4.6. Every other tag starts off.
var defaultGSUBFeatures = []Tag{
	"calt", "ccmp", "clig", "fina", "half", "init", "isol", "liga",
	"locl", "med2", "medi", "nukt", "pref", "pres", "pstf", "psts",
	"rand", "rlig", "rphf", "tjmo", "vatu", "vjmo",
}

var defaultGPOSFeatures = []Tag{
	"abvm", "blwm", "kern", "mark", "mkmk", "opbd", "vkrn",
}

// boundarySensitive is the set of feature tags whose application is
// gated by word-break geometry in the stream processor (§A.4.7 step 3).
var boundarySensitive = map[Tag]bool{
	"init": true, "medi": true, "fina": true, "isol": true,
}

// IsBoundarySensitive reports whether tag is one of the four
// Arabic-style positional features (init/medi/fina/isol) that the
// stream processor gates on word-break geometry rather than applying
// unconditionally.
func IsBoundarySensitive(tag Tag) bool {
	return boundarySensitive[tag]
}
