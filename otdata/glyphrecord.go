package otdata

// HistoryEntry is one frame of a GlyphRecord's substitution_history: a
// single prior glyph identity, or the ordered component names of a
// ligature that was subsumed into the current identity. Exactly one of
// the two fields is set.
type HistoryEntry struct {
	Name       string   // set when this frame records a single prior identity
	Components []string // set when this frame records a ligature's components
}

// GlyphRecord is the unit of the working glyph stream (§A.3). It is
// created from a decoded character, synthesized during GSUB type 2/4
// processing, and mutated in place by both GSUB (identity) and GPOS
// (placement/advance).
type GlyphRecord struct {
	GlyphName string

	XPlacement int32
	YPlacement int32
	XAdvance   int32
	YAdvance   int32

	// AdvanceWidth and AdvanceHeight are set by the caller from font
	// metrics after GSUB has finished producing final glyph identities;
	// the engine never derives them itself.
	AdvanceWidth  int32
	AdvanceHeight int32

	// Alternates holds glyph names discovered for the current identity
	// by aalt accumulation or a type-3 alternate set, keyed to that
	// identity via AlternatesReference.
	Alternates []string
	// AlternatesReference is the glyph name under which Alternates was
	// accumulated. When the head glyph identity changes, the next
	// feature that wants to contribute alternates must observe the
	// mismatch and clear Alternates first — see ResetAlternates.
	AlternatesReference string

	// LigatureComponents is set when this record represents a ligature:
	// the ordered glyph names it replaced, head first.
	LigatureComponents []string

	// SubstitutionHistory is an append-only stack of prior identities,
	// most recent last. Consulted only by the Unicode-lookup helpers
	// (Side1Unicode/Side2Unicode); it never feeds back into processing
	// decisions.
	SubstitutionHistory []HistoryEntry
}

// NewGlyphRecord returns a GlyphRecord for name with all placement,
// advance, and derived fields zeroed.
func NewGlyphRecord(name string) *GlyphRecord {
	return &GlyphRecord{GlyphName: name}
}

// AddValue performs the componentwise integer addition into the
// placement/advance fields that adding a ValueRecord means (§A.3).
func (g *GlyphRecord) AddValue(v ValueRecord) {
	g.XPlacement += v.XPlacement
	g.YPlacement += v.YPlacement
	g.XAdvance += v.XAdvance
	g.YAdvance += v.YAdvance
}

// SaveState pushes the current identity onto SubstitutionHistory as a
// single-name frame. Call this before overwriting GlyphName, not after.
func (g *GlyphRecord) SaveState() {
	g.SubstitutionHistory = append(g.SubstitutionHistory, HistoryEntry{Name: g.GlyphName})
}

// SaveLigatureState pushes a ligature-component frame onto
// SubstitutionHistory: the ordered names the current identity is about
// to subsume. Distinguished from SaveState so a single auditable place
// decides whether a frame is a plain rename or a ligature absorption,
// per §D.3.
func (g *GlyphRecord) SaveLigatureState(components []string) {
	cp := make([]string, len(components))
	copy(cp, components)
	g.SubstitutionHistory = append(g.SubstitutionHistory, HistoryEntry{Components: cp})
}

// ResetAlternatesIfStale clears Alternates when identity no longer
// matches AlternatesReference, then records identity as the new
// reference. Every feature that contributes alternates (aalt
// accumulation, type-3 publication) calls this before appending.
func (g *GlyphRecord) ResetAlternatesIfStale(identity string) {
	if g.AlternatesReference != identity {
		g.Alternates = nil
		g.AlternatesReference = identity
	}
}

// ReverseCMAP maps a glyph name back to the Unicode code point that
// CMAP would map to it. Side1Unicode/Side2Unicode use one to walk
// SubstitutionHistory back to a name with a known code point.
type ReverseCMAP interface {
	Lookup(name string) (r rune, ok bool)
}

// CMAP maps a Unicode code point to the glyph name the font's best
// available platform/encoding subtable produces for it (§A.6: preferring
// (3,10), then (0,3), then (3,1)). Text-to-glyph-name conversion and
// case conversion both consult one.
type CMAP interface {
	Glyph(r rune) (name string, ok bool)
}

// Side1Unicode returns the Unicode value of this record's current glyph
// name if reverseCMAP knows it; otherwise it walks SubstitutionHistory
// most-recent-first, taking a ligature frame's first component, and
// returns the value of the first name reverseCMAP knows (§A.4.8).
func (g *GlyphRecord) Side1Unicode(reverseCMAP ReverseCMAP) (rune, bool) {
	return g.sideUnicode(reverseCMAP, true)
}

// Side2Unicode is Side1Unicode's mirror: it takes a ligature frame's
// last component instead of its first.
func (g *GlyphRecord) Side2Unicode(reverseCMAP ReverseCMAP) (rune, bool) {
	return g.sideUnicode(reverseCMAP, false)
}

func (g *GlyphRecord) sideUnicode(reverseCMAP ReverseCMAP, side1 bool) (rune, bool) {
	if r, ok := reverseCMAP.Lookup(g.GlyphName); ok {
		return r, true
	}
	for i := len(g.SubstitutionHistory) - 1; i >= 0; i-- {
		entry := g.SubstitutionHistory[i]
		var name string
		switch {
		case entry.Name != "":
			name = entry.Name
		case len(entry.Components) > 0 && side1:
			name = entry.Components[0]
		case len(entry.Components) > 0:
			name = entry.Components[len(entry.Components)-1]
		default:
			continue
		}
		if r, ok := reverseCMAP.Lookup(name); ok {
			return r, true
		}
	}
	return 0, false
}
