package otdata

// ValueRecord is a GPOS displacement: signed placement and advance
// deltas in font units. Device-adjustment subfields are out of scope
// (§A.1 Non-goals) and are not modeled.
type ValueRecord struct {
	XPlacement int32
	YPlacement int32
	XAdvance   int32
	YAdvance   int32
}

// Anchor is a GPOS attachment point (§A.3), formats 1 and 2. Format 2's
// contour-point index is not resolved by this engine (§A.1 Non-goals);
// an Anchor built from format-2 data carries only its coordinates and
// is otherwise indistinguishable from format 1, per the decided open
// question in DESIGN.md.
type Anchor struct {
	XCoordinate int32
	YCoordinate int32
}

// Diff returns a minus b, componentwise, as a ValueRecord. Cursive
// attachment (GPOS type 3) shifts the second glyph's placement by
// exit.Diff(entry) so its entry anchor lands on the first glyph's exit
// anchor (§A.4.4 type 3).
func (a Anchor) Diff(b Anchor) ValueRecord {
	return ValueRecord{
		XPlacement: a.XCoordinate - b.XCoordinate,
		YPlacement: a.YCoordinate - b.YCoordinate,
	}
}
