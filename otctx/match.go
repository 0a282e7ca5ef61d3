package otctx

import "github.com/npillmayer/otengine/otdata"

// ActionRecord is one `(sequence_index, lookup_list_index)` pair from a
// contextual subtable's action list (§A.4.5).
type ActionRecord struct {
	SequenceIndex   int
	LookupListIndex int
}

// MatchSpec describes one contextual or chaining-contextual subtable's
// context sections. Input's first predicate corresponds to the head
// glyph. Backtrack and Lookahead are both given nearest-to-input first,
// matching the order §A.4.5 describes ("backtrack sequence... matched
// against reversed processed prefix").
type MatchSpec struct {
	Backtrack []Predicate
	Input     []Predicate
	Lookahead []Predicate
	Actions   []ActionRecord
}

func covered(flag otdata.LookupFlag, gdef *otdata.GDEF, name string) bool {
	return flag.CoversGlyph(name, gdef)
}

// matchForward walks records starting at start, skipping flag-covered
// records (they stay in the stream but don't consume a predicate), and
// requires every remaining predicate be satisfied by the next
// non-covered record in strict order. It returns the stream indexes (in
// records) of the matched elements and the index one past the last
// element it looked at (covered or matched) — the resume point for
// whatever sequence comes next (input continuing into lookahead).
func matchForward(records []otdata.GlyphRecord, start int, preds []Predicate, flag otdata.LookupFlag, gdef *otdata.GDEF) (matched []int, resume int, ok bool) {
	i := start
	for len(matched) < len(preds) {
		if i >= len(records) {
			return nil, i, false
		}
		if covered(flag, gdef, records[i].GlyphName) {
			i++
			continue
		}
		if !preds[len(matched)](records[i].GlyphName) {
			return nil, i, false
		}
		matched = append(matched, i)
		i++
	}
	return matched, i, true
}

// matchBackward walks records from its end backward, skipping
// flag-covered records, requiring every predicate (nearest-to-input
// first) be satisfied by the next non-covered record. Unlike
// matchForward it reports only success, since no action record ever
// addresses a backtrack position.
func matchBackward(records []otdata.GlyphRecord, preds []Predicate, flag otdata.LookupFlag, gdef *otdata.GDEF) bool {
	i := len(records) - 1
	matchedCount := 0
	for matchedCount < len(preds) {
		if i < 0 {
			return false
		}
		if covered(flag, gdef, records[i].GlyphName) {
			i--
			continue
		}
		if !preds[matchedCount](records[i].GlyphName) {
			return false
		}
		matchedCount++
		i--
	}
	return true
}

// Match runs the full backtrack/input/lookahead test for one contextual
// or chaining-contextual subtable attempt, per §A.4.5. On success it
// returns the in-stream (relative to remaining) indexes every Input
// predicate matched.
func Match(processed, remaining []otdata.GlyphRecord, spec MatchSpec, flag otdata.LookupFlag, gdef *otdata.GDEF) (matchedInput []int, ok bool) {
	if len(spec.Backtrack) > 0 && !matchBackward(processed, spec.Backtrack, flag, gdef) {
		return nil, false
	}
	inputMatched, resume, ok := matchForward(remaining, 0, spec.Input, flag, gdef)
	if !ok {
		return nil, false
	}
	if len(spec.Lookahead) > 0 {
		if _, _, ok := matchForward(remaining, resume, spec.Lookahead, flag, gdef); !ok {
			return nil, false
		}
	}
	return inputMatched, true
}
