package otctx

import "github.com/npillmayer/otengine/otdata"

// ApplyMatch carries out §A.4.5's "Recursion" paragraph once Match has
// succeeded: with no action records the matched input region (including
// any flag-covered glyphs interleaved within it) moves straight to
// processed. With action records, each is resolved in order against
// matchedInput to an in-stream offset, the input region is split there,
// and the sub-suffix is re-dispatched through every subtable of the
// named lookup, first to act wins. A nested action that edits the
// stream changes its length (a ligature shrinks it, a multiple
// substitution can grow it); matchedInput positions for every
// not-yet-applied action are remapped by that length delta, the same
// index-remapping discipline the teacher's applySequenceLookupRecords
// used against its ot.GlyphIndex buffers.
func ApplyMatch(processed, remaining []otdata.GlyphRecord, matchedInput []int, actions []ActionRecord, dispatcher otdata.LookupDispatcher, featureTag otdata.Tag) (newProcessed, newRemaining []otdata.GlyphRecord, ok bool) {
	if len(matchedInput) == 0 {
		return processed, remaining, false
	}
	lastIdx := matchedInput[len(matchedInput)-1]

	if len(actions) == 0 {
		out := append(append([]otdata.GlyphRecord{}, processed...), remaining[:lastIdx+1]...)
		tail := append([]otdata.GlyphRecord{}, remaining[lastIdx+1:]...)
		return out, tail, true
	}

	span := append([]otdata.GlyphRecord{}, remaining[:lastIdx+1]...)
	tail := append([]otdata.GlyphRecord{}, remaining[lastIdx+1:]...)
	idxs := append([]int(nil), matchedInput...)

	for _, action := range actions {
		if action.SequenceIndex < 0 || action.SequenceIndex >= len(idxs) {
			tracer().Infof("otctx: action sequence_index %d out of range of %d matched positions", action.SequenceIndex, len(idxs))
			continue
		}
		if dispatcher == nil {
			continue
		}
		lookup, found := dispatcher.LookupAt(action.LookupListIndex)
		if !found {
			tracer().Infof("otctx: action references lookup_list_index %d, not present", action.LookupListIndex)
			continue
		}
		offset := idxs[action.SequenceIndex]
		spanProcessed := span[:offset]
		spanRemaining := span[offset:]
		editedProcessed, editedRemaining, performed := lookup.Process(spanProcessed, spanRemaining, featureTag)
		if !performed {
			continue
		}
		edited := append(append([]otdata.GlyphRecord{}, editedProcessed...), editedRemaining...)
		delta := len(edited) - len(span)
		span = edited
		// The edited region always starts back at offset (spanProcessed's
		// length is unchanged), so the position an action just dispatched
		// to is still offset in the new span. Every matched position
		// strictly past it shifts by however much the edit grew or shrank
		// the stream.
		for i, v := range idxs {
			if v <= offset {
				continue
			}
			shifted := v + delta
			if shifted >= len(span) {
				shifted = len(span) - 1
			}
			if shifted < offset {
				shifted = offset
			}
			idxs[i] = shifted
		}
	}

	out := append(append([]otdata.GlyphRecord{}, processed...), span...)
	return out, tail, true
}
