package otgpos

import "github.com/npillmayer/otengine/otdata"

// nextRecordIndex returns the index within records of the first record
// not covered by flag, mirroring subTablesGPOS.py's _nextRecord: used
// by pair adjustment (type 2) and cursive attachment (type 3) to find
// the partner glyph a flag-covered run of marks sits in front of.
func nextRecordIndex(records []otdata.GlyphRecord, flag otdata.FlagFilter) (int, bool) {
	for i, r := range records {
		if !flag.Skip(r.GlyphName) {
			return i, true
		}
	}
	return -1, false
}

// previousNonMark walks processed backward looking for the most recent
// record that is neither flag-covered nor (when gdef is present) a GDEF
// mark — the base/ligature attachment search shared by mark-to-base
// (type 4) and mark-to-ligature (type 5), per §A.4.4. Mark-to-mark
// (type 6) does not filter out marks and calls previousAny instead.
func previousNonMark(processed []otdata.GlyphRecord, flag otdata.FlagFilter, gdef *otdata.GDEF) (int, bool) {
	for i := len(processed) - 1; i >= 0; i-- {
		name := processed[i].GlyphName
		if flag.Skip(name) {
			continue
		}
		if gdef != nil && gdef.ClassOf(name) == otdata.GlyphClassMark {
			continue
		}
		return i, true
	}
	return -1, false
}

// previousAny is previousNonMark without the mark exclusion, used by
// mark-to-mark (type 6).
func previousAny(processed []otdata.GlyphRecord, flag otdata.FlagFilter) (int, bool) {
	for i := len(processed) - 1; i >= 0; i-- {
		if flag.Skip(processed[i].GlyphName) {
			continue
		}
		return i, true
	}
	return -1, false
}
