package otdata

// FeatureRecord is one entry of a FeatureList: a feature tag and the
// lookup indices it activates (§A.3).
type FeatureRecord struct {
	Tag             Tag
	LookupListIndex []int
}

// FeatureList is a table's indexed list of FeatureRecords, addressed by
// the FeatureIndex values ScriptList LangSys records carry.
type FeatureList struct {
	records []FeatureRecord
}

// NewFeatureList builds a FeatureList over records, in index order.
func NewFeatureList(records []FeatureRecord) *FeatureList {
	return &FeatureList{records: append([]FeatureRecord(nil), records...)}
}

// At returns the feature record at index. ok is false when index is out
// of range — the caller should treat that as MalformedTable.
func (fl *FeatureList) At(index int) (FeatureRecord, bool) {
	if fl == nil || index < 0 || index >= len(fl.records) {
		return FeatureRecord{}, false
	}
	return fl.records[index], true
}

// Len returns the number of feature records.
func (fl *FeatureList) Len() int {
	if fl == nil {
		return 0
	}
	return len(fl.records)
}

// Tags returns every distinct feature tag in the list, insertion order,
// de-duplicated — the same shape as a table's "distinct feature tags
// seen" cache (§A.3).
func (fl *FeatureList) Tags() []Tag {
	if fl == nil {
		return nil
	}
	seen := make(map[Tag]bool, len(fl.records))
	tags := make([]Tag, 0, len(fl.records))
	for _, r := range fl.records {
		if !seen[r.Tag] {
			seen[r.Tag] = true
			tags = append(tags, r.Tag)
		}
	}
	return tags
}
