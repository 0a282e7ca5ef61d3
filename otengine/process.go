package otengine

import (
	"github.com/npillmayer/otengine/otconv"
	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otfeature"
	"github.com/npillmayer/otengine/ottext"
	"golang.org/x/text/unicode/bidi"
)

// Process runs input (Unicode text or a pre-formed glyph-name list)
// through case conversion, optional right-to-left reversal, GSUB, and
// GPOS, in that order (§A.6). script/langSys select the feature set;
// direction controls whether the glyph stream is reversed before GSUB;
// opts override the Engine's default Config for this call only. Of the
// options, only the fallback glyph, case, language and logger take
// effect here; feature-state and random-source options are read only
// by NewEngine.
func (e *Engine) Process(input any, script, langSys otdata.Tag, direction bidi.Direction, opts ...Option) ([]otdata.GlyphRecord, error) {
	cfg := e.Config
	for _, opt := range opts {
		opt(&cfg)
	}

	var glyphNames []string
	switch v := input.(type) {
	case string:
		glyphNames = otconv.StringToGlyphNames(v, e.CMAP, cfg.FallbackGlyph)
	case []string:
		glyphNames = v
	default:
		return nil, otdata.NewError(otdata.MalformedTable, "Process input must be a string or []string")
	}

	if caseMode, ok := cfg.Case.ottext(); ok {
		var breaker *ottext.Breaker
		if e.ReverseCMAP != nil {
			breaker = ottext.NewBreaker(e.ReverseCMAP)
		}
		glyphNames = ottext.ConvertCase(caseMode, glyphNames, e.CMAP, e.ReverseCMAP, cfg.Language, cfg.FallbackGlyph, breaker)
	}

	records := otconv.GlyphListToGlyphRecords(glyphNames)
	if direction == bidi.RightToLeft {
		reverse(records)
	}

	logger := cfg.Logger
	logger.LogStart()
	logger.LogMainSettings(glyphNames, script, langSys)

	var err error
	if e.GSUB != nil {
		logger.LogTableStart(e.GSUB)
		if records, err = e.processTable(e.GSUB, records, script, langSys, logger); err != nil {
			logger.LogTableEnd()
			logger.LogEnd()
			return nil, err
		}
		logger.LogResults(records)
		logger.LogTableEnd()
	}
	if e.GPOS != nil {
		logger.LogTableStart(e.GPOS)
		if records, err = e.processTable(e.GPOS, records, script, langSys, logger); err != nil {
			logger.LogTableEnd()
			logger.LogEnd()
			return nil, err
		}
		logger.LogResults(records)
		logger.LogTableEnd()
	}
	logger.LogEnd()
	return records, nil
}

func reverse(records []otdata.GlyphRecord) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}

// processTable resolves table's applicable lookups for (script, langSys)
// and runs them over records, per §A.4.7: a boundary-sensitive feature
// (init/medi/fina/isol) is skipped per-glyph when word-break geometry
// doesn't match its position; aalt lookups are held aside and replayed
// once, after every other feature, so accumulated alternates reflect
// the final glyph identities.
func (e *Engine) processTable(table *otdata.Table, records []otdata.GlyphRecord, script, langSys otdata.Tag, logger interface {
	LogApplicableLookups(*otdata.Table, []otdata.ResolvedLookup)
	LogProcessingStart()
	LogProcessingEnd()
	LogLookupStart(*otdata.Table, otdata.Tag, int)
	LogLookupEnd()
	LogSubTableStart(int, int, string)
	LogSubTableEnd()
	LogInput([]otdata.GlyphRecord, []otdata.GlyphRecord)
	LogOutput([]otdata.GlyphRecord, []otdata.GlyphRecord)
}) ([]otdata.GlyphRecord, error) {
	resolved := otfeature.Resolve(table, script, langSys)
	logger.LogApplicableLookups(table, resolved)
	logger.LogProcessingStart()

	var breaker *ottext.Breaker
	if e.ReverseCMAP != nil {
		breaker = ottext.NewBreaker(e.ReverseCMAP)
	}
	result := e.processLookups(table, resolved, records, breaker, false, logger)
	logger.LogProcessingEnd()
	return result, nil
}

type subtableLogger interface {
	LogLookupStart(*otdata.Table, otdata.Tag, int)
	LogLookupEnd()
	LogSubTableStart(int, int, string)
	LogSubTableEnd()
	LogInput([]otdata.GlyphRecord, []otdata.GlyphRecord)
	LogOutput([]otdata.GlyphRecord, []otdata.GlyphRecord)
}

func (e *Engine) processLookups(table *otdata.Table, resolved []otdata.ResolvedLookup, records []otdata.GlyphRecord, breaker *ottext.Breaker, processingAalt bool, logger subtableLogger) []otdata.GlyphRecord {
	var aaltHolding []otdata.ResolvedLookup

	for _, rl := range resolved {
		if !processingAalt && rl.FeatureTag == otdata.AALT {
			aaltHolding = append(aaltHolding, rl)
			continue
		}
		logger.LogLookupStart(table, rl.FeatureTag, rl.LookupIndex)

		var processed []otdata.GlyphRecord
		remaining := records
		for len(remaining) > 0 {
			skip := false
			if otdata.IsBoundarySensitive(rl.FeatureTag) && breaker != nil {
				before := breaker.BreakBefore(processed, remaining)
				after := breaker.BreakAfter(processed, remaining)
				switch rl.FeatureTag {
				case "init":
					skip = !before || after
				case "medi":
					skip = before || after
				case "fina":
					skip = before || !after
				case "isol":
					skip = !before || !after
				}
			}

			performed := false
			if !skip {
				processed, remaining, performed = e.processLookup(processed, remaining, rl, logger)
			}
			if !performed {
				processed = append(processed, remaining[0])
				remaining = remaining[1:]
			}
		}
		records = processed
		logger.LogLookupEnd()
	}

	if !processingAalt && len(aaltHolding) > 0 {
		records = e.processLookups(table, aaltHolding, records, breaker, true, logger)
	}
	return records
}

func (e *Engine) processLookup(processed, remaining []otdata.GlyphRecord, rl otdata.ResolvedLookup, logger subtableLogger) ([]otdata.GlyphRecord, []otdata.GlyphRecord, bool) {
	for i, sub := range rl.Lookup.Subtables {
		logger.LogSubTableStart(rl.LookupIndex, i, subtableTypeName(rl.Lookup.Type))
		logger.LogInput(processed, remaining)
		newProcessed, newRemaining, performed := sub.Process(processed, remaining, rl.FeatureTag)
		if performed {
			logger.LogOutput(newProcessed, newRemaining)
			logger.LogSubTableEnd()
			return newProcessed, newRemaining, true
		}
		logger.LogSubTableEnd()
	}
	return processed, remaining, false
}

func subtableTypeName(lookupType int) string {
	names := map[int]string{
		1: "SingleSubstitution/SingleAdjustment",
		2: "MultipleOrPairSubstitution",
		3: "AlternateSubstitution/CursiveAttachment",
		4: "LigatureSubstitution/MarkToBase",
		5: "ContextSubstitution/MarkToLigature",
		6: "ChainContextSubstitution/MarkToMark",
		7: "ContextPositioning/ExtensionSubstitution",
		8: "ChainContextPositioning",
		9: "ExtensionPositioning",
	}
	if n, ok := names[lookupType]; ok {
		return n
	}
	return "Unknown"
}
