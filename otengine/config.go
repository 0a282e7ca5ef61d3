package otengine

import (
	"math/rand/v2"

	"github.com/npillmayer/otengine/otdata"
	"github.com/npillmayer/otengine/otlog"
	"github.com/npillmayer/otengine/ottext"
	"golang.org/x/text/language"
)

// Config holds the settings a Process call (or an Engine as a whole)
// runs with (§B.3, §A.6). Options are applied over the defaults
// FallbackGlyph=".notdef", Case=CaseUnchanged, Language=language.Und,
// a NopLogger, and no per-feature overrides; a nil Logger left by the
// options is replaced with a NopLogger.
type Config struct {
	FallbackGlyph    string
	Case             CaseMode
	Language         language.Tag
	FeatureOverrides map[otdata.Tag]bool
	Logger           otlog.Logger
	RandSource       *rand.Rand
}

// CaseMode selects Process's case-conversion behavior, the three-valued
// "unchanged|upper|lower" string enum of §A.6 rendered as a Go type.
type CaseMode int

const (
	CaseUnchanged CaseMode = iota
	CaseUpper
	CaseLower
)

func (c CaseMode) ottext() (ottext.Case, bool) {
	switch c {
	case CaseUpper:
		return ottext.Upper, true
	case CaseLower:
		return ottext.Lower, true
	default:
		return 0, false
	}
}

// Option configures a Config. Engines and individual Process calls both
// accept a variadic ...Option, in the teacher's functional-options
// idiom (§B.3).
type Option func(*Config)

// WithFallbackGlyph sets the glyph name substituted for Unicode input
// with no CMAP entry, and for case-converted output with no forward
// CMAP entry. An empty string means such glyphs are dropped from the
// stream entirely.
func WithFallbackGlyph(name string) Option {
	return func(c *Config) { c.FallbackGlyph = name }
}

// WithCase sets the case-conversion direction Process applies before
// GSUB.
func WithCase(mode CaseMode) Option {
	return func(c *Config) { c.Case = mode }
}

// WithLanguage sets the language tag consulted by case conversion's
// special-casing tier. Feature resolution does not read it; it uses
// the OpenType langSys tag passed to Process.
func WithLanguage(lang language.Tag) Option {
	return func(c *Config) { c.Language = lang }
}

// WithFeatureState pre-seeds tag's on/off state. It is applied to
// whichever of GSUB/GPOS declares tag when the Engine is constructed;
// a later SetFeatureState call overrides it.
func WithFeatureState(tag otdata.Tag, on bool) Option {
	return func(c *Config) {
		if c.FeatureOverrides == nil {
			c.FeatureOverrides = make(map[otdata.Tag]bool)
		}
		c.FeatureOverrides[tag] = on
	}
}

// WithLogger attaches a structured processing trace.
func WithLogger(logger otlog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithRandSource supplies the random source GSUB type 3 alternate
// substitution consults under the rand feature. NewEngine seeds every
// AlternateSubstitution that is a direct subtable of a lookup in its
// tables and doesn't already carry one (otdata.RandSeedable); one
// wrapped in an Extension subtable is not reached. Callers don't thread a *rand.Rand
// through their own table construction by hand.
func WithRandSource(r *rand.Rand) Option {
	return func(c *Config) { c.RandSource = r }
}

func newConfig(opts []Option) Config {
	cfg := Config{
		FallbackGlyph: ".notdef",
		Case:          CaseUnchanged,
		Language:      language.Und,
		Logger:        otlog.NopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = otlog.NopLogger{}
	}
	return cfg
}
