// Package env captures the environment-derived configuration of a run into a
// single immutable Snapshot. Nothing else in the program reads the process
// environment once a Snapshot exists.
package env

import (
	"unicode/utf8"

	"github.com/andyballingall/deltaenv/internal/osenv"
	"github.com/andyballingall/deltaenv/internal/pager"
)

// Environment variables read by Capture. Extend by adding to this list.
const (
	ColorTerm           = "COLORTERM"
	BatTheme            = "BAT_THEME"
	GitConfigParameters = "GIT_CONFIG_PARAMETERS"
	GitPrefix           = "GIT_PREFIX"
	DeltaFeatures       = "DELTA_FEATURES"
	DeltaNavigate       = "DELTA_NAVIGATE"
	DeltaPager          = "DELTA_PAGER"

	DeltaExperimentalMaxLineDistanceForNaivelyPairedLines = "DELTA_EXPERIMENTAL_MAX_LINE_DISTANCE_FOR_NAIVELY_PAIRED_LINES"
)

var names = []string{
	ColorTerm,
	BatTheme,
	GitConfigParameters,
	GitPrefix,
	DeltaFeatures,
	DeltaNavigate,
	DeltaExperimentalMaxLineDistanceForNaivelyPairedLines,
	DeltaPager,
	pager.EnvVar,
}

// Names returns the environment variables consulted by Capture, including
// PAGER, which is only read through the pager resolver.
func Names() []string {
	return append([]string(nil), names...)
}

// value is an optional string.
type value struct {
	s  string
	ok bool
}

func (v value) get() (string, bool) { return v.s, v.ok }

// Snapshot is a point-in-time capture of environment-derived configuration.
// The zero value has every field absent.
type Snapshot struct {
	batTheme                             value
	colorTerm                            value
	currentDir                           value
	maxLineDistanceForNaivelyPairedLines value
	features                             value
	gitConfigParameters                  value
	gitPrefix                            value
	navigate                             value
	pagerOverride                        value
	resolvedPager                        value
}

// Capture builds a Snapshot from p. It never fails: unset variables, values
// that are not valid UTF-8 and an unreadable working directory are recorded
// as absent.
func Capture(p osenv.Provider, r *pager.Resolver) Snapshot {
	lookup := func(key string) value {
		s, ok := p.Lookup(key)
		if !ok || !utf8.ValidString(s) {
			return value{}
		}
		return value{s: s, ok: true}
	}

	var cwd value
	if dir, err := p.Getwd(); err == nil && utf8.ValidString(dir) {
		cwd = value{s: dir, ok: true}
	}

	if r == nil {
		r = pager.NewResolver(p)
	}

	return Snapshot{
		batTheme:                             lookup(BatTheme),
		colorTerm:                            lookup(ColorTerm),
		currentDir:                           cwd,
		maxLineDistanceForNaivelyPairedLines: lookup(DeltaExperimentalMaxLineDistanceForNaivelyPairedLines),
		features:                             lookup(DeltaFeatures),
		gitConfigParameters:                  lookup(GitConfigParameters),
		gitPrefix:                            lookup(GitPrefix),
		navigate:                             lookup(DeltaNavigate),
		pagerOverride:                        lookup(DeltaPager),
		resolvedPager:                        value{s: r.Executable(nil), ok: true},
	}
}

// CaptureOS captures a Snapshot of the real process environment.
func CaptureOS() Snapshot {
	p := osenv.NewProvider()
	return Capture(p, pager.NewResolver(p))
}

func (s Snapshot) BatTheme() (string, bool)  { return s.batTheme.get() }
func (s Snapshot) ColorTerm() (string, bool) { return s.colorTerm.get() }

// CurrentDir is the working directory at capture time.
func (s Snapshot) CurrentDir() (string, bool) { return s.currentDir.get() }

// MaxLineDistanceForNaivelyPairedLines is the raw, unparsed override.
func (s Snapshot) MaxLineDistanceForNaivelyPairedLines() (string, bool) {
	return s.maxLineDistanceForNaivelyPairedLines.get()
}

func (s Snapshot) Features() (string, bool)            { return s.features.get() }
func (s Snapshot) GitConfigParameters() (string, bool) { return s.gitConfigParameters.get() }
func (s Snapshot) GitPrefix() (string, bool)           { return s.gitPrefix.get() }
func (s Snapshot) Navigate() (string, bool)            { return s.navigate.get() }

// PagerOverride is the raw DELTA_PAGER value, independent of ResolvedPager.
func (s Snapshot) PagerOverride() (string, bool) { return s.pagerOverride.get() }

// ResolvedPager is PAGER after the resolver's substitution policy.
func (s Snapshot) ResolvedPager() (string, bool) { return s.resolvedPager.get() }

// Equal reports whether both snapshots hold the same fields.
func (s Snapshot) Equal(o Snapshot) bool {
	return s == o
}

// Field is a named snapshot field, in display order.
type Field struct {
	Name    string
	Value   string
	Present bool
}

// Fields lists every field of the snapshot in a stable order.
func (s Snapshot) Fields() []Field {
	f := func(name string, v value) Field {
		return Field{Name: name, Value: v.s, Present: v.ok}
	}
	return []Field{
		f("bat_theme", s.batTheme),
		f("colorterm", s.colorTerm),
		f("current_dir", s.currentDir),
		f("max_line_distance_for_naively_paired_lines", s.maxLineDistanceForNaivelyPairedLines),
		f("features", s.features),
		f("git_config_parameters", s.gitConfigParameters),
		f("git_prefix", s.gitPrefix),
		f("navigate", s.navigate),
		f("pager_override", s.pagerOverride),
		f("resolved_pager", s.resolvedPager),
	}
}
