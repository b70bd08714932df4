// Package pager maps a user-supplied pager name to one that is safe to drive
// programmatically.
package pager

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-shellwords"

	"github.com/andyballingall/deltaenv/internal/osenv"
)

const (
	// EnvVar is the conventional pager-selection variable.
	EnvVar = "PAGER"
	// DefaultPager is substituted for missing or unsafe pagers.
	DefaultPager = "less"
)

// unsafePagers do not scroll back, or misbehave when fed from a pipe.
var unsafePagers = map[string]struct{}{
	"more": {},
	"most": {},
}

// Resolver resolves the effective pager executable.
type Resolver struct {
	env osenv.Provider
}

// NewResolver creates a Resolver reading the ambient pager from env.
func NewResolver(env osenv.Provider) *Resolver {
	return &Resolver{env: env}
}

// Executable returns the pager executable to invoke. A non-nil override is
// used as the candidate and the environment is not consulted; otherwise the
// candidate is read from PAGER. The candidate is split with shell quoting
// rules and its first word is the executable. Empty, unparsable, non-UTF-8
// or unsafe candidates resolve to DefaultPager. The result is never empty.
func (r *Resolver) Executable(override *string) string {
	var candidate string
	if override != nil {
		candidate = *override
	} else if r.env != nil {
		candidate, _ = r.env.Lookup(EnvVar)
	}

	if !utf8.ValidString(candidate) {
		return DefaultPager
	}

	words, err := shellwords.Parse(candidate)
	if err != nil || len(words) == 0 {
		return DefaultPager
	}

	bin := words[0]
	if strings.TrimSpace(bin) == "" || IsUnsafe(bin) {
		return DefaultPager
	}
	return bin
}

// IsUnsafe reports whether the named executable is one of the pagers that
// must be replaced. Directories and extensions are ignored, so "/bin/more"
// and "MORE.COM" both match.
func IsUnsafe(name string) bool {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	_, ok := unsafePagers[strings.ToLower(base)]
	return ok
}
