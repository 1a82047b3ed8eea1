// Package pattern compiles Ant-style path patterns and decides whether a
// relative path is part of the file list.
//
// Supported wildcards are '?' (one character inside a segment), '*' (any run
// of characters inside a segment) and '**' as a whole segment (zero or more
// segments). Both '/' and '\' separate segments in patterns. Every other
// character is literal, so any string is a valid pattern.
package pattern

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// literal characters that doublestar would otherwise treat as syntax
var escaper = strings.NewReplacer(
	"[", `\[`,
	"]", `\]`,
	"{", `\{`,
	"}", `\}`,
)

// Pattern is a compiled include or exclude pattern
type Pattern struct {
	raw    string
	text   string
	folded string
}

// Compile translates an Ant-style pattern into a Pattern.
// A trailing separator means "everything below", as in Ant: "src/" is "src/**".
func Compile(raw string) Pattern {
	text := strings.ReplaceAll(raw, `\`, "/")
	if strings.HasSuffix(text, "/") {
		text += "**"
	}
	text = escaper.Replace(text)

	return Pattern{
		raw:    raw,
		text:   text,
		folded: strings.ToLower(text),
	}
}

// String returns the pattern as it was configured
func (p Pattern) String() string {
	return p.raw
}

// Matches reports whether the relative path matches the pattern.
// The path may use the host separator.
func (p Pattern) Matches(path string, caseSensitive bool) bool {
	name := filepath.ToSlash(path)
	text := p.text
	if !caseSensitive {
		name = strings.ToLower(name)
		text = p.folded
	}

	ok, err := doublestar.Match(text, name)
	return err == nil && ok
}

// Set is an ordered list of compiled patterns
type Set []Pattern

// CompileAll compiles every pattern, keeping order
func CompileAll(patterns []string) Set {
	set := make(Set, 0, len(patterns))
	for _, p := range patterns {
		set = append(set, Compile(p))
	}
	return set
}

// Matches reports whether any pattern of the set matches path.
// An empty set matches nothing.
func (s Set) Matches(path string, caseSensitive bool) bool {
	for _, p := range s {
		if p.Matches(path, caseSensitive) {
			return true
		}
	}
	return false
}

// Strings returns the configured pattern texts
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.raw
	}
	return out
}

// Matcher combines include and exclude sets
type Matcher struct {
	includes      Set
	excludes      Set
	caseSensitive bool
}

// NewMatcher compiles the include and exclude patterns once for a run
func NewMatcher(includes, excludes []string, caseSensitive bool) *Matcher {
	return &Matcher{
		includes:      CompileAll(includes),
		excludes:      CompileAll(excludes),
		caseSensitive: caseSensitive,
	}
}

// Included reports whether a relative file path belongs in the file list.
// No includes means every path passes the include test; excludes always win.
func (m *Matcher) Included(path string) bool {
	if len(m.includes) > 0 && !m.includes.Matches(path, m.caseSensitive) {
		return false
	}
	return !m.excludes.Matches(path, m.caseSensitive)
}

// Excluded reports whether path matches an exclude pattern
func (m *Matcher) Excluded(path string) bool {
	return m.excludes.Matches(path, m.caseSensitive)
}

// Patterns returns the include and exclude pattern texts the matcher was built from
func (m *Matcher) Patterns() (includes, excludes []string) {
	return m.includes.Strings(), m.excludes.Strings()
}
