package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_Matches(t *testing.T) {
	tests := []struct {
		name          string
		pattern       string
		path          string
		caseSensitive bool
		want          bool
	}{
		{"double star matches zero segments", "a/**/b", "a/b", true, true},
		{"double star matches one segment", "a/**/b", "a/x/b", true, true},
		{"double star matches many segments", "a/**/b", "a/x/y/z/b", true, true},
		{"star does not cross separator", "a*", "a/b", true, false},
		{"star within segment", "a*", "abc", true, true},
		{"question mark is one char", "file?.txt", "file1.txt", true, true},
		{"question mark needs a char", "file?.txt", "file.txt", true, false},
		{"question mark does not match separator", "a?b", "a/b", true, false},
		{"recursive extension at root", "**/*.txt", "A.txt", true, true},
		{"recursive extension nested", "**/*.txt", "src/deep/A.txt", true, true},
		{"recursive extension wrong suffix", "**/*.txt", "src/B.log", true, false},
		{"case insensitive match", "*.TXT", "file.txt", false, true},
		{"case sensitive mismatch", "*.TXT", "file.txt", true, false},
		{"trailing separator means everything below", "src/", "src/a/b.go", true, true},
		{"backslash is a separator", `src\*.go`, "src/main.go", true, true},
		{"brackets are literal", "[ab].txt", "[ab].txt", true, true},
		{"brackets are not a class", "[ab].txt", "a.txt", true, false},
		{"braces are literal", "{a,b}.txt", "a.txt", true, false},
		{"unbalanced bracket is still valid", "[abc", "[abc", true, true},
		{"exact path", "src/A.txt", "src/A.txt", true, true},
		{"double star inside segment acts like star", "a**.txt", "abc.txt", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compile(tt.pattern)
			assert.Equal(t, tt.want, p.Matches(tt.path, tt.caseSensitive),
				"Compile(%q).Matches(%q, %v)", tt.pattern, tt.path, tt.caseSensitive)
		})
	}
}

func TestPattern_HostSeparator(t *testing.T) {
	p := Compile("src/**/*.go")
	assert.True(t, p.Matches(filepath.Join("src", "pkg", "main.go"), true))
}

func TestCompile_Deterministic(t *testing.T) {
	a := Compile("**/x?/*.java")
	b := Compile("**/x?/*.java")
	assert.Equal(t, a, b)
	assert.Equal(t, "**/x?/*.java", a.String())
}

func TestSet_Empty(t *testing.T) {
	var s Set
	assert.False(t, s.Matches("anything", false))
}

func TestMatcher_Included(t *testing.T) {
	tests := []struct {
		name     string
		includes []string
		excludes []string
		path     string
		want     bool
	}{
		{"no patterns includes everything", nil, nil, "a/b/c.txt", true},
		{"include match", []string{"**/*.txt"}, nil, "a/c.txt", true},
		{"include miss", []string{"**/*.txt"}, nil, "a/c.log", false},
		{"exclude only", nil, []string{"**/*.log"}, "a/c.log", false},
		{"exclude wins over include", []string{"**/*.txt"}, []string{"secret/**"}, "secret/c.txt", false},
		{"any include is enough", []string{"*.md", "*.txt"}, nil, "c.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.includes, tt.excludes, true)
			assert.Equal(t, tt.want, m.Included(tt.path))
		})
	}
}

func TestMatcher_Excluded(t *testing.T) {
	m := NewMatcher(nil, []string{"**/target/**"}, false)
	assert.True(t, m.Excluded("module/TARGET/classes/A.class"))
	assert.False(t, m.Excluded("module/src/A.java"))
}

func TestSet_Strings(t *testing.T) {
	s := CompileAll([]string{"a/", "*.go"})
	assert.Equal(t, []string{"a/", "*.go"}, s.Strings())
}

func TestMatcher_Patterns(t *testing.T) {
	m := NewMatcher([]string{"src/**/*.java"}, []string{"**/target/"}, true)
	includes, excludes := m.Patterns()
	assert.Equal(t, []string{"src/**/*.java"}, includes)
	assert.Equal(t, []string{"**/target/"}, excludes)

	includes, excludes = NewMatcher(nil, nil, false).Patterns()
	assert.Empty(t, includes)
	assert.Empty(t, excludes)
}

func TestLoadSetFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "patterns.yaml")
	content := `includes:
  - "**/*.java"
excludes:
  - "**/generated/**"
  - "**/*IT.java"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	set, err := LoadSetFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.java"}, set.Includes)
	assert.Equal(t, []string{"**/generated/**", "**/*IT.java"}, set.Excludes)
}

func TestLoadSetFile_Errors(t *testing.T) {
	_, err := LoadSetFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("includes: [unterminated"), 0644))
	_, err = LoadSetFile(bad)
	assert.Error(t, err)
}
