package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"testing"

	"github.com/IvanShishkin/filelist/internal/pattern"
	"github.com/IvanShishkin/filelist/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// createTree writes files (slash-separated, relative to root) with the given content
func createTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
}

func fromSlash(paths ...string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.FromSlash(p)
	}
	return out
}

func TestWalker_Scan(t *testing.T) {
	tmpDir := t.TempDir()
	createTree(t, tmpDir, map[string]string{
		"README.md":             "readme",
		"src/A.txt":             "0123456789",
		"src/B.log":             "12345",
		"src/nested/C.TXT":      "upper",
		"src/nested/deep/D.txt": "deep",
		"target/out.txt":        "generated",
	})
	if err := os.MkdirAll(filepath.Join(tmpDir, "empty"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	tests := []struct {
		name          string
		includes      []string
		excludes      []string
		caseSensitive bool
		want          []string
	}{
		{
			name: "no patterns returns every file",
			want: fromSlash("README.md", "src/A.txt", "src/B.log", "src/nested/C.TXT", "src/nested/deep/D.txt", "target/out.txt"),
		},
		{
			name:          "recursive include case sensitive",
			includes:      []string{"**/*.txt"},
			caseSensitive: true,
			want:          fromSlash("src/A.txt", "src/nested/deep/D.txt", "target/out.txt"),
		},
		{
			name:     "recursive include case insensitive",
			includes: []string{"**/*.txt"},
			want:     fromSlash("src/A.txt", "src/nested/C.TXT", "src/nested/deep/D.txt", "target/out.txt"),
		},
		{
			name:     "exclude takes precedence",
			includes: []string{"**/*.txt"},
			excludes: []string{"target/**", "**/deep/**"},
			want:     fromSlash("src/A.txt", "src/nested/C.TXT"),
		},
		{
			name:     "single segment include",
			includes: []string{"*"},
			want:     fromSlash("README.md"),
		},
		{
			name:     "nothing matches",
			includes: []string{"**/*.java"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWalker(pattern.NewMatcher(tt.includes, tt.excludes, tt.caseSensitive), zap.NewNop())
			got, err := w.Scan(tmpDir)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalker_Scan_StableOrder(t *testing.T) {
	tmpDir := t.TempDir()
	createTree(t, tmpDir, map[string]string{
		"b/2.txt": "x",
		"b/1.txt": "x",
		"a/9.txt": "x",
		"c.txt":   "x",
	})

	w := NewWalker(pattern.NewMatcher(nil, nil, false), zap.NewNop())
	first, err := w.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := w.Scan(tmpDir)
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Errorf("Scan() order changed: %v vs %v", first, again)
		}
	}

	sorted := append([]string(nil), first...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(first, sorted) {
		t.Errorf("Scan() = %v, want lexical traversal order", first)
	}
}

func TestWalker_Scan_MissingBaseDir(t *testing.T) {
	w := NewWalker(pattern.NewMatcher(nil, nil, false), zap.NewNop())
	_, err := w.Scan(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, models.ErrConfiguration) {
		t.Errorf("Scan() error = %v, want ErrConfiguration", err)
	}
}

func TestWalker_Scan_BaseDirIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	createTree(t, tmpDir, map[string]string{"file.txt": "x"})

	w := NewWalker(pattern.NewMatcher(nil, nil, false), zap.NewNop())
	_, err := w.Scan(filepath.Join(tmpDir, "file.txt"))
	if !errors.Is(err, models.ErrConfiguration) {
		t.Errorf("Scan() error = %v, want ErrConfiguration", err)
	}
}

func TestWalker_Scan_UnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	tmpDir := t.TempDir()
	createTree(t, tmpDir, map[string]string{"locked/a.txt": "x"})
	locked := filepath.Join(tmpDir, "locked")
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatalf("Failed to chmod: %v", err)
	}
	defer os.Chmod(locked, 0755)

	w := NewWalker(pattern.NewMatcher(nil, nil, false), zap.NewNop())
	_, err := w.Scan(tmpDir)
	if !errors.Is(err, models.ErrIO) {
		t.Errorf("Scan() error = %v, want ErrIO", err)
	}
}

func TestWalker_Scan_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	tmpDir := t.TempDir()
	createTree(t, tmpDir, map[string]string{"real/a.txt": "x"})
	if err := os.Symlink(filepath.Join(tmpDir, "real", "a.txt"), filepath.Join(tmpDir, "link.txt")); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(tmpDir, "real"), filepath.Join(tmpDir, "linkdir")); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	w := NewWalker(pattern.NewMatcher(nil, nil, false), zap.NewNop())
	got, err := w.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := fromSlash("link.txt", "real/a.txt")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestWalker_Scan_LogsExcludedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	createTree(t, tmpDir, map[string]string{
		"keep.txt":        "a",
		"build/skip.txt":  "b",
		"other/plain.log": "c",
	})

	observed, logs := observer.New(zapcore.DebugLevel)
	matcher := pattern.NewMatcher([]string{"**/*.txt"}, []string{"build/"}, true)
	walker := NewWalker(matcher, zap.New(observed))

	files, err := walker.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !reflect.DeepEqual(files, fromSlash("keep.txt")) {
		t.Errorf("Expected [keep.txt], got %v", files)
	}

	excluded := logs.FilterMessage("Excluded file").All()
	if len(excluded) != 1 {
		t.Fatalf("Expected 1 excluded log entry, got %d", len(excluded))
	}
	if got := excluded[0].ContextMap()["path"]; got != filepath.FromSlash("build/skip.txt") {
		t.Errorf("Expected excluded path build/skip.txt, got %v", got)
	}
}
