package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/IvanShishkin/filelist/internal/pattern"
	"github.com/IvanShishkin/filelist/pkg/models"
	"go.uber.org/zap"
)

// Walker walks a base directory and collects the files accepted by a matcher
type Walker struct {
	matcher *pattern.Matcher
	logger  *zap.Logger
}

// NewWalker creates a new filesystem walker
func NewWalker(matcher *pattern.Matcher, logger *zap.Logger) *Walker {
	return &Walker{
		matcher: matcher,
		logger:  logger,
	}
}

// Scan returns the relative paths of all included regular files below root,
// in directory traversal order. Directories are never returned.
// Any traversal error aborts the scan.
func (w *Walker) Scan(root string) ([]string, error) {
	if err := checkBaseDir(root); err != nil {
		return nil, err
	}

	files := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: error accessing %s: %w", models.ErrIO, path, err)
		}

		if d.IsDir() {
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve %s: %w", models.ErrIO, path, err)
		}

		if !w.matcher.Included(relPath) {
			if w.matcher.Excluded(relPath) {
				w.logger.Debug("Excluded file", zap.String("path", relPath))
			}
			return nil
		}

		w.logger.Debug("Matched file", zap.String("path", relPath))
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// isRegularFile reports whether d is a regular file, following a symlink
// once. Symlinked directories are not descended into.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// checkBaseDir verifies that root exists and is a directory
func checkBaseDir(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: base directory does not exist: %s", models.ErrConfiguration, root)
		}
		return fmt.Errorf("%w: failed to access base directory: %w", models.ErrConfiguration, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: base directory is not a directory: %s", models.ErrConfiguration, root)
	}
	return nil
}
