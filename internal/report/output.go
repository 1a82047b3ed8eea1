package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IvanShishkin/filelist/pkg/models"
)

// WriteOutput creates the parent directories of path and replaces path with
// data. Readers see either the previous file or the complete new one.
func WriteOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: could not create output directory: %w", models.ErrConfiguration, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: could not write output file: %w", models.ErrIO, err)
	}
	return nil
}
