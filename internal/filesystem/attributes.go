package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/IvanShishkin/filelist/pkg/models"
)

// Attributes holds the filesystem attributes of one file as observed at read time
type Attributes struct {
	Size             int64
	CreationTime     time.Time
	LastModifiedTime time.Time
}

// ReadAttributes stats relPath below baseDir.
// The file may have changed or vanished since it was scanned; that is an I/O error.
func ReadAttributes(baseDir, relPath string) (*Attributes, error) {
	path := filepath.Join(baseDir, relPath)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read attributes of %s: %w", models.ErrIO, relPath, err)
	}

	return &Attributes{
		Size:             info.Size(),
		CreationTime:     getCreationTime(path, info),
		LastModifiedTime: info.ModTime(),
	}, nil
}

// Extractor resolves field values for scanned paths
type Extractor struct {
	baseDir string
}

// NewExtractor creates an extractor for files below baseDir
func NewExtractor(baseDir string) *Extractor {
	return &Extractor{baseDir: baseDir}
}

// Source returns the field resolver for one scanned path
func (e *Extractor) Source(relPath string) *Source {
	return &Source{baseDir: e.baseDir, relPath: relPath}
}

// Source resolves the fields of a single file. Filesystem attributes are
// read on the first field that needs them and reused for the rest.
type Source struct {
	baseDir string
	relPath string
	attrs   *Attributes
}

// Value resolves one field. The bool result is false for unrecognized
// fields, which have no value.
func (s *Source) Value(field models.Field) (any, bool, error) {
	switch field {
	case models.FieldName:
		return s.relPath, true, nil
	case models.FieldUnknown:
		return nil, false, nil
	}

	if s.attrs == nil {
		attrs, err := ReadAttributes(s.baseDir, s.relPath)
		if err != nil {
			return nil, false, err
		}
		s.attrs = attrs
	}

	switch field {
	case models.FieldSize:
		return s.attrs.Size, true, nil
	case models.FieldCreationTime:
		return truncate(s.attrs.CreationTime), true, nil
	case models.FieldLastModifiedTime:
		return truncate(s.attrs.LastModifiedTime), true, nil
	}
	return nil, false, nil
}

// truncate drops sub-second precision so rendered and stored instants agree
func truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
