package core

import (
	"github.com/IvanShishkin/filelist/internal/filesystem"
	"github.com/IvanShishkin/filelist/pkg/models"
	"go.uber.org/zap"
)

// Builder turns scanned paths into records
type Builder struct {
	extractor  *filesystem.Extractor
	logger     *zap.Logger
	warned     map[string]bool
	fieldNames []string
	fields     []models.Field
}

// NewBuilder creates a record builder for the configured field names
func NewBuilder(extractor *filesystem.Extractor, fieldNames []string, logger *zap.Logger) *Builder {
	fields := make([]models.Field, len(fieldNames))
	for i, name := range fieldNames {
		fields[i] = models.ParseField(name)
	}

	return &Builder{
		extractor:  extractor,
		logger:     logger,
		warned:     make(map[string]bool),
		fieldNames: fieldNames,
		fields:     fields,
	}
}

// Build creates one record per path, in path order, with one entry per
// recognized field in configured order. Unrecognized fields are skipped and
// reported once per name. The first extraction error aborts the build.
func (b *Builder) Build(paths []string) (models.RecordList, error) {
	records := make(models.RecordList, 0, len(paths))

	for _, path := range paths {
		record := &models.Record{Path: path}
		source := b.extractor.Source(path)

		for i, field := range b.fields {
			value, ok, err := source.Value(field)
			if err != nil {
				return nil, err
			}
			if !ok {
				b.warnUnrecognized(b.fieldNames[i])
				continue
			}
			record.Add(field, value)
		}

		records = append(records, record)
	}

	return records, nil
}

// warnUnrecognized logs an unknown field name the first time it is seen
func (b *Builder) warnUnrecognized(name string) {
	if b.warned[name] {
		return
	}
	b.warned[name] = true
	b.logger.Warn("Field name not recognized", zap.String("field", name))
}
