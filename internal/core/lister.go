package core

import (
	"fmt"
	"time"

	"github.com/IvanShishkin/filelist/internal/config"
	"github.com/IvanShishkin/filelist/internal/filesystem"
	"github.com/IvanShishkin/filelist/internal/pattern"
	"github.com/IvanShishkin/filelist/internal/report"
	"github.com/IvanShishkin/filelist/pkg/models"
	"go.uber.org/zap"
)

// Result summarizes a completed run
type Result struct {
	BaseDir    string
	OutputFile string
	Files      int
	Records    models.RecordList
	Duration   time.Duration
}

// Lister runs the scan, extract and serialize pipeline for one configuration
type Lister struct {
	config *config.Config
	logger *zap.Logger
}

// NewLister creates a new lister instance
func NewLister(cfg *config.Config, logger *zap.Logger) *Lister {
	return &Lister{
		config: cfg,
		logger: logger,
	}
}

// Run scans the base directory and writes the file list.
// Any error aborts the run before the output file is touched.
func (l *Lister) Run() (*Result, error) {
	start := time.Now()

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	baseDir, err := l.config.ResolveBaseDir()
	if err != nil {
		return nil, err
	}
	outputFile, err := l.config.ResolveOutputFile()
	if err != nil {
		return nil, err
	}

	includes, excludes, err := l.patterns()
	if err != nil {
		return nil, err
	}

	matcher := pattern.NewMatcher(includes, excludes, l.config.CaseSensitive)
	compiledIncludes, compiledExcludes := matcher.Patterns()

	l.logger.Info("Creating file list",
		zap.String("base_dir", baseDir),
		zap.String("output", outputFile),
		zap.Strings("includes", compiledIncludes),
		zap.Strings("excludes", compiledExcludes),
		zap.Strings("fields", l.config.GetFields()),
		zap.String("type", l.config.Type),
		zap.Bool("case_sensitive", l.config.CaseSensitive))

	walker := filesystem.NewWalker(matcher, l.logger)

	paths, err := walker.Scan(baseDir)
	if err != nil {
		return nil, err
	}

	builder := NewBuilder(filesystem.NewExtractor(baseDir), l.config.GetFields(), l.logger)
	records, err := builder.Build(paths)
	if err != nil {
		return nil, err
	}

	l.logger.Info("File list contains files", zap.Int("files", len(records)))

	generator := report.NewGenerator(l.config, l.logger)
	written, err := generator.Generate(records, outputFile)
	if err != nil {
		return nil, err
	}

	result := &Result{
		BaseDir:    baseDir,
		OutputFile: written,
		Files:      len(records),
		Records:    records,
		Duration:   time.Since(start),
	}

	l.logger.Info("File list created",
		zap.Int("files", result.Files),
		zap.String("output", result.OutputFile),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// patterns returns the configured patterns followed by those of the
// patterns file, if one is set
func (l *Lister) patterns() ([]string, []string, error) {
	includes := append([]string(nil), l.config.Includes...)
	excludes := append([]string(nil), l.config.Excludes...)

	if l.config.PatternsFile == "" {
		return includes, excludes, nil
	}

	set, err := pattern.LoadSetFile(l.config.PatternsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", models.ErrConfiguration, err)
	}
	return append(includes, set.Includes...), append(excludes, set.Excludes...), nil
}
