package report

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/IvanShishkin/filelist/internal/config"
	"github.com/IvanShishkin/filelist/pkg/models"
	"go.uber.org/zap"
)

// Generator renders a record list in the configured format and writes it out
type Generator struct {
	config *config.Config
	logger *zap.Logger
	suite  SuiteOptions
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	suite := DefaultSuiteOptions()
	if cfg.SuitePackage != "" {
		suite.Package = cfg.SuitePackage
	}
	if cfg.SuiteClass != "" {
		suite.Class = cfg.SuiteClass
	}

	return &Generator{
		config: cfg,
		logger: logger,
		suite:  suite,
	}
}

// Render serializes records without touching the filesystem
func (g *Generator) Render(records models.RecordList) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	typ := g.config.GetType()
	if typ != config.TypeUnknown && typ != config.TypeJUnit {
		if err := checkUTF8(records); err != nil {
			return nil, err
		}
	}

	switch typ {
	case config.TypeJSON:
		data, err = renderJSON(records)
	case config.TypeXML:
		data, err = renderXML(records)
	case config.TypeJUnit:
		data = renderSuite(records.Paths(), g.suite)
	case config.TypeYAML:
		data, err = renderYAML(records)
	default:
		return nil, fmt.Errorf("%w: unknown output type: %s", models.ErrConfiguration, g.config.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to render %s output: %w", models.ErrIO, g.config.Type, err)
	}
	return data, nil
}

// Generate renders records and writes them to outputFile in one step.
// Nothing is written if rendering fails.
func (g *Generator) Generate(records models.RecordList, outputFile string) (string, error) {
	data, err := g.Render(records)
	if err != nil {
		return "", err
	}

	g.logger.Info("Writing file list",
		zap.String("type", g.config.Type),
		zap.String("output", outputFile))

	if err := WriteOutput(outputFile, data); err != nil {
		return "", err
	}

	absPath, _ := filepath.Abs(outputFile)
	return absPath, nil
}

// checkUTF8 rejects string values that json, xml and yaml cannot carry
// unchanged. The suite source is written byte for byte.
func checkUTF8(records models.RecordList) error {
	for _, r := range records {
		for _, e := range r.Entries {
			if s, ok := e.Value.(string); ok && !utf8.ValidString(s) {
				return fmt.Errorf("%w: %s of %q is not valid UTF-8", models.ErrIO, e.Field, r.Path)
			}
		}
	}
	return nil
}
