package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/IvanShishkin/filelist/pkg/models"
	"github.com/spf13/viper"
)

// Config represents the file list configuration
type Config struct {
	// Scan settings
	BaseDir       string   `mapstructure:"base_dir"`       // root of the scan
	Includes      []string `mapstructure:"includes"`       // Ant-style include patterns
	Excludes      []string `mapstructure:"excludes"`       // Ant-style exclude patterns
	CaseSensitive bool     `mapstructure:"case_sensitive"` // case-sensitive pattern matching
	PatternsFile  string   `mapstructure:"patterns_file"`  // optional YAML file with more patterns

	// Output settings
	Fields     []string `mapstructure:"fields"`      // fields written per file
	Type       string   `mapstructure:"type"`        // json, xml, junit, yaml
	OutputFile string   `mapstructure:"output_file"` // output file path

	// Suite settings (junit type only)
	SuitePackage string `mapstructure:"suite_package"` // package of the generated suite
	SuiteClass   string `mapstructure:"suite_class"`   // class name of the generated suite
}

// OutputType is the serialization selected by Config.Type
type OutputType int

const (
	TypeUnknown OutputType = iota
	TypeJSON
	TypeXML
	TypeJUnit
	TypeYAML
)

var typeNames = map[string]OutputType{
	"json":  TypeJSON,
	"xml":   TypeXML,
	"junit": TypeJUnit,
	"yaml":  TypeYAML,
}

// Defaults
const (
	DefaultBaseDir      = "target"
	DefaultOutputFile   = "target/file-list.json"
	DefaultType         = "json"
	DefaultSuitePackage = "n4.quat.selenium.acceptancetest.suites"
	DefaultSuiteClass   = "AllTestsSuite"
)

// LoadConfig loads configuration from an optional config file, environment
// variables and defaults
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("base_dir", DefaultBaseDir)
	v.SetDefault("includes", []string{})
	v.SetDefault("excludes", []string{})
	v.SetDefault("case_sensitive", false)
	v.SetDefault("patterns_file", "")
	v.SetDefault("fields", []string{"name"})
	v.SetDefault("type", DefaultType)
	v.SetDefault("output_file", DefaultOutputFile)
	v.SetDefault("suite_package", DefaultSuitePackage)
	v.SetDefault("suite_class", DefaultSuiteClass)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: failed to read config file: %w", models.ErrConfiguration, err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix("FILELIST")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrConfiguration, err)
	}

	return &cfg, nil
}

// GetType returns the output type enum value
func (c *Config) GetType() OutputType {
	return typeNames[c.Type]
}

// SupportedTypes returns the accepted values of Type
func SupportedTypes() []string {
	return []string{"json", "xml", "junit", "yaml"}
}

// Validate checks the settings that make a run impossible
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return fmt.Errorf("%w: base directory is not set", models.ErrConfiguration)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("%w: output file is not set", models.ErrConfiguration)
	}
	if c.GetType() == TypeUnknown {
		return fmt.Errorf("%w: type must be one of: %s (got: %s)",
			models.ErrConfiguration, strings.Join(SupportedTypes(), ", "), c.Type)
	}
	return nil
}

// ResolveOutputFile returns the absolute output path. For markup and YAML
// output a trailing .json suffix is rewritten to the matching suffix.
func (c *Config) ResolveOutputFile() (string, error) {
	out := c.OutputFile
	switch c.GetType() {
	case TypeXML:
		out = replaceSuffix(out, ".json", ".xml")
	case TypeYAML:
		out = replaceSuffix(out, ".json", ".yaml")
	}

	abs, err := filepath.Abs(out)
	if err != nil {
		return "", fmt.Errorf("%w: invalid output file %s: %w", models.ErrConfiguration, out, err)
	}
	return abs, nil
}

// ResolveBaseDir returns the absolute base directory
func (c *Config) ResolveBaseDir() (string, error) {
	abs, err := filepath.Abs(c.BaseDir)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base directory %s: %w", models.ErrConfiguration, c.BaseDir, err)
	}
	return abs, nil
}

// GetFields returns the configured fields in order, including unrecognized ones
func (c *Config) GetFields() []string {
	if len(c.Fields) == 0 {
		return []string{"name"}
	}
	return c.Fields
}

func replaceSuffix(s, old, replacement string) string {
	if strings.HasSuffix(s, old) {
		return strings.TrimSuffix(s, old) + replacement
	}
	return s
}
