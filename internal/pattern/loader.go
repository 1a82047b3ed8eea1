package pattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SetFile is a YAML file holding reusable include and exclude patterns
type SetFile struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoadSetFile reads a pattern set file
func LoadSetFile(path string) (*SetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var set SetFile
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", path, err)
	}

	return &set, nil
}
