// pkg/config/sources.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sourcesFile is the YAML shape of an optional sources override:
//
//	sources:
//	  - name: current
//	    input: original_data/callcenterdatacurrent.csv
//	    output: cleaned_data/callcenterdatacurrent_cleaned.csv
type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSourcesFile reads a YAML sources file, replacing the fixed default
// tables for runs that clean a different pair of exports.
func LoadSourcesFile(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var sf sourcesFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(sf.Sources) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSources)
	}

	return sf.Sources, nil
}
