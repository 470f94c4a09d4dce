package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-tree configuration file read from the scan root
const ConfigFileName = ".lang-detect.yml"

// ScanConfig represents the .lang-detect.yml configuration file
type ScanConfig struct {
	// Exclude patterns (doublestar globs) merged with CLI excludes
	Exclude []string `yaml:"exclude,omitempty"`
	// DefinitionsDir overlays external definition files onto the embedded
	// snapshot
	DefinitionsDir string `yaml:"definitions_dir,omitempty"`
	// GroupRollup folds member languages into their group (Pug into HTML)
	GroupRollup bool `yaml:"group_rollup,omitempty"`
	// Properties are copied verbatim into the report metadata
	Properties map[string]interface{} `yaml:"properties,omitempty"`
}

// Load attempts to read .lang-detect.yml from the scan root. A missing file
// is not an error; it yields an empty config.
func Load(scanPath string) (*ScanConfig, error) {
	configPath := filepath.Join(scanPath, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &ScanConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config ScanConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// MergeExcludes merges config excludes with CLI excludes. CLI excludes come
// last so they win where patterns overlap.
func (c *ScanConfig) MergeExcludes(cliExcludes []string) []string {
	if c == nil {
		return cliExcludes
	}

	merged := make([]string, 0, len(c.Exclude)+len(cliExcludes))
	seen := make(map[string]bool)
	for _, pattern := range append(append([]string{}, c.Exclude...), cliExcludes...) {
		if pattern == "" || seen[pattern] {
			continue
		}
		seen[pattern] = true
		merged = append(merged, pattern)
	}
	return merged
}
