// Package rules loads language definition files into the already-parsed
// payload the knowledge base consumes. An embedded snapshot ships with the
// binary; external definition directories overlay it.
package rules

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/petrarca/language-detector/internal/types"
	"github.com/petrarca/language-detector/internal/validation"
)

//go:embed all:definitions
var definitionsFS embed.FS

// SupportedSchemaMajor is the definitions schema major version this build
// understands. Files with a different major are rejected at load time.
const SupportedSchemaMajor = "v1"

// document is the on-disk shape of one definitions file. Every section is
// optional so a file may carry languages, heuristics, path rules, token
// tables, or any mix.
type document struct {
	Version         string              `yaml:"version"`
	Languages       []types.Language    `yaml:"languages"`
	NamedPatterns   map[string]string   `yaml:"named_patterns"`
	Disambiguations []rawDisambiguation `yaml:"disambiguations"`
	PathRules       []types.PathRule    `yaml:"path_rules"`
	TokenTables     []types.TokenTable  `yaml:"token_tables"`
}

// rawDisambiguation is a disambiguation before named-pattern expansion
type rawDisambiguation struct {
	Extensions []string  `yaml:"extensions"`
	Rules      []rawRule `yaml:"rules"`
}

// rawRule accepts both the single-language and multi-language forms and an
// optional named-pattern reference instead of an inline pattern
type rawRule struct {
	Language        string   `yaml:"language"`
	Languages       []string `yaml:"languages"`
	Pattern         string   `yaml:"pattern"`
	NegativePattern string   `yaml:"negative_pattern"`
	NamedPattern    string   `yaml:"named_pattern"`
}

// LoadEmbedded parses the embedded definitions snapshot into a payload
func LoadEmbedded() (*types.DefinitionsPayload, error) {
	payload := &types.DefinitionsPayload{}

	err := fs.WalkDir(definitionsFS, "definitions", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}

		content, err := definitionsFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read definitions file %s: %w", path, err)
		}
		return mergeDocument(payload, path, content)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded definitions: %w", err)
	}

	return payload, nil
}

// LoadExternal parses every YAML file under dir and overlays it onto
// payload. Entries with names already present replace the embedded ones.
func LoadExternal(payload *types.DefinitionsPayload, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read definitions file %s: %w", path, err)
		}
		return mergeDocument(payload, path, content)
	})
}

// mergeDocument validates, parses and expands one definitions file, then
// merges it into payload
func mergeDocument(payload *types.DefinitionsPayload, path string, content []byte) error {
	if err := validateDocument(path, content); err != nil {
		return err
	}

	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", types.ErrMalformedDefinition, path, err)
	}

	if err := checkVersion(path, doc.Version); err != nil {
		return err
	}

	fragment := &types.DefinitionsPayload{
		Version:       doc.Version,
		Languages:     doc.Languages,
		NamedPatterns: doc.NamedPatterns,
		PathRules:     doc.PathRules,
		TokenTables:   doc.TokenTables,
	}

	for _, raw := range doc.Disambiguations {
		expanded, err := expandDisambiguation(path, raw, doc.NamedPatterns)
		if err != nil {
			return err
		}
		fragment.Disambiguations = append(fragment.Disambiguations, expanded)
	}

	for _, rule := range doc.PathRules {
		switch rule.Kind {
		case types.PathRuleVendor, types.PathRuleGenerated, types.PathRuleDocumentation, types.PathRuleBinary:
		default:
			return fmt.Errorf("%w: %s: unknown path rule kind %q", types.ErrMalformedDefinition, path, rule.Kind)
		}
	}

	payload.Merge(fragment)
	if payload.Version == "" {
		payload.Version = doc.Version
	}
	return nil
}

// validateDocument runs the schema checks that apply to the sections the
// file carries
func validateDocument(path string, content []byte) error {
	var generic map[string]interface{}
	if err := yaml.Unmarshal(content, &generic); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", types.ErrMalformedDefinition, path, err)
	}

	if _, ok := generic["languages"]; ok {
		if err := validation.ValidateDocument("languages-schema.json", generic); err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrMalformedDefinition, path, err)
		}
	}
	if _, ok := generic["disambiguations"]; ok {
		if err := validation.ValidateDocument("heuristics-schema.json", generic); err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrMalformedDefinition, path, err)
		}
	}
	return nil
}

// checkVersion enforces schema version compatibility
func checkVersion(path, version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("%w: %s: invalid schema version %q", types.ErrMalformedDefinition, path, version)
	}
	if semver.Major(version) != SupportedSchemaMajor {
		return fmt.Errorf("%w: %s: schema version %s not supported (want %s.x)",
			types.ErrMalformedDefinition, path, version, SupportedSchemaMajor)
	}
	return nil
}

// expandDisambiguation resolves named-pattern references so the core only
// ever sees inline patterns
func expandDisambiguation(path string, raw rawDisambiguation, named map[string]string) (types.Disambiguation, error) {
	out := types.Disambiguation{Extensions: raw.Extensions}

	for _, rule := range raw.Rules {
		languages := rule.Languages
		if rule.Language != "" {
			languages = append([]string{rule.Language}, languages...)
		}

		pattern := rule.Pattern
		if rule.NamedPattern != "" {
			ref, ok := named[rule.NamedPattern]
			if !ok {
				return out, fmt.Errorf("%w: %s: undefined named pattern %q",
					types.ErrMalformedDefinition, path, rule.NamedPattern)
			}
			pattern = ref
		}

		out.Rules = append(out.Rules, types.HeuristicRule{
			Languages:       languages,
			Pattern:         pattern,
			NegativePattern: rule.NegativePattern,
		})
	}
	return out, nil
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
