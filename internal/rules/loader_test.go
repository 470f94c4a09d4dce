package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/petrarca/language-detector/internal/knowledge"
	"github.com/petrarca/language-detector/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	payload, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "v1.0.0", payload.Version)
	assert.Greater(t, len(payload.Languages), 40)
	assert.NotEmpty(t, payload.Disambiguations)
	assert.NotEmpty(t, payload.PathRules)
	assert.NotEmpty(t, payload.TokenTables)

	// the embedded snapshot must compile into a knowledge base as-is
	_, err = knowledge.Build(payload)
	require.NoError(t, err)
}

func TestLoadEmbeddedExpandsNamedPatterns(t *testing.T) {
	payload, err := LoadEmbedded()
	require.NoError(t, err)

	var headerRules []types.HeuristicRule
	for _, d := range payload.Disambiguations {
		for _, ext := range d.Extensions {
			if ext == ".h" {
				headerRules = d.Rules
			}
		}
	}
	require.NotEmpty(t, headerRules, "embedded definitions disambiguate .h")

	// the first .h rule references a named pattern in YAML; after loading
	// it must carry the expanded inline pattern
	assert.Equal(t, []string{"Objective-C"}, headerRules[0].Languages)
	assert.NotEmpty(t, headerRules[0].Pattern)
	assert.Contains(t, headerRules[0].Pattern, "@")
}

func writeDefinitions(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	return dir
}

func TestLoadExternalOverlay(t *testing.T) {
	dir := writeDefinitions(t, "custom.yaml", `
version: v1.2.0
languages:
  - name: Zig
    type: programming
    extensions: [".zig"]
  - name: Python
    type: programming
    extensions: [".py", ".pyx"]
`)

	payload, err := LoadEmbedded()
	require.NoError(t, err)
	before := len(payload.Languages)

	require.NoError(t, LoadExternal(payload, dir))

	// Zig is new, Python replaces the embedded entry
	assert.Len(t, payload.Languages, before+1)

	kb, err := knowledge.Build(payload)
	require.NoError(t, err)
	require.NotNil(t, kb.ByName("Zig"))
	assert.Equal(t, []string{".py", ".pyx"}, kb.ByName("Python").Extensions)
	assert.Empty(t, kb.ByName("Python").Interpreters, "replacement is wholesale, not a field merge")
}

func TestLoadExternalRejectsBadVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"missing", ""},
		{"not semver", "1.0"},
		{"wrong major", "v2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeDefinitions(t, "bad.yaml", `
version: "`+tt.version+`"
languages:
  - name: Zig
    type: programming
`)
			payload := &types.DefinitionsPayload{}
			err := LoadExternal(payload, dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrMalformedDefinition))
		})
	}
}

func TestLoadExternalRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"language without name",
			"version: v1.0.0\nlanguages:\n  - type: programming\n    extensions: [\".x\"]\n",
		},
		{
			"language with bad type",
			"version: v1.0.0\nlanguages:\n  - name: Zig\n    type: esoteric\n",
		},
		{
			"rule without language",
			"version: v1.0.0\ndisambiguations:\n  - extensions: [\".x\"]\n    rules:\n      - pattern: 'foo'\n",
		},
		{
			"not yaml at all",
			"{{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeDefinitions(t, "bad.yaml", tt.content)
			payload := &types.DefinitionsPayload{}
			err := LoadExternal(payload, dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrMalformedDefinition))
		})
	}
}

func TestLoadExternalRejectsUndefinedNamedPattern(t *testing.T) {
	dir := writeDefinitions(t, "bad.yaml", `
version: v1.0.0
disambiguations:
  - extensions: [".x"]
    rules:
      - language: C
        named_pattern: nonexistent
`)
	payload := &types.DefinitionsPayload{}
	err := LoadExternal(payload, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedDefinition))
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestLoadExternalRejectsUnknownPathRuleKind(t *testing.T) {
	dir := writeDefinitions(t, "bad.yaml", `
version: v1.0.0
path_rules:
  - kind: secret
    pattern: 'x'
`)
	payload := &types.DefinitionsPayload{}
	err := LoadExternal(payload, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedDefinition))
}

func TestLoadExternalIgnoresNonYAML(t *testing.T) {
	dir := writeDefinitions(t, "notes.txt", "not yaml and not a definitions file")
	payload := &types.DefinitionsPayload{}
	require.NoError(t, LoadExternal(payload, dir))
	assert.Empty(t, payload.Languages)
}
