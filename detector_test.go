package languagedetector

import (
	"context"
	"errors"
	"testing"

	"github.com/petrarca/language-detector/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectorIdentify(t *testing.T) {
	det, err := New()
	require.NoError(t, err)

	tests := []struct {
		path    string
		content string
		want    string
	}{
		{"main.py", "import os\n", "Python"},
		{"Rakefile", "task :default\n", "Ruby"},
		{"server.go", "package main\n", "Go"},
		{"run", "#!/usr/bin/env bash\necho hi\n", "Shell"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			lang, err := det.Identify(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, lang.Name)
		})
	}
}

func TestDetectorIdentifyNoMatch(t *testing.T) {
	det, err := New()
	require.NoError(t, err)

	_, err = det.Identify("mystery", []byte("nothing identifiable\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatch))
}

func TestDetectorPathPredicates(t *testing.T) {
	det, err := New()
	require.NoError(t, err)

	assert.True(t, det.IsVendored("vendor/lib/x.js"))
	assert.True(t, det.IsDocumentation("docs/guide.md"))
	assert.True(t, det.IsExcluded("node_modules/left-pad/index.js"))
	assert.False(t, det.IsExcluded("src/main.go"))
}

func TestDetectorWithExcludes(t *testing.T) {
	det, err := New(WithExcludes("**/testdata/**"))
	require.NoError(t, err)

	assert.True(t, det.IsExcluded("pkg/testdata/fixture.go"))
	assert.False(t, det.IsExcluded("pkg/parser.go"))
}

func TestDetectorLanguageLookup(t *testing.T) {
	det, err := New()
	require.NoError(t, err)

	langs := det.Languages()
	assert.Greater(t, len(langs), 40)

	python := det.LanguageByName("Python")
	require.NotNil(t, python)
	assert.Contains(t, python.Extensions, ".py")

	assert.Nil(t, det.LanguageByName("Klingon"))
	assert.NotEmpty(t, det.DefinitionsVersion())
}

func TestNewFromPayload(t *testing.T) {
	payload := &DefinitionsPayload{
		Version: "v1.0.0",
		Languages: []Language{
			{Name: "Ini", Type: "data", Extensions: []string{".ini"}},
		},
	}

	det, err := NewFromPayload(payload)
	require.NoError(t, err)

	lang, err := det.Identify("settings.ini", []byte("[core]\n"))
	require.NoError(t, err)
	assert.Equal(t, "Ini", lang.Name)

	// the embedded snapshot is bypassed entirely
	_, err = det.Identify("main.py", []byte("import os\n"))
	assert.True(t, errors.Is(err, ErrNoMatch))
}

func TestAnalyzeTreeWithProvider(t *testing.T) {
	det, err := New(WithWorkers(2))
	require.NoError(t, err)

	prov := provider.NewFakeProvider()
	prov.AddFile("main.go", "package main\n")
	prov.AddFile("tool.py", "import sys\n")
	prov.AddDir("vendor")
	prov.AddFile("vendor/dep.js", "var x;\n")

	report, err := det.AnalyzeTreeWithProvider(context.Background(), prov)
	require.NoError(t, err)

	assert.Len(t, report.Languages, 2)
	assert.Equal(t, 1, report.Languages["Go"].Files)
	assert.Equal(t, 1, report.Languages["Python"].Files)
	assert.Equal(t, 1, report.Excluded.Files)
	assert.Equal(t, 0, report.Unknown.Files)
}
