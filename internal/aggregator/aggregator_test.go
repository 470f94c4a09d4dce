package aggregator

import (
	"context"
	"log/slog"
	"testing"

	"github.com/petrarca/language-detector/internal/knowledge"
	"github.com/petrarca/language-detector/internal/pathfilter"
	"github.com/petrarca/language-detector/internal/provider"
	"github.com/petrarca/language-detector/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T, prov *provider.FakeProvider, opts Options) *Analyzer {
	t.Helper()

	payload, err := rules.LoadEmbedded()
	require.NoError(t, err)
	kb, err := knowledge.Build(payload)
	require.NoError(t, err)
	filter, err := pathfilter.New(payload.PathRules, nil)
	require.NoError(t, err)

	return New(kb, filter, prov, slog.Default(), opts)
}

func TestAnalyzeCountsLanguages(t *testing.T) {
	prov := provider.NewFakeProvider()
	prov.AddFile("main.go", "package main\n\nfunc main() {}\n")
	prov.AddFile("util.go", "package main\n")
	prov.AddDir("scripts")
	prov.AddFile("scripts/setup.py", "import os\n")

	analyzer := newTestAnalyzer(t, prov, Options{Workers: 1})
	report, err := analyzer.Analyze(context.Background())
	require.NoError(t, err)

	golang := report.Languages["Go"]
	require.NotNil(t, golang)
	assert.Equal(t, 2, golang.Files)
	assert.Equal(t, int64(42), golang.Bytes)
	assert.Equal(t, int64(4), golang.Lines)

	python := report.Languages["Python"]
	require.NotNil(t, python)
	assert.Equal(t, 1, python.Files)

	assert.Equal(t, 0, report.Unknown.Files)
	assert.Equal(t, 0, report.Excluded.Files)
	assert.Equal(t, 3, report.Metadata.FileCount)
	assert.Equal(t, 2, report.Metadata.LanguageCount)
}

func TestAnalyzeVendoredFilesExcluded(t *testing.T) {
	prov := provider.NewFakeProvider()
	prov.AddFile("app.js", "console.log(1);\n")
	prov.AddDir("vendor")
	prov.AddDir("vendor/lib")
	prov.AddFile("vendor/lib/jquery.js", "var $ = {};\n")
	prov.AddFile("bundle.min.js", "!function(){}();\n")

	analyzer := newTestAnalyzer(t, prov, Options{Workers: 1})
	report, err := analyzer.Analyze(context.Background())
	require.NoError(t, err)

	// vendored directory contents and minified files stay out of the
	// language breakdown but still show up in the excluded tally
	assert.Equal(t, 2, report.Excluded.Files)
	require.NotNil(t, report.Languages["JavaScript"])
	assert.Equal(t, 1, report.Languages["JavaScript"].Files)
}

func TestAnalyzeBinaryFilesExcluded(t *testing.T) {
	prov := provider.NewFakeProvider()
	prov.AddFile("main.go", "package main\n")
	// no recognizable extension, so only the content sniff can reject it
	prov.AddFile("snapshot", "PNG\x00\x00\x01\x02binary junk")

	analyzer := newTestAnalyzer(t, prov, Options{Workers: 1})
	report, err := analyzer.Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Excluded.Files)
	assert.Equal(t, 0, report.Unknown.Files)
	assert.Len(t, report.Languages, 1)
}

func TestAnalyzeUnresolvableFilesCountedAsUnknown(t *testing.T) {
	prov := provider.NewFakeProvider()
	prov.AddFile("notes", "some free-form text without any signal\n")

	analyzer := newTestAnalyzer(t, prov, Options{Workers: 1})
	report, err := analyzer.Analyze(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Languages)
	assert.Equal(t, 1, report.Unknown.Files)
	assert.Equal(t, int64(39), report.Unknown.Bytes)
	assert.Equal(t, 1, report.Metadata.FileCount)
}

func TestAnalyzeGroupRollup(t *testing.T) {
	prov := provider.NewFakeProvider()
	prov.AddFile("theme.scss", "$color: red;\nbody { color: $color; }\n")
	prov.AddFile("base.css", "body { margin: 0; }\n")

	analyzer := newTestAnalyzer(t, prov, Options{Workers: 1, GroupRollup: true})
	report, err := analyzer.Analyze(context.Background())
	require.NoError(t, err)

	// SCSS rolls up into its CSS group
	require.NotNil(t, report.Languages["CSS"])
	assert.Equal(t, 2, report.Languages["CSS"].Files)
	assert.Nil(t, report.Languages["SCSS"])
}

func TestAnalyzeWorkerCountDoesNotChangeResult(t *testing.T) {
	build := func() *provider.FakeProvider {
		prov := provider.NewFakeProvider()
		prov.AddFile("a.go", "package a\n")
		prov.AddFile("b.py", "import sys\n")
		prov.AddFile("c.rb", "puts 1\n")
		prov.AddDir("vendor")
		prov.AddFile("vendor/x.js", "var x;\n")
		prov.AddFile("mystery", "nothing identifiable here\n")
		return prov
	}

	serial, err := newTestAnalyzer(t, build(), Options{Workers: 1}).Analyze(context.Background())
	require.NoError(t, err)
	parallel, err := newTestAnalyzer(t, build(), Options{Workers: 4}).Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, serial.Languages, parallel.Languages)
	assert.Equal(t, serial.Unknown, parallel.Unknown)
	assert.Equal(t, serial.Excluded, parallel.Excluded)
}

func TestAnalyzeCodeStats(t *testing.T) {
	prov := provider.NewFakeProvider()
	prov.AddFile("main.go", "package main\n\n// entry point\nfunc main() {}\n")

	analyzer := newTestAnalyzer(t, prov, Options{Workers: 1, CodeStats: true})
	report, err := analyzer.Analyze(context.Background())
	require.NoError(t, err)

	require.NotNil(t, report.CodeStats)
}

func TestAnalyzeMetadataProperties(t *testing.T) {
	prov := provider.NewFakeProvider()
	prov.AddFile("main.go", "package main\n")

	opts := Options{
		Workers:            1,
		DefinitionsVersion: "v1.0.0",
		Properties:         map[string]interface{}{"team": "platform"},
	}
	report, err := newTestAnalyzer(t, prov, opts).Analyze(context.Background())
	require.NoError(t, err)

	require.NotNil(t, report.Metadata)
	assert.Equal(t, "v1.0.0", report.Metadata.DefinitionsVersion)
	assert.Equal(t, "platform", report.Metadata.Properties["team"])
}
