// Package languagedetector identifies the programming language of source
// files and aggregates per-language statistics over directory trees.
//
// The zero-configuration entry point is New, which compiles the embedded
// language definitions into a Detector:
//
//	det, err := languagedetector.New()
//	lang, err := det.Identify("main.py", content)
//
// Definitions can be extended or replaced at runtime with WithDefinitionsDir
// or NewFromPayload.
package languagedetector

import (
	"context"
	"fmt"
	"os"

	"log/slog"

	"github.com/petrarca/language-detector/internal/aggregator"
	"github.com/petrarca/language-detector/internal/knowledge"
	"github.com/petrarca/language-detector/internal/pathfilter"
	"github.com/petrarca/language-detector/internal/provider"
	"github.com/petrarca/language-detector/internal/rules"
	"github.com/petrarca/language-detector/internal/strategy"
	"github.com/petrarca/language-detector/internal/types"
)

// Re-exported types so callers never import internal packages.
type (
	// Language is a single language definition.
	Language = types.Language
	// LanguageType categorizes a language.
	LanguageType = types.LanguageType
	// DefinitionsPayload is the parsed definitions object graph.
	DefinitionsPayload = types.DefinitionsPayload
	// Provider abstracts file system access for tree analysis.
	Provider = types.Provider
	// Report is the aggregate result of a tree analysis.
	Report = aggregator.Report
	// LanguageStat holds the per-language totals inside a Report.
	LanguageStat = aggregator.LanguageStat
)

// Sentinel errors callers match with errors.Is.
var (
	// ErrNoMatch reports that no language could be determined.
	ErrNoMatch = types.ErrNoMatch
	// ErrMalformedDefinition reports invalid definition data.
	ErrMalformedDefinition = types.ErrMalformedDefinition
)

// SampleSize is the number of leading bytes content-based strategies inspect.
const SampleSize = strategy.SampleSize

// Detector resolves languages against a compiled definitions snapshot. It is
// immutable after construction and safe for concurrent use.
type Detector struct {
	payload  *DefinitionsPayload
	kb       *knowledge.Base
	pipeline *strategy.Pipeline
	filter   *pathfilter.Filter
	logger   *slog.Logger
	workers  int
}

// Option configures a Detector during construction
type Option func(*settings)

type settings struct {
	definitionsDir string
	excludes       []string
	logger         *slog.Logger
	workers        int
}

// WithDefinitionsDir overlays definition files from dir onto the embedded
// snapshot
func WithDefinitionsDir(dir string) Option {
	return func(s *settings) { s.definitionsDir = dir }
}

// WithExcludes adds glob patterns to the path filter
func WithExcludes(globs ...string) Option {
	return func(s *settings) { s.excludes = append(s.excludes, globs...) }
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithWorkers bounds the tree analysis worker pool
func WithWorkers(n int) Option {
	return func(s *settings) { s.workers = n }
}

// New builds a Detector from the embedded definitions
func New(opts ...Option) (*Detector, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	payload, err := rules.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	if s.definitionsDir != "" {
		if err := rules.LoadExternal(payload, s.definitionsDir); err != nil {
			return nil, err
		}
	}
	return newDetector(payload, &s)
}

// NewFromPayload builds a Detector from an already-assembled definitions
// payload, bypassing the embedded snapshot entirely
func NewFromPayload(payload *DefinitionsPayload, opts ...Option) (*Detector, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return newDetector(payload, &s)
}

func newDetector(payload *DefinitionsPayload, s *settings) (*Detector, error) {
	kb, err := knowledge.Build(payload)
	if err != nil {
		return nil, err
	}
	filter, err := pathfilter.New(payload.PathRules, s.excludes)
	if err != nil {
		return nil, err
	}

	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		payload:  payload,
		kb:       kb,
		pipeline: strategy.NewPipeline(kb, logger),
		filter:   filter,
		logger:   logger,
		workers:  s.workers,
	}, nil
}

// Identify resolves the language of a file given its path and content. The
// path only needs to carry the basename and extension; it is never read from
// disk. Returns ErrNoMatch when no language can be determined.
func (d *Detector) Identify(path string, content []byte) (*Language, error) {
	return d.pipeline.Identify(&strategy.FileInfo{Path: path, Content: content})
}

// IdentifyFile reads path from disk and resolves its language
func (d *Detector) IdentifyFile(path string) (*Language, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return d.Identify(path, content)
}

// IsVendored reports whether path is vendored or generated code
func (d *Detector) IsVendored(path string) bool {
	return d.filter.IsVendored(path)
}

// IsDocumentation reports whether path is documentation
func (d *Detector) IsDocumentation(path string) bool {
	return d.filter.IsDocumentation(path)
}

// IsExcluded reports whether path is excluded from statistics for any reason
func (d *Detector) IsExcluded(path string) bool {
	return d.filter.IsExcluded(path)
}

// Languages returns all known languages sorted by name
func (d *Detector) Languages() []*Language {
	return d.kb.All()
}

// LanguageByName looks up a language by exact name
func (d *Detector) LanguageByName(name string) *Language {
	return d.kb.ByName(name)
}

// DefinitionsVersion returns the schema version of the definitions in effect
func (d *Detector) DefinitionsVersion() string {
	return d.payload.Version
}

// AnalyzeTree walks the directory tree rooted at path and aggregates
// per-language statistics
func (d *Detector) AnalyzeTree(ctx context.Context, path string) (*Report, error) {
	return d.AnalyzeTreeWithProvider(ctx, provider.NewFSProvider(path))
}

// AnalyzeTreeWithProvider is AnalyzeTree over a custom file system provider
func (d *Detector) AnalyzeTreeWithProvider(ctx context.Context, prov Provider) (*Report, error) {
	analyzer := aggregator.New(d.kb, d.filter, prov, d.logger, aggregator.Options{
		Workers:            d.workers,
		DefinitionsVersion: d.payload.Version,
	})
	return analyzer.Analyze(ctx)
}
