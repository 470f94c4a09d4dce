package aggregator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"log/slog"

	"github.com/go-enry/go-enry/v2"
	"golang.org/x/sync/errgroup"

	"github.com/petrarca/language-detector/internal/codestats"
	"github.com/petrarca/language-detector/internal/gitinfo"
	"github.com/petrarca/language-detector/internal/knowledge"
	"github.com/petrarca/language-detector/internal/license"
	"github.com/petrarca/language-detector/internal/metadata"
	"github.com/petrarca/language-detector/internal/pathfilter"
	"github.com/petrarca/language-detector/internal/progress"
	"github.com/petrarca/language-detector/internal/strategy"
	"github.com/petrarca/language-detector/internal/types"
)

// Options controls which optional sections an analysis produces
type Options struct {
	Workers            int
	CodeStats          bool
	GitInfo            bool
	Licenses           bool
	GroupRollup        bool
	DefinitionsVersion string
	Properties         map[string]interface{}
}

// Analyzer walks a directory tree and aggregates per-language statistics.
// Identification of each file is independent, so files fan out over a
// bounded worker pool; the report itself is guarded by a mutex.
type Analyzer struct {
	kb       *knowledge.Base
	pipeline *strategy.Pipeline
	filter   *pathfilter.Filter
	provider types.Provider
	logger   *slog.Logger
	progress *progress.Progress
	opts     Options
}

// fileTask is one unit of work for the pool. Excluded files are carried
// through so the report can tally them without reading content.
type fileTask struct {
	relPath  string
	size     int64
	excluded bool
}

// New creates an analyzer over the given knowledge base and path filter
func New(kb *knowledge.Base, filter *pathfilter.Filter, prov types.Provider, logger *slog.Logger, opts Options) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Analyzer{
		kb:       kb,
		pipeline: strategy.NewPipeline(kb, logger),
		filter:   filter,
		provider: prov,
		logger:   logger,
		opts:     opts,
	}
}

// SetProgress attaches a verbose progress reporter. A nil reporter is valid
// and reports nothing.
func (a *Analyzer) SetProgress(p *progress.Progress) {
	a.progress = p
}

// Analyze walks the provider's base path and returns the aggregate report
func (a *Analyzer) Analyze(ctx context.Context) (*Report, error) {
	basePath := a.provider.GetBasePath()
	startTime := time.Now()

	meta := metadata.NewReportMetadata(basePath, a.opts.DefinitionsVersion)
	meta.Properties = a.opts.Properties

	report := NewReport()
	report.Metadata = meta

	if a.opts.GitInfo {
		report.Git = gitinfo.Get(basePath)
	}
	if a.opts.Licenses {
		report.Licenses = license.Names(license.DetectInDirectory(basePath))
	}

	var stats *codestats.Analyzer
	if a.opts.CodeStats {
		stats = codestats.NewAnalyzer()
	}

	a.logger.Debug("starting tree analysis", "path", basePath, "workers", a.opts.Workers)
	a.progress.ScanStart(basePath, "")

	var tasks []fileTask
	if err := a.collect(basePath, "", false, &tasks); err != nil {
		return nil, fmt.Errorf("listing %s: %w", basePath, err)
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.opts.Workers)

	for _, task := range tasks {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			a.processFile(task, report, stats, &mu)
			return groupCtx.Err()
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if stats != nil {
		report.CodeStats = stats.Summary()
	}

	meta.SetDuration(time.Since(startTime))
	meta.SetCounts(report.TotalFiles()+report.Unknown.Files, len(report.Languages))
	a.progress.ScanComplete(meta.FileCount, time.Since(startTime))

	a.logger.Debug("tree analysis complete",
		"files", meta.FileCount,
		"languages", meta.LanguageCount,
		"unknown", report.Unknown.Files,
		"excluded", report.Excluded.Files,
		"duration", time.Since(startTime))

	return report, nil
}

// collect gathers file tasks depth-first. Directories that match an exclusion
// rule are still descended so their files land in the excluded tally, but
// none of their content is ever read.
func (a *Analyzer) collect(basePath, relDir string, excluded bool, tasks *[]fileTask) error {
	a.progress.EnterDirectory(relDir)
	entries, err := a.provider.ListDir(filepath.Join(basePath, relDir))
	if err != nil {
		if relDir == "" {
			return err
		}
		a.logger.Debug("skipping unreadable directory", "path", relDir, "error", err)
		return nil
	}

	for _, entry := range entries {
		rel := path.Join(relDir, entry.Name)
		if entry.Type == "dir" {
			childExcluded := excluded || a.filter.IsExcluded(rel+"/")
			if err := a.collect(basePath, rel, childExcluded, tasks); err != nil {
				return err
			}
			continue
		}
		*tasks = append(*tasks, fileTask{
			relPath:  rel,
			size:     entry.Size,
			excluded: excluded || a.filter.IsExcluded(rel),
		})
	}
	return nil
}

// processFile resolves one file and folds the outcome into the report
func (a *Analyzer) processFile(task fileTask, report *Report, stats *codestats.Analyzer, mu *sync.Mutex) {
	if task.excluded {
		a.progress.FileExcluded(task.relPath)
		mu.Lock()
		report.AddExcluded(task.size)
		mu.Unlock()
		return
	}

	content, err := a.provider.ReadFile(filepath.Join(a.provider.GetBasePath(), task.relPath))
	if err != nil {
		a.logger.Debug("unreadable file counted as unknown", "path", task.relPath, "error", err)
		a.progress.FileUnknown(task.relPath, "unreadable")
		mu.Lock()
		report.AddUnknown(task.size)
		mu.Unlock()
		return
	}

	file := &strategy.FileInfo{Path: task.relPath, Content: content}
	if enry.IsBinary(file.Sample()) {
		a.progress.FileExcluded(task.relPath)
		mu.Lock()
		report.AddExcluded(int64(len(content)))
		mu.Unlock()
		return
	}

	lang, err := a.pipeline.Identify(file)
	if err != nil {
		if !errors.Is(err, types.ErrNoMatch) {
			a.logger.Debug("identification failed", "path", task.relPath, "error", err)
		}
		a.progress.FileUnknown(task.relPath, "")
		mu.Lock()
		report.AddUnknown(int64(len(content)))
		mu.Unlock()
		return
	}

	name := lang.Name
	if a.opts.GroupRollup && lang.Group != "" {
		name = lang.Group
		if group := a.kb.ByName(lang.Group); group != nil {
			lang = group
		}
	}

	if stats != nil {
		stats.ProcessFile(task.relPath, lang.Name, content)
	}
	a.progress.FileResolved(task.relPath, name)

	mu.Lock()
	report.Add(lang, name, int64(len(content)), countLines(content))
	mu.Unlock()
}

// countLines counts newline-terminated lines plus a trailing partial line
func countLines(content []byte) int64 {
	if len(content) == 0 {
		return 0
	}
	lines := int64(bytes.Count(content, []byte{'\n'}))
	if content[len(content)-1] != '\n' {
		lines++
	}
	return lines
}
