// Package codestats provides an optional code/comment/blank breakdown per
// resolved language, backed by boyter/scc. Files scc cannot parse still get
// raw line counts so the totals stay complete.
package codestats

import (
	"sort"
	"sync"

	"github.com/boyter/scc/v3/processor"
)

var initOnce sync.Once

// Stats holds line-level statistics for one language
type Stats struct {
	Language   string `json:"language"`
	Lines      int64  `json:"lines"`
	Code       int64  `json:"code"`
	Comments   int64  `json:"comments"`
	Blanks     int64  `json:"blanks"`
	Complexity int64  `json:"complexity"`
	Files      int    `json:"files"`
}

// Summary is the aggregated output, sorted by lines descending
type Summary struct {
	Total      Stats   `json:"total"`
	ByLanguage []Stats `json:"by_language"`
}

// Analyzer accumulates per-language code statistics. Safe for concurrent
// use; the aggregator's workers feed it directly.
type Analyzer struct {
	mu         sync.Mutex
	byLanguage map[string]*Stats
	total      Stats
}

// NewAnalyzer creates an empty analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{byLanguage: make(map[string]*Stats)}
}

// ProcessFile counts one file under the given resolved language. Grouping
// follows the identification engine's answer, not scc's own detection; scc
// only supplies the comment and complexity parsing.
func (a *Analyzer) ProcessFile(filename string, language string, content []byte) {
	if language == "" || len(content) == 0 {
		return
	}

	initOnce.Do(processor.ProcessConstants)

	sccLang := ""
	if langs, _ := processor.DetectLanguage(filename); len(langs) > 0 {
		sccLang = langs[0]
	}

	job := &processor.FileJob{
		Filename: filename,
		Language: sccLang,
		Content:  content,
		Bytes:    int64(len(content)),
	}
	processor.CountStats(job)

	a.mu.Lock()
	defer a.mu.Unlock()

	stats := a.byLanguage[language]
	if stats == nil {
		stats = &Stats{Language: language}
		a.byLanguage[language] = stats
	}

	stats.Lines += job.Lines
	stats.Files++
	a.total.Lines += job.Lines
	a.total.Files++

	// Without an scc language the code/comment split is unknown; only the
	// raw line count is credited.
	if sccLang != "" {
		stats.Code += job.Code
		stats.Comments += job.Comment
		stats.Blanks += job.Blank
		stats.Complexity += job.Complexity
		a.total.Code += job.Code
		a.total.Comments += job.Comment
		a.total.Blanks += job.Blank
		a.total.Complexity += job.Complexity
	}
}

// Summary returns the aggregated statistics
func (a *Analyzer) Summary() *Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	summary := &Summary{Total: a.total}
	for _, stats := range a.byLanguage {
		summary.ByLanguage = append(summary.ByLanguage, *stats)
	}
	sort.Slice(summary.ByLanguage, func(i, j int) bool {
		if summary.ByLanguage[i].Lines != summary.ByLanguage[j].Lines {
			return summary.ByLanguage[i].Lines > summary.ByLanguage[j].Lines
		}
		return summary.ByLanguage[i].Language < summary.ByLanguage[j].Language
	})
	return summary
}
