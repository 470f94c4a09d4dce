package aggregator

import (
	"sort"

	"github.com/petrarca/language-detector/internal/codestats"
	"github.com/petrarca/language-detector/internal/gitinfo"
	"github.com/petrarca/language-detector/internal/metadata"
	"github.com/petrarca/language-detector/internal/types"
)

// LanguageStat accumulates totals for one resolved language
type LanguageStat struct {
	Language string             `json:"language"`
	Type     types.LanguageType `json:"type"`
	Bytes    int64              `json:"bytes"`
	Lines    int64              `json:"lines"`
	Files    int                `json:"files"`
}

// Bucket tallies files outside the per-language breakdown
type Bucket struct {
	Bytes int64 `json:"bytes"`
	Files int   `json:"files"`
}

// Report is the aggregate result of one tree analysis. It is mutated only
// while the analysis runs; accumulations are never retroactively revised.
type Report struct {
	Metadata  *metadata.ReportMetadata `json:"metadata,omitempty"`
	Git       *gitinfo.Info            `json:"git,omitempty"`
	Languages map[string]*LanguageStat `json:"languages"`
	// Unknown tallies files that could not be resolved; they are reported,
	// never silently dropped.
	Unknown Bucket `json:"unknown"`
	// Excluded tallies files the path filter kept out of statistics
	Excluded  Bucket             `json:"excluded"`
	Licenses  []string           `json:"licenses,omitempty"`
	CodeStats *codestats.Summary `json:"code_stats,omitempty"`
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{Languages: make(map[string]*LanguageStat)}
}

// Add credits one resolved file to a language
func (r *Report) Add(lang *types.Language, name string, bytes, lines int64) {
	stat := r.Languages[name]
	if stat == nil {
		stat = &LanguageStat{Language: name, Type: lang.Type}
		r.Languages[name] = stat
	}
	stat.Bytes += bytes
	stat.Lines += lines
	stat.Files++
}

// AddUnknown tallies an unresolvable file
func (r *Report) AddUnknown(bytes int64) {
	r.Unknown.Bytes += bytes
	r.Unknown.Files++
}

// AddExcluded tallies a filtered-out file
func (r *Report) AddExcluded(bytes int64) {
	r.Excluded.Bytes += bytes
	r.Excluded.Files++
}

// Merge folds other into r. Used to combine per-worker partial reports.
func (r *Report) Merge(other *Report) {
	for name, stat := range other.Languages {
		existing := r.Languages[name]
		if existing == nil {
			copied := *stat
			r.Languages[name] = &copied
			continue
		}
		existing.Bytes += stat.Bytes
		existing.Lines += stat.Lines
		existing.Files += stat.Files
	}
	r.Unknown.Bytes += other.Unknown.Bytes
	r.Unknown.Files += other.Unknown.Files
	r.Excluded.Bytes += other.Excluded.Bytes
	r.Excluded.Files += other.Excluded.Files
}

// Sorted returns the language stats ordered by bytes descending, then name,
// for stable presentation
func (r *Report) Sorted() []*LanguageStat {
	stats := make([]*LanguageStat, 0, len(r.Languages))
	for _, stat := range r.Languages {
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bytes != stats[j].Bytes {
			return stats[i].Bytes > stats[j].Bytes
		}
		return stats[i].Language < stats[j].Language
	})
	return stats
}

// TotalFiles returns the number of files credited to a language
func (r *Report) TotalFiles() int {
	total := 0
	for _, stat := range r.Languages {
		total += stat.Files
	}
	return total
}
