package metadata

import (
	"path/filepath"
	"time"
)

// ReportMetadata describes one analysis run
type ReportMetadata struct {
	Timestamp          string                 `json:"timestamp"`
	ScanPath           string                 `json:"scan_path"`
	DefinitionsVersion string                 `json:"definitions_version"`
	DurationMs         int64                  `json:"duration_ms,omitempty"`
	FileCount          int                    `json:"file_count,omitempty"`
	LanguageCount      int                    `json:"language_count,omitempty"`
	Properties         map[string]interface{} `json:"properties,omitempty"`
}

// NewReportMetadata creates metadata for a run over scanPath
func NewReportMetadata(scanPath string, definitionsVersion string) *ReportMetadata {
	absPath, _ := filepath.Abs(scanPath)

	return &ReportMetadata{
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
		ScanPath:           absPath,
		DefinitionsVersion: definitionsVersion,
	}
}

// SetDuration records the run duration in milliseconds
func (m *ReportMetadata) SetDuration(duration time.Duration) {
	m.DurationMs = duration.Milliseconds()
}

// SetCounts records the resolved file count and distinct language count
func (m *ReportMetadata) SetCounts(fileCount, languageCount int) {
	m.FileCount = fileCount
	m.LanguageCount = languageCount
}
