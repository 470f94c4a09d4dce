package progress

import (
	"os"
	"time"
)

// EventType represents the type of progress event
type EventType int

const (
	EventScanStart EventType = iota
	EventScanComplete
	EventEnterDirectory
	EventFileResolved
	EventFileUnknown
	EventFileExcluded
)

// Event represents something that happened during an analysis
type Event struct {
	Type      EventType
	Path      string
	Language  string
	Info      string
	FileCount int
	Duration  time.Duration
}

// Handler processes events and produces output
type Handler interface {
	Handle(event Event)
}

// Progress is the verbose reporting channel for a tree analysis. A nil
// or disabled Progress swallows all events, so callers never guard calls.
type Progress struct {
	enabled bool
	handler Handler
}

// New creates a new progress reporter
func New(enabled bool, handler Handler) *Progress {
	if handler == nil {
		handler = NewSimpleHandler(os.Stderr)
	}
	return &Progress{enabled: enabled, handler: handler}
}

// Report sends an event to the handler (only if enabled)
func (p *Progress) Report(event Event) {
	if p == nil || !p.enabled {
		return
	}
	p.handler.Handle(event)
}

func (p *Progress) ScanStart(path string, excludeInfo string) {
	p.Report(Event{Type: EventScanStart, Path: path, Info: excludeInfo})
}

func (p *Progress) ScanComplete(files int, duration time.Duration) {
	p.Report(Event{Type: EventScanComplete, FileCount: files, Duration: duration})
}

func (p *Progress) EnterDirectory(path string) {
	p.Report(Event{Type: EventEnterDirectory, Path: path})
}

func (p *Progress) FileResolved(path, language string) {
	p.Report(Event{Type: EventFileResolved, Path: path, Language: language})
}

func (p *Progress) FileUnknown(path string, reason string) {
	p.Report(Event{Type: EventFileUnknown, Path: path, Info: reason})
}

func (p *Progress) FileExcluded(path string) {
	p.Report(Event{Type: EventFileExcluded, Path: path})
}
