package strategy

import (
	"regexp"

	"github.com/petrarca/language-detector/internal/knowledge"
)

// modelineSearchLines is how many lines are scanned at each end of the file
const modelineSearchLines = 5

var (
	// -*- mode: ruby -*-  or  -*- ruby -*-
	emacsModeline = regexp.MustCompile(`-\*-\s*(?:[Mm]ode:\s*)?([A-Za-z0-9+#_-]+)\s*(?:;.*)?-\*-`)
	// vim: set ft=ruby:  /  vim: ft=ruby  /  ex: se syntax=ruby:
	vimModeline = regexp.MustCompile(`(?:vim?|ex):\s*(?:set?\s+)?(?:ft|filetype|syntax)\s*=\s*([A-Za-z0-9+#_-]+)`)
)

// Modeline scans the first and last few lines for an editor mode
// declaration. A declared mode that maps to a language still in the running
// narrows to that single language and short-circuits: explicit author intent
// outranks heuristics and statistics.
type Modeline struct {
	kb *knowledge.Base
}

// NewModeline creates the modeline strategy
func NewModeline(kb *knowledge.Base) *Modeline {
	return &Modeline{kb: kb}
}

func (s *Modeline) Name() string { return "modeline" }

// Apply narrows to the declared mode when it names a current candidate
func (s *Modeline) Apply(file *FileInfo, candidates knowledge.CandidateSet, seeded bool) Result {
	mode := ParseModeline(file)
	if mode == "" {
		return Result{Candidates: candidates, Seeded: seeded}
	}

	for _, lang := range candidates {
		if lang.Matches(mode) {
			return Result{
				Candidates:    knowledge.CandidateSet{lang},
				Seeded:        true,
				Authoritative: true,
			}
		}
	}
	return Result{Candidates: candidates, Seeded: seeded}
}

// ParseModeline extracts the declared editor mode from the head or tail of
// the file, or "" when none is present
func ParseModeline(file *FileInfo) string {
	lines := file.HeadLines(modelineSearchLines)
	lines = append(lines, file.TailLines(modelineSearchLines)...)

	for _, line := range lines {
		if m := emacsModeline.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		if m := vimModeline.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}
