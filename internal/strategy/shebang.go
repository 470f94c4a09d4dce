package strategy

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/petrarca/language-detector/internal/knowledge"
)

var (
	envOptArgs = regexp.MustCompile(`^-[a-zA-Z]+$`)
	envVarArgs = regexp.MustCompile(`^\$[a-zA-Z_]+$`)
	// versioned interpreters like python2.7 collapse to their major name
	versionedInterpreter = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*[0-9]*\.[0-9]+$`)
	// shell trampolines that re-exec the real interpreter a few lines down
	execLine = regexp.MustCompile(`^\s*exec\s+(?:-[a-zA-Z]+\s+)*(\S+)`)
)

// shellWrappers are interpreters that commonly only wrap an exec of the real
// one, so the following lines are scanned for it
var shellWrappers = map[string]bool{"sh": true, "bash": true, "dash": true, "ksh": true, "zsh": true}

// Shebang extracts the interpreter from a "#!" first line and intersects
// with the knowledge base's interpreter index. An empty intersection is
// discarded; the strategy never invalidates the prior set.
type Shebang struct {
	kb *knowledge.Base
}

// NewShebang creates the shebang strategy
func NewShebang(kb *knowledge.Base) *Shebang {
	return &Shebang{kb: kb}
}

func (s *Shebang) Name() string { return "shebang" }

// Apply seeds or narrows by the parsed interpreter
func (s *Shebang) Apply(file *FileInfo, candidates knowledge.CandidateSet, seeded bool) Result {
	interpreter := ParseInterpreter(file)
	if interpreter == "" {
		return Result{Candidates: candidates, Seeded: seeded}
	}

	matched := s.kb.ByInterpreter(interpreter)
	if len(matched) == 0 {
		return Result{Candidates: candidates, Seeded: seeded}
	}

	if seeded {
		if narrowed := candidates.Intersect(matched); len(narrowed) > 0 {
			return Result{Candidates: narrowed, Seeded: true}
		}
		return Result{Candidates: candidates, Seeded: true}
	}
	return Result{Candidates: matched, Seeded: true}
}

// ParseInterpreter extracts the interpreter name from the file's shebang
// line, resolving env wrappers, versioned names and shell exec trampolines.
// Returns "" when the file has no usable shebang.
func ParseInterpreter(file *FileInfo) string {
	line := file.FirstLine()
	if !strings.HasPrefix(line, "#!") {
		return ""
	}

	fields := strings.Fields(strings.TrimSpace(line[2:]))
	if len(fields) == 0 {
		return ""
	}

	interpreter := filepath.Base(fields[0])
	if interpreter == "env" {
		if len(fields) == 1 {
			return ""
		}
		// skip env's own options and variable assignments: #!/usr/bin/env -S python3
		args := fields[1:]
		for len(args) > 1 && (envOptArgs.MatchString(args[0]) || envVarArgs.MatchString(args[0])) {
			args = args[1:]
		}
		interpreter = filepath.Base(args[0])
	}

	// osascript -l may run a different language entirely, so the shebang
	// carries no usable signal
	if interpreter == "osascript" && strings.Contains(line, "-l") {
		return ""
	}

	if shellWrappers[interpreter] {
		if target := findExecTarget(file); target != "" {
			interpreter = target
		}
	}

	if versionedInterpreter.MatchString(interpreter) {
		interpreter = interpreter[:strings.IndexByte(interpreter, '.')]
	}

	return interpreter
}

// findExecTarget scans the lines after the shebang for an exec of the real
// interpreter, e.g. #!/bin/sh followed by exec perl -w "$0"
func findExecTarget(file *FileInfo) string {
	lines := file.HeadLines(6)
	if len(lines) < 2 {
		return ""
	}
	for _, line := range lines[1:] {
		if m := execLine.FindStringSubmatch(line); m != nil {
			return filepath.Base(m[1])
		}
	}
	return ""
}
