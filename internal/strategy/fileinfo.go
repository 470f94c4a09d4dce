package strategy

import (
	"bytes"
	"path/filepath"
	"strings"
)

// SampleSize is the bounded content prefix strategies and the classifier
// operate on. Applying one bound everywhere keeps results deterministic
// regardless of how the caller chunked its reads.
const SampleSize = 512 * 1024

// FileInfo carries a file's path and raw content plus the derived attributes
// the strategies consume
type FileInfo struct {
	Path    string
	Content []byte
}

// Basename returns the file's base name
func (f *FileInfo) Basename() string {
	return filepath.Base(f.Path)
}

// Extension returns the lowercased extension including the dot, or "" when
// the file has none. Dotfiles like ".bashrc" have no extension.
func (f *FileInfo) Extension() string {
	base := f.Basename()
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.ToLower(ext)
}

// Sample returns the bounded content prefix used for heuristics and
// classification
func (f *FileInfo) Sample() []byte {
	if len(f.Content) <= SampleSize {
		return f.Content
	}
	return f.Content[:SampleSize]
}

// FirstLine returns the first line of content without its line ending
func (f *FileInfo) FirstLine() string {
	sample := f.Sample()
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}
	return strings.TrimRight(string(sample), "\r")
}

// HeadLines returns up to n lines from the start of the sample
func (f *FileInfo) HeadLines(n int) []string {
	lines := splitLines(f.Sample())
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// TailLines returns up to n lines from the end of the sample
func (f *FileInfo) TailLines(n int) []string {
	lines := splitLines(f.Sample())
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
