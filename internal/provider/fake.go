package provider

import (
	"fmt"
	"path/filepath"

	"github.com/petrarca/language-detector/internal/types"
)

// FakeProvider implements the Provider interface for testing
type FakeProvider struct {
	files   map[string][]types.File
	content map[string]string
}

// NewFakeProvider creates a new fake provider
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		files:   make(map[string][]types.File),
		content: make(map[string]string),
	}
}

// AddFile adds a file with content to the fake provider
func (p *FakeProvider) AddFile(path, content string) {
	dir := filepath.Dir(path)

	p.files[dir] = append(p.files[dir], types.File{
		Name: filepath.Base(path),
		Path: path,
		Type: "file",
		Size: int64(len(content)),
	})

	p.content[path] = content
}

// AddDir adds an empty directory to the fake provider
func (p *FakeProvider) AddDir(path string) {
	if p.files[path] == nil {
		p.files[path] = make([]types.File, 0)
	}

	parent := filepath.Dir(path)
	if parent != path {
		p.files[parent] = append(p.files[parent], types.File{
			Name: filepath.Base(path),
			Path: path,
			Type: "dir",
		})
	}
}

// ListDir returns the contents of a directory
func (p *FakeProvider) ListDir(path string) ([]types.File, error) {
	return p.files[path], nil
}

// ReadFile reads file content as bytes
func (p *FakeProvider) ReadFile(path string) ([]byte, error) {
	content, ok := p.content[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return []byte(content), nil
}

// Exists checks if a file or directory exists
func (p *FakeProvider) Exists(path string) (bool, error) {
	if _, ok := p.content[path]; ok {
		return true, nil
	}
	_, ok := p.files[path]
	return ok, nil
}

// IsDir checks if a path is a directory
func (p *FakeProvider) IsDir(path string) (bool, error) {
	if _, ok := p.content[path]; ok {
		return false, nil
	}
	_, ok := p.files[path]
	return ok, nil
}

// GetBasePath returns the base path for this provider
func (p *FakeProvider) GetBasePath() string {
	return "."
}
