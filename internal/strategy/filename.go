package strategy

import "github.com/petrarca/language-detector/internal/knowledge"

// Filename matches the exact basename against the knowledge base.
// A unique match is authoritative: a file named Dockerfile is Dockerfile
// regardless of extension or content.
type Filename struct {
	kb *knowledge.Base
}

// NewFilename creates the filename strategy
func NewFilename(kb *knowledge.Base) *Filename {
	return &Filename{kb: kb}
}

func (s *Filename) Name() string { return "filename" }

// Apply seeds or narrows by exact basename
func (s *Filename) Apply(file *FileInfo, candidates knowledge.CandidateSet, seeded bool) Result {
	matched := s.kb.ByFilename(file.Basename())
	if len(matched) == 0 {
		return Result{Candidates: candidates, Seeded: seeded}
	}

	if seeded {
		if narrowed := candidates.Intersect(matched); len(narrowed) > 0 {
			return Result{Candidates: narrowed, Seeded: true, Authoritative: true}
		}
		return Result{Candidates: candidates, Seeded: true}
	}
	return Result{Candidates: matched, Seeded: true, Authoritative: true}
}
