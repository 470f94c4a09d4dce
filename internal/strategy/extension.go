package strategy

import "github.com/petrarca/language-detector/internal/knowledge"

// Extension intersects the current candidates with the knowledge base's
// extension index
type Extension struct {
	kb *knowledge.Base
}

// NewExtension creates the extension strategy
func NewExtension(kb *knowledge.Base) *Extension {
	return &Extension{kb: kb}
}

func (s *Extension) Name() string { return "extension" }

// Apply seeds or narrows by the file's extension. A file without a
// recognized extension leaves the incoming set untouched; the pipeline
// decides what an unseeded set means after this point.
func (s *Extension) Apply(file *FileInfo, candidates knowledge.CandidateSet, seeded bool) Result {
	ext := file.Extension()
	if ext == "" {
		return Result{Candidates: candidates, Seeded: seeded}
	}

	matched := s.kb.ByExtension(ext)
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
