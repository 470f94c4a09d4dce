package strategy

import "github.com/petrarca/language-detector/internal/knowledge"

// Heuristics evaluates the ordered per-extension content rules. The first
// rule whose pattern matches the sample decides, provided its languages
// intersect the current candidates; a rule pointing at languages no longer
// in the running has no effect and evaluation moves on.
type Heuristics struct {
	kb *knowledge.Base
}

// NewHeuristics creates the heuristics strategy
func NewHeuristics(kb *knowledge.Base) *Heuristics {
	return &Heuristics{kb: kb}
}

func (s *Heuristics) Name() string { return "heuristics" }

// Apply narrows by the first matching content rule for the file's extension
func (s *Heuristics) Apply(file *FileInfo, candidates knowledge.CandidateSet, seeded bool) Result {
	if len(candidates) <= 1 {
		return Result{Candidates: candidates, Seeded: seeded}
	}

	rules := s.kb.HeuristicsFor(file.Extension())
	if len(rules) == 0 {
		return Result{Candidates: candidates, Seeded: seeded}
	}

	sample := file.Sample()
	for _, rule := range rules {
		if !rule.Match(sample) {
			continue
		}
		if narrowed := candidates.IntersectNames(rule.Languages); len(narrowed) > 0 {
			return Result{Candidates: narrowed, Seeded: true}
		}
	}
	return Result{Candidates: candidates, Seeded: seeded}
}
