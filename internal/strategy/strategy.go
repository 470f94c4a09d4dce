// Package strategy implements the ordered cascade of narrowing steps that
// reduces the full language universe down to a single answer for one file.
// Each strategy receives the current candidate set and either narrows it,
// leaves it alone, or (for the seeding strategies) derives a fresh set from
// file attributes while the set is still the full universe.
package strategy

import "github.com/petrarca/language-detector/internal/knowledge"

// Result is what a strategy hands back to the pipeline
type Result struct {
	// Candidates is the possibly-narrowed set. Strategies never return an
	// empty set; when a narrowing would empty it the strategy keeps the
	// incoming set instead.
	Candidates knowledge.CandidateSet
	// Seeded is true once some strategy has formed an opinion, i.e. the set
	// is no longer "all languages".
	Seeded bool
	// Authoritative short-circuits the pipeline when the set has exactly one
	// member. Filename and modeline matches are authoritative: an exact
	// basename match or explicit author intent outranks heuristics and
	// statistics.
	Authoritative bool
}

// Strategy is one narrowing step of the identification pipeline
type Strategy interface {
	Name() string
	// Apply narrows candidates for the file. seeded is false while the
	// incoming set is still the full universe.
	Apply(file *FileInfo, candidates knowledge.CandidateSet, seeded bool) Result
}
