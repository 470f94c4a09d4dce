package knowledge

import (
	"sort"

	"github.com/petrarca/language-detector/internal/types"
)

// CandidateSet is the subset of known languages still considered possible
// for a file at a given pipeline stage. It is kept sorted by name so every
// downstream decision is reproducible regardless of index iteration order.
type CandidateSet []*types.Language

// NewCandidateSet copies and normalizes langs into a CandidateSet
func NewCandidateSet(langs []*types.Language) CandidateSet {
	set := make(CandidateSet, len(langs))
	copy(set, langs)
	sort.Slice(set, func(i, j int) bool { return set[i].Name < set[j].Name })
	return set
}

// Contains reports membership by language name
func (s CandidateSet) Contains(name string) bool {
	for _, lang := range s {
		if lang.Name == name {
			return true
		}
	}
	return false
}

// Intersect returns the candidates present in both sets
func (s CandidateSet) Intersect(other CandidateSet) CandidateSet {
	result := make(CandidateSet, 0, len(s))
	for _, lang := range s {
		if other.Contains(lang.Name) {
			result = append(result, lang)
		}
	}
	return result
}

// IntersectNames returns the candidates whose name appears in names
func (s CandidateSet) IntersectNames(names []string) CandidateSet {
	result := make(CandidateSet, 0, len(s))
	for _, lang := range s {
		for _, name := range names {
			if lang.Name == name {
				result = append(result, lang)
				break
			}
		}
	}
	return result
}

// Names returns the candidate names in order
func (s CandidateSet) Names() []string {
	names := make([]string, len(s))
	for i, lang := range s {
		names[i] = lang.Name
	}
	return names
}
