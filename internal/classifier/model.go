package classifier

import "github.com/petrarca/language-detector/internal/types"

// Model holds the read-only token-frequency statistics for one language
type Model struct {
	Language string
	Tokens   map[string]float64
	Total    float64
}

// NewModel builds a Model from a loaded token table
func NewModel(table types.TokenTable) *Model {
	m := &Model{
		Language: table.Language,
		Tokens:   make(map[string]float64, len(table.Tokens)),
	}
	for token, count := range table.Tokens {
		m.Tokens[token] = float64(count)
		m.Total += float64(count)
	}
	return m
}

// ModelSet is the collection of all trained models plus the shared
// vocabulary size used for smoothing. Read-only at classification time.
type ModelSet struct {
	models    map[string]*Model
	vocabSize float64
}

// NewModelSet builds a ModelSet from loaded token tables. The vocabulary is
// the union of distinct tokens across every table, so smoothing denominators
// agree for all candidates.
func NewModelSet(tables []types.TokenTable) *ModelSet {
	set := &ModelSet{models: make(map[string]*Model, len(tables))}
	vocab := make(map[string]struct{})
	for _, table := range tables {
		set.models[table.Language] = NewModel(table)
		for token := range table.Tokens {
			vocab[token] = struct{}{}
		}
	}
	set.vocabSize = float64(len(vocab))
	return set
}

// Model returns the model for a language, or nil when the language has no
// training data
func (s *ModelSet) Model(language string) *Model {
	if s == nil {
		return nil
	}
	return s.models[language]
}

// Len returns the number of trained models
func (s *ModelSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.models)
}

// VocabularySize returns the number of distinct tokens across all models
func (s *ModelSet) VocabularySize() float64 {
	if s == nil {
		return 0
	}
	return s.vocabSize
}
