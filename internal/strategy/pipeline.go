package strategy

import (
	"log/slog"

	"github.com/petrarca/language-detector/internal/classifier"
	"github.com/petrarca/language-detector/internal/knowledge"
	"github.com/petrarca/language-detector/internal/types"
)

// Pipeline runs the strategies in fixed order and falls back to the
// statistical classifier when the rules leave more than one candidate
type Pipeline struct {
	kb         *knowledge.Base
	strategies []Strategy
	classifier *classifier.Classifier
	logger     *slog.Logger
}

// NewPipeline builds the standard pipeline: filename, shebang, extension,
// modeline, heuristics, then the classifier. A nil logger means
// slog.Default().
func NewPipeline(kb *knowledge.Base, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		kb: kb,
		strategies: []Strategy{
			NewFilename(kb),
			NewShebang(kb),
			NewExtension(kb),
			NewModeline(kb),
			NewHeuristics(kb),
		},
		classifier: classifier.New(kb.Models(), logger),
		logger:     logger,
	}
}

// Identify resolves the language of a single file. It returns
// types.ErrNoMatch when no language can be determined; ambiguity along the
// way is never an error, only an unresolved end state is.
func (p *Pipeline) Identify(file *FileInfo) (*types.Language, error) {
	candidates := p.kb.All()
	seeded := false

	for _, strat := range p.strategies {
		result := strat.Apply(file, candidates, seeded)
		if len(result.Candidates) != len(candidates) {
			p.logger.Debug("strategy narrowed candidates",
				"strategy", strat.Name(),
				"path", file.Path,
				"remaining", len(result.Candidates))
		}
		candidates, seeded = result.Candidates, result.Seeded

		if result.Authoritative && len(candidates) == 1 {
			return candidates[0], nil
		}
	}

	// A file no strategy had an opinion on is unresolvable: the classifier
	// only ever compares candidates that survived the rule stages, never
	// the full language universe.
	if !seeded {
		return nil, types.ErrNoMatch
	}

	switch len(candidates) {
	case 0:
		return nil, types.ErrNoMatch
	case 1:
		return candidates[0], nil
	}

	return p.classifier.Classify(file.Sample(), candidates)
}
