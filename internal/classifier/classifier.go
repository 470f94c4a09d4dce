// Package classifier scores ambiguous content against per-language
// token-frequency models. It is the fallback stage of the identification
// pipeline, structurally separate from the rule strategies so it can be
// absent entirely when no training data is available.
package classifier

import (
	"log/slog"
	"math"
	"sort"

	"github.com/petrarca/language-detector/internal/types"
)

// smoothing is the additive (Laplace) constant applied to every token count
// so unseen tokens never produce a zero probability. Fixed and documented
// here; swap the ModelSet to change classifier behavior.
const smoothing = 1.0

// scoreEpsilon is the relative tolerance under which two candidate scores
// count as tied
const scoreEpsilon = 1e-9

// Classifier resolves a multi-candidate set by statistical content scoring
type Classifier struct {
	models *ModelSet
	logger *slog.Logger
}

// New creates a Classifier over the given models. A nil logger means
// slog.Default().
func New(models *ModelSet, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{models: models, logger: logger}
}

// Classify picks the candidate whose model assigns the content sample the
// highest summed log-probability. Candidates without a model are excluded
// from scoring; when none of the candidates have one, the content is
// ambiguous and unclassifiable and ErrNoMatch is returned.
//
// Ties are broken deterministically: larger training token total first (a
// more common language is the safer default), then lexicographic name order.
func (c *Classifier) Classify(content []byte, candidates []*types.Language) (*types.Language, error) {
	scored := make([]*types.Language, 0, len(candidates))
	for _, cand := range candidates {
		if c.models.Model(cand.Name) != nil {
			scored = append(scored, cand)
		}
	}
	if len(scored) == 0 {
		return nil, types.ErrNoMatch
	}

	// Scoring must not depend on caller-side candidate ordering.
	sort.Slice(scored, func(i, j int) bool { return scored[i].Name < scored[j].Name })

	tokens := Tokenize(content)

	var best *types.Language
	var bestModel *Model
	bestScore := math.Inf(-1)

	for _, cand := range scored {
		model := c.models.Model(cand.Name)
		score := c.score(tokens, model)
		c.logger.Debug("classifier score", "language", cand.Name, "score", score)

		if best == nil || better(score, model, bestScore, bestModel) {
			best = cand
			bestModel = model
			bestScore = score
		}
	}

	return best, nil
}

// score sums log((count+smoothing) / (total+smoothing*vocab)) over tokens
func (c *Classifier) score(tokens []string, model *Model) float64 {
	denom := model.Total + smoothing*c.models.VocabularySize()
	logDenom := math.Log(denom)

	score := 0.0
	for _, token := range tokens {
		score += math.Log(model.Tokens[token]+smoothing) - logDenom
	}
	return score
}

// better reports whether (score, model) beats the current best under the
// deterministic tie-break rules. Candidates arrive in name order, so on a
// full tie the earlier (lexicographically smaller) name is kept.
func better(score float64, model *Model, bestScore float64, bestModel *Model) bool {
	if !tied(score, bestScore) {
		return score > bestScore
	}
	return model.Total > bestModel.Total
}

func tied(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= scoreEpsilon*scale
}
