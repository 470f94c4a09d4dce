package cmd

import (
	"fmt"

	"github.com/petrarca/language-detector/internal/knowledge"
	"github.com/petrarca/language-detector/internal/rules"
	"github.com/petrarca/language-detector/internal/types"
)

// loadKnowledge loads the embedded definitions, overlays an optional external
// definitions directory, and compiles the knowledge base
func loadKnowledge(definitionsDir string) (*types.DefinitionsPayload, *knowledge.Base, error) {
	payload, err := rules.LoadEmbedded()
	if err != nil {
		return nil, nil, fmt.Errorf("loading embedded definitions: %w", err)
	}

	if definitionsDir != "" {
		if err := rules.LoadExternal(payload, definitionsDir); err != nil {
			return nil, nil, fmt.Errorf("loading definitions from %s: %w", definitionsDir, err)
		}
	}

	kb, err := knowledge.Build(payload)
	if err != nil {
		return nil, nil, err
	}
	return payload, kb, nil
}
