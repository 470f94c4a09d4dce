// Package knowledge builds the immutable, indexed view over language
// definitions that every identification strategy reads from. The lifecycle
// is build → freeze → serve: construction validates and fails fast, and the
// resulting Base is safe for concurrent reads without synchronization.
// Rebuilding from a new payload is the only update path.
package knowledge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/petrarca/language-detector/internal/classifier"
	"github.com/petrarca/language-detector/internal/types"
)

// CompiledRule is a heuristic rule with its patterns compiled. Order within
// a per-extension list is declaration order.
type CompiledRule struct {
	Languages []string
	pattern   *regexp.Regexp // nil means the rule always matches
	negative  *regexp.Regexp
}

// Match reports whether the rule applies to the given content sample
func (r *CompiledRule) Match(content []byte) bool {
	if r.pattern != nil && !r.pattern.Match(content) {
		return false
	}
	if r.negative != nil && r.negative.Match(content) {
		return false
	}
	return true
}

// Base is the knowledge base: language definitions indexed by extension,
// exact filename, interpreter and name, plus compiled heuristic rules and
// classifier models
type Base struct {
	languages     []*types.Language
	byName        map[string]*types.Language
	byExtension   map[string][]*types.Language
	byFilename    map[string][]*types.Language
	byInterpreter map[string][]*types.Language
	heuristics    map[string][]*CompiledRule
	models        *classifier.ModelSet
}

// Build constructs a Base from an already-parsed definitions payload. Any
// structural problem (duplicate language name, heuristic rule referencing an
// undeclared language, uncompilable pattern) aborts with an error wrapping
// types.ErrMalformedDefinition: a partially-usable base would make every
// subsequent identification unreliable.
func Build(payload *types.DefinitionsPayload) (*Base, error) {
	base := &Base{
		byName:        make(map[string]*types.Language, len(payload.Languages)),
		byExtension:   make(map[string][]*types.Language),
		byFilename:    make(map[string][]*types.Language),
		byInterpreter: make(map[string][]*types.Language),
		heuristics:    make(map[string][]*CompiledRule),
	}

	for i := range payload.Languages {
		lang := &payload.Languages[i]
		if lang.Name == "" {
			return nil, fmt.Errorf("%w: language %d has no name", types.ErrMalformedDefinition, i)
		}
		if _, dup := base.byName[lang.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate language %q", types.ErrMalformedDefinition, lang.Name)
		}
		base.languages = append(base.languages, lang)
		base.byName[lang.Name] = lang

		for _, ext := range lang.Extensions {
			key := normalizeExtension(ext)
			base.byExtension[key] = append(base.byExtension[key], lang)
		}
		for _, name := range lang.Filenames {
			base.byFilename[name] = append(base.byFilename[name], lang)
		}
		for _, interp := range lang.Interpreters {
			base.byInterpreter[interp] = append(base.byInterpreter[interp], lang)
		}
	}

	for _, disambiguation := range payload.Disambiguations {
		rules, err := compileRules(base.byName, disambiguation)
		if err != nil {
			return nil, err
		}
		for _, ext := range disambiguation.Extensions {
			base.heuristics[normalizeExtension(ext)] = rules
		}
	}

	for _, table := range payload.TokenTables {
		if _, ok := base.byName[table.Language]; !ok {
			return nil, fmt.Errorf("%w: token table for undeclared language %q",
				types.ErrMalformedDefinition, table.Language)
		}
	}
	base.models = classifier.NewModelSet(payload.TokenTables)

	return base, nil
}

func compileRules(byName map[string]*types.Language, d types.Disambiguation) ([]*CompiledRule, error) {
	rules := make([]*CompiledRule, 0, len(d.Rules))
	for _, rule := range d.Rules {
		if len(rule.Languages) == 0 {
			return nil, fmt.Errorf("%w: heuristic rule for %v names no language",
				types.ErrMalformedDefinition, d.Extensions)
		}
		for _, name := range rule.Languages {
			if _, ok := byName[name]; !ok {
				return nil, fmt.Errorf("%w: heuristic rule references undeclared language %q",
					types.ErrMalformedDefinition, name)
			}
		}

		compiled := &CompiledRule{Languages: rule.Languages}
		var err error
		if rule.Pattern != "" {
			if compiled.pattern, err = regexp.Compile("(?m)" + rule.Pattern); err != nil {
				return nil, fmt.Errorf("%w: bad pattern for %v: %v",
					types.ErrMalformedDefinition, rule.Languages, err)
			}
		}
		if rule.NegativePattern != "" {
			if compiled.negative, err = regexp.Compile("(?m)" + rule.NegativePattern); err != nil {
				return nil, fmt.Errorf("%w: bad negative pattern for %v: %v",
					types.ErrMalformedDefinition, rule.Languages, err)
			}
		}
		rules = append(rules, compiled)
	}
	return rules, nil
}

// normalizeExtension lowercases and ensures the leading dot
func normalizeExtension(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}

// All returns every known language as a fresh candidate set
func (b *Base) All() CandidateSet {
	return NewCandidateSet(b.languages)
}

// Len returns the number of known languages
func (b *Base) Len() int {
	return len(b.languages)
}

// ByName returns the language with the given exact name, or nil
func (b *Base) ByName(name string) *types.Language {
	return b.byName[name]
}

// ByExtension returns all languages claiming the extension. The set may be
// empty or hold several entries; resolution, not indexing, removes
// ambiguity.
func (b *Base) ByExtension(ext string) CandidateSet {
	return NewCandidateSet(b.byExtension[normalizeExtension(ext)])
}

// ByFilename returns all languages claiming the exact basename
func (b *Base) ByFilename(basename string) CandidateSet {
	return NewCandidateSet(b.byFilename[basename])
}

// ByInterpreter returns all languages claiming the interpreter name
func (b *Base) ByInterpreter(name string) CandidateSet {
	return NewCandidateSet(b.byInterpreter[name])
}

// HeuristicsFor returns the ordered heuristic rule list for an extension,
// or nil when the extension has no disambiguation
func (b *Base) HeuristicsFor(ext string) []*CompiledRule {
	return b.heuristics[normalizeExtension(ext)]
}

// Models returns the classifier model set built from the training tables
func (b *Base) Models() *classifier.ModelSet {
	return b.models
}
