package types

// DefinitionsPayload is the already-parsed configuration object graph the
// core consumes. The definitions loader produces it from YAML files; callers
// embedding the library may also construct it directly.
type DefinitionsPayload struct {
	// Version is the schema version of the definitions, a semver string.
	Version string `yaml:"version" json:"version"`

	Languages       []Language       `yaml:"languages" json:"languages"`
	Disambiguations []Disambiguation `yaml:"disambiguations,omitempty" json:"disambiguations,omitempty"`
	// NamedPatterns are regex fragments shared across disambiguations. The
	// loader expands references; they are retained here for introspection.
	NamedPatterns map[string]string `yaml:"named_patterns,omitempty" json:"named_patterns,omitempty"`
	PathRules     []PathRule        `yaml:"path_rules,omitempty" json:"path_rules,omitempty"`
	TokenTables   []TokenTable      `yaml:"token_tables,omitempty" json:"token_tables,omitempty"`
}

// Merge overlays other onto p: languages and token tables with the same name
// replace existing entries, disambiguations for already-known extensions are
// replaced, path rules are appended. Used for external definition overrides.
func (p *DefinitionsPayload) Merge(other *DefinitionsPayload) {
	if other == nil {
		return
	}

	byName := make(map[string]int, len(p.Languages))
	for i, lang := range p.Languages {
		byName[lang.Name] = i
	}
	for _, lang := range other.Languages {
		if i, ok := byName[lang.Name]; ok {
			p.Languages[i] = lang
		} else {
			byName[lang.Name] = len(p.Languages)
			p.Languages = append(p.Languages, lang)
		}
	}

	byExt := make(map[string]int)
	for i, d := range p.Disambiguations {
		for _, ext := range d.Extensions {
			byExt[ext] = i
		}
	}
	for _, d := range other.Disambiguations {
		replaced := false
		for _, ext := range d.Extensions {
			if i, ok := byExt[ext]; ok {
				p.Disambiguations[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			p.Disambiguations = append(p.Disambiguations, d)
		}
	}

	p.PathRules = append(p.PathRules, other.PathRules...)

	byTable := make(map[string]int, len(p.TokenTables))
	for i, t := range p.TokenTables {
		byTable[t.Language] = i
	}
	for _, t := range other.TokenTables {
		if i, ok := byTable[t.Language]; ok {
			p.TokenTables[i] = t
		} else {
			p.TokenTables = append(p.TokenTables, t)
		}
	}
}
