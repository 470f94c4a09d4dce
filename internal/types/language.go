package types

import "strings"

// LanguageType categorizes a language (programming, markup, data, prose)
type LanguageType string

const (
	TypeProgramming LanguageType = "programming"
	TypeMarkup      LanguageType = "markup"
	TypeData        LanguageType = "data"
	TypeProse       LanguageType = "prose"
	TypeUnknown     LanguageType = "unknown"
)

// ParseLanguageType converts a string to a LanguageType, returning TypeUnknown
// for anything it does not recognize
func ParseLanguageType(s string) LanguageType {
	switch strings.ToLower(s) {
	case "programming":
		return TypeProgramming
	case "markup":
		return TypeMarkup
	case "data":
		return TypeData
	case "prose":
		return TypeProse
	}
	return TypeUnknown
}

// Language is a single language definition as delivered by the definitions
// loader. It is immutable once the knowledge base has been built.
type Language struct {
	Name         string       `yaml:"name" json:"name"`
	Type         LanguageType `yaml:"type" json:"type"`
	Group        string       `yaml:"group,omitempty" json:"group,omitempty"`
	Extensions   []string     `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Filenames    []string     `yaml:"filenames,omitempty" json:"filenames,omitempty"`
	Interpreters []string     `yaml:"interpreters,omitempty" json:"interpreters,omitempty"`
	Aliases      []string     `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Matches reports whether name refers to this language by name or alias,
// case-insensitively. Modeline resolution goes through this.
func (l *Language) Matches(name string) bool {
	if strings.EqualFold(l.Name, name) {
		return true
	}
	for _, alias := range l.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

func (l *Language) String() string {
	return l.Name
}
