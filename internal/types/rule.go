package types

// HeuristicRule disambiguates languages sharing an extension based on file
// content. Rules for one extension are evaluated in declaration order; the
// first rule whose pattern matches decides. A rule without a pattern always
// matches and acts as the default for its extension.
type HeuristicRule struct {
	// Languages the rule confirms when it matches. Usually one entry.
	Languages []string `yaml:"languages" json:"languages"`
	// Pattern is a content regular expression. Named pattern references are
	// expanded by the definitions loader before the rule reaches the core.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	// NegativePattern, when set, must NOT match for the rule to apply.
	NegativePattern string `yaml:"negative_pattern,omitempty" json:"negative_pattern,omitempty"`
}

// Disambiguation is an ordered heuristic rule list scoped to one or more
// extensions. Order is significant and preserved exactly as declared.
type Disambiguation struct {
	Extensions []string        `yaml:"extensions" json:"extensions"`
	Rules      []HeuristicRule `yaml:"rules" json:"rules"`
}

// PathRuleKind is the policy category a path rule belongs to
type PathRuleKind string

const (
	PathRuleVendor        PathRuleKind = "vendor"
	PathRuleGenerated     PathRuleKind = "generated"
	PathRuleDocumentation PathRuleKind = "documentation"
	PathRuleBinary        PathRuleKind = "binary"
)

// PathRule excludes matching paths from aggregate statistics. Rules are
// evaluated in declaration order, first match wins.
type PathRule struct {
	Kind    PathRuleKind `yaml:"kind" json:"kind"`
	Pattern string       `yaml:"pattern" json:"pattern"`
}

// TokenTable holds per-language token frequencies used by the statistical
// classifier. Languages without a table are still identifiable by the rule
// pipeline but contribute nothing to statistical scoring.
type TokenTable struct {
	Language string           `yaml:"language" json:"language"`
	Tokens   map[string]int64 `yaml:"tokens" json:"tokens"`
}
