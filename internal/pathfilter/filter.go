// Package pathfilter decides whether a path is excluded from aggregate
// language statistics. Exclusion is a statistics policy, not a
// classification gate: identification still runs on excluded files when a
// caller asks for a single-file answer.
package pathfilter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/petrarca/language-detector/internal/types"
)

// compiledRule is one path-pattern rule. Rules are evaluated in declaration
// order; the first match wins.
type compiledRule struct {
	kind types.PathRuleKind
	re   *regexp.Regexp
}

// Filter applies ordered path rules plus caller-supplied glob excludes
type Filter struct {
	rules []compiledRule
	globs []string
}

// New compiles the ordered rule list. Glob excludes use doublestar syntax
// and are checked before the pattern rules, mirroring how caller-side
// exclude flags behave.
func New(rules []types.PathRule, globExcludes []string) (*Filter, error) {
	f := &Filter{globs: globExcludes}
	for _, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: bad %s path rule %q: %v",
				types.ErrMalformedDefinition, rule.Kind, rule.Pattern, err)
		}
		f.rules = append(f.rules, compiledRule{kind: rule.Kind, re: re})
	}
	for _, glob := range globExcludes {
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("invalid exclude pattern %q", glob)
		}
	}
	return f, nil
}

// Verdict returns the kind of the first matching rule. The second return is
// false when no rule matches, which means the path is not excluded.
func (f *Filter) Verdict(path string) (types.PathRuleKind, bool) {
	path = normalize(path)

	for _, glob := range f.globs {
		if ok, _ := doublestar.Match(glob, path); ok {
			return types.PathRuleVendor, true
		}
		// also match the pattern against any path segment suffix, so
		// "node_modules/**" excludes nested occurrences
		if ok, _ := doublestar.Match("**/"+glob, path); ok {
			return types.PathRuleVendor, true
		}
	}

	for _, rule := range f.rules {
		if rule.re.MatchString(path) {
			return rule.kind, true
		}
	}
	return "", false
}

// IsExcluded reports whether the path is excluded from aggregate statistics
func (f *Filter) IsExcluded(path string) bool {
	_, excluded := f.Verdict(path)
	return excluded
}

// IsVendored reports whether the path matches a vendor or generated rule
func (f *Filter) IsVendored(path string) bool {
	kind, ok := f.Verdict(path)
	return ok && (kind == types.PathRuleVendor || kind == types.PathRuleGenerated)
}

// IsDocumentation reports whether the path matches a documentation rule
func (f *Filter) IsDocumentation(path string) bool {
	kind, ok := f.Verdict(path)
	return ok && kind == types.PathRuleDocumentation
}

// normalize strips a leading "./" and converts backslashes so rule patterns
// only ever see forward-slash relative paths
func normalize(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	return strings.TrimPrefix(path, "./")
}
