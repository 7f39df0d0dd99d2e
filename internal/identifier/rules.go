package identifier

import (
	"fmt"
	"regexp"
)

// Rule is one substitution applied to a derived identifier. Pattern is a
// regular expression; Replacement may reference capture groups.
type Rule struct {
	Pattern     string
	Replacement string
}

// DefaultRules returns the corrections for identifiers known to disagree with
// the speeches table. Order matters: later rules see the output of earlier
// ones, e.g. the Schröder spelling is fixed before its dates are.
func DefaultRules() []Rule {
	return []Rule{
		{`Simor 2010-05-25`, "Simor 2010-05-26"},
		{`^Mario `, "Draghi "},
		{`^PM `, "Cameron "},
		{`^Thorning `, "Thorning-Schmidt "},
		{`Remarks 2009-12-11`, "Honohan 2009-12-11"},
		{`This 2013-02-11`, "Cameron 2013-02-11"},
		{`Mervyn `, "King "},
		{`Patrick 2013-03-19`, "Honohan 2013-03-19"},
		{`Statement 2014-12-18`, "Kenny 2014-12-19"},
		{`Speech 2012-06-29`, "Cameron 2012-06-29"},
		{`The 2012-01-30`, "Cameron 2012-01-30"},
		{`Orban `, "Orbán "},
		{`The 2014-10-24`, "Cameron 2014-10-24"},
		{`Speech 2013-03-07`, "Kenny 2013-07-03"},
		{`David 2014-11-10`, "Cameron 2014-11-10"},
		{`Statement 2012-07-04`, "Kenny 2012-07-04"},
		{`Schröder`, "Schroeder"},
		{`Schroeder 1998-12-14`, "Schroeder 1999-12-14"},
		{`Schroeder 2001-10-26`, "Schroeder 2001-10-16"},
		{`Hollande 2015-05-19`, "Hollande 2015-03-19"},
		// The speeches table spells this identifier with a double space.
		{`Fernandez 2009-11-23`, "Fernández Ordóñez  2009-11-23"},
	}
}

type compiledRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Normalizer applies an ordered rule table to identifiers.
type Normalizer struct {
	rules []compiledRule
}

// NewNormalizer compiles rules in order.
func NewNormalizer(rules []Rule) (*Normalizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i+1, rule.Pattern, err)
		}
		compiled = append(compiled, compiledRule{pattern: re, replacement: rule.Replacement})
	}
	return &Normalizer{rules: compiled}, nil
}

// DefaultNormalizer returns a Normalizer over DefaultRules.
func DefaultNormalizer() *Normalizer {
	n, err := NewNormalizer(DefaultRules())
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize folds every rule over identifier. Input matching no rule is
// returned unchanged.
func (n *Normalizer) Normalize(identifier string) string {
	if n == nil {
		return identifier
	}
	for _, rule := range n.rules {
		identifier = rule.pattern.ReplaceAllString(identifier, rule.replacement)
	}
	return identifier
}

// Len reports the number of rules.
func (n *Normalizer) Len() int {
	if n == nil {
		return 0
	}
	return len(n.rules)
}
