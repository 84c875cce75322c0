package schema

import "regexp"

// Type is the value constraint a rule declares.
type Type string

const (
	// TypeString accepts any value, including the empty string.
	TypeString Type = "string"
	// TypeInt accepts base-10 signed integers with no surrounding whitespace.
	TypeInt Type = "int"
	// TypeBool accepts exactly "0" or "1". sysctl booleans are numeric
	// toggles, so "true", "false", "yes" and friends are rejected.
	TypeBool Type = "bool"
	// TypeEnum accepts exact membership in the rule's declared value set.
	TypeEnum Type = "enum"
	// TypeRegex accepts values the rule's expression matches in full.
	TypeRegex Type = "regex"
)

// Rule binds a key pattern to a value constraint. Values is populated for
// enum rules, Expr for regex rules.
type Rule struct {
	Pattern string
	Type    Type
	Values  []string
	Expr    *regexp.Regexp
}

// Schema is an ordered rule set. Rule order defines precedence: when several
// patterns could match the same key, the earliest rule wins.
type Schema struct {
	Rules []Rule
}

// Match returns the first rule whose pattern matches key.
func (s Schema) Match(key string) (Rule, bool) {
	for _, r := range s.Rules {
		if MatchPattern(r.Pattern, key) {
			return r, true
		}
	}
	return Rule{}, false
}
