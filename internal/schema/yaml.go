package schema

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// schemaFile is the YAML file structure. Rules are a list so that file order
// still defines precedence.
type schemaFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

// ruleEntry is one rule in YAML form.
type ruleEntry struct {
	Pattern string   `yaml:"pattern"`
	Type    string   `yaml:"type"`
	Values  []string `yaml:"values,omitempty"` // enum only
	Expr    string   `yaml:"expr,omitempty"`   // regex only
}

// ParseYAML parses YAML schema content into a Schema.
func ParseYAML(content []byte) (Schema, error) {
	var sf schemaFile
	if err := yaml.Unmarshal(content, &sf); err != nil {
		return Schema{}, fmt.Errorf("invalid YAML: %w", err)
	}

	var s Schema
	for i, entry := range sf.Rules {
		rule, err := ruleFromEntry(entry)
		if err != nil {
			return Schema{}, fmt.Errorf("rule %d: %w", i+1, err)
		}
		s.Rules = append(s.Rules, rule)
	}
	return s, nil
}

func ruleFromEntry(entry ruleEntry) (Rule, error) {
	if entry.Pattern == "" {
		return Rule{}, fmt.Errorf("missing required field 'pattern'")
	}
	if err := CheckPattern(entry.Pattern); err != nil {
		return Rule{}, err
	}

	rule := Rule{Pattern: entry.Pattern, Type: Type(entry.Type)}
	switch rule.Type {
	case TypeString, TypeInt, TypeBool:
	case TypeEnum:
		if len(entry.Values) == 0 {
			return Rule{}, fmt.Errorf("enum type requires 'values' for pattern '%s'", entry.Pattern)
		}
		rule.Values = entry.Values
	case TypeRegex:
		if entry.Expr == "" {
			return Rule{}, fmt.Errorf("regex type requires 'expr' for pattern '%s'", entry.Pattern)
		}
		expr, err := compileAnchored(entry.Expr)
		if err != nil {
			return Rule{}, err
		}
		rule.Expr = expr
	default:
		return Rule{}, fmt.Errorf("unknown type '%s' for pattern '%s'", entry.Type, entry.Pattern)
	}
	return rule, nil
}

// ToYAML serializes a Schema back to YAML bytes.
func (s Schema) ToYAML() ([]byte, error) {
	sf := schemaFile{Rules: make([]ruleEntry, 0, len(s.Rules))}
	for _, rule := range s.Rules {
		entry := ruleEntry{
			Pattern: rule.Pattern,
			Type:    string(rule.Type),
			Values:  rule.Values,
		}
		if rule.Expr != nil {
			entry.Expr = exprSource(rule.Expr)
		}
		sf.Rules = append(sf.Rules, entry)
	}
	return yaml.Marshal(&sf)
}

// exprSource recovers the user-written expression from an anchored compile.
func exprSource(re *regexp.Regexp) string {
	src := re.String()
	src = strings.TrimPrefix(src, `\A(?:`)
	src = strings.TrimSuffix(src, `\z`)
	src = strings.TrimSuffix(src, `)`)
	return src
}
