// Package schema parses schema descriptions into ordered rule sets and
// matches document keys against them. Two on-disk forms are supported: the
// line-oriented "pattern TYPE" format (default) and a YAML form selected by
// file extension.
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/uonr/sysctl-parser/internal/conf"
)

// ErrorKind classifies a schema parse fault.
type ErrorKind string

const (
	UnknownType      ErrorKind = "unknown-type"
	MalformedPattern ErrorKind = "malformed-pattern"
)

// ParseError is a fatal schema fault at a specific source line.
type ParseError struct {
	Line int
	Kind ErrorKind
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("schema line %d: %s", e.Line, e.Msg)
}

// Parse parses line-oriented schema text. Comment and blank-line conventions
// are the same as for configuration files. Each remaining line declares one
// rule: a dotted key pattern, whitespace, and a type token (string, int,
// bool, enum(v1,v2,...) or regex(expr)). Rule order equals file order.
func Parse(text string) (Schema, error) {
	var s Schema
	sc := conf.NewScanner(text)
	for {
		ln, ok := sc.Next()
		if !ok {
			break
		}
		rule, err := parseRuleLine(ln)
		if err != nil {
			return Schema{}, err
		}
		s.Rules = append(s.Rules, rule)
	}
	return s, nil
}

func parseRuleLine(ln conf.Line) (Rule, error) {
	i := strings.IndexAny(ln.Text, " \t")
	if i < 0 {
		return Rule{}, &ParseError{
			Line: ln.Number,
			Kind: UnknownType,
			Msg:  fmt.Sprintf("missing type token after pattern %q", ln.Text),
		}
	}
	pattern := ln.Text[:i]
	token := strings.TrimSpace(ln.Text[i+1:])

	if err := CheckPattern(pattern); err != nil {
		return Rule{}, &ParseError{Line: ln.Number, Kind: MalformedPattern, Msg: err.Error()}
	}

	rule, err := parseTypeToken(token)
	if err != nil {
		return Rule{}, &ParseError{Line: ln.Number, Kind: UnknownType, Msg: err.Error()}
	}
	rule.Pattern = pattern
	return rule, nil
}

// parseTypeToken parses a type token into a Rule with everything but the
// pattern filled in.
func parseTypeToken(token string) (Rule, error) {
	switch {
	case token == "string":
		return Rule{Type: TypeString}, nil
	case token == "int":
		return Rule{Type: TypeInt}, nil
	case token == "bool":
		return Rule{Type: TypeBool}, nil
	case strings.HasPrefix(token, "enum(") && strings.HasSuffix(token, ")"):
		values, err := parseEnumValues(token[len("enum(") : len(token)-1])
		if err != nil {
			return Rule{}, err
		}
		return Rule{Type: TypeEnum, Values: values}, nil
	case strings.HasPrefix(token, "regex(") && strings.HasSuffix(token, ")"):
		expr, err := compileAnchored(token[len("regex(") : len(token)-1])
		if err != nil {
			return Rule{}, err
		}
		return Rule{Type: TypeRegex, Expr: expr}, nil
	}
	return Rule{}, fmt.Errorf("unknown type %q (want string, int, bool, enum(...) or regex(...))", token)
}

func parseEnumValues(inner string) ([]string, error) {
	if strings.TrimSpace(inner) == "" {
		return nil, fmt.Errorf("enum requires at least one value")
	}
	parts := strings.Split(inner, ",")
	values := make([]string, len(parts))
	for i, p := range parts {
		v := strings.TrimSpace(p)
		if v == "" {
			return nil, fmt.Errorf("enum has an empty member")
		}
		values[i] = v
	}
	return values, nil
}

// compileAnchored compiles expr so that a match must cover the whole value.
func compileAnchored(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %v", expr, err)
	}
	return re, nil
}

// LoadPath reads and parses a schema file. Files ending in .yaml or .yml use
// the YAML form; everything else uses the line-oriented form.
func LoadPath(path string) (Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("failed to read schema: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(content)
	}
	return Parse(string(content))
}
