package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uonr/sysctl-parser/internal/conf"
	"github.com/uonr/sysctl-parser/internal/schema"
)

// Kind classifies a validation violation.
type Kind string

const (
	// KindUnmatchedKey means no schema rule matched the entry's key
	// (reported only in strict mode).
	KindUnmatchedKey Kind = "unmatched-key"
	// KindTypeMismatch means the entry's value failed the matched rule's
	// type constraint.
	KindTypeMismatch Kind = "type-mismatch"
)

// Violation is a single validation failure attached to the offending entry.
// Rule is nil for unmatched keys.
type Violation struct {
	Entry   conf.Entry   `json:"entry"`
	Rule    *schema.Rule `json:"-"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
}

// Result contains all validation outcomes for one run.
type Result struct {
	Valid      bool
	Violations []Violation
}

// Options configures a validation run.
type Options struct {
	// Strict turns keys without a matching schema rule into violations.
	// When false, unmatched keys pass silently.
	Strict bool
}

// Validate checks every document entry against the schema. It collects all
// violations rather than stopping at the first one, so one run yields one
// complete report. Validation is a pure function of its inputs: the same
// document and schema always produce the same result.
func Validate(doc *conf.Document, s schema.Schema, opts Options) Result {
	var violations []Violation

	for _, e := range doc.Entries() {
		rule, ok := s.Match(e.Key)
		if !ok {
			if opts.Strict {
				violations = append(violations, Violation{
					Entry:   e,
					Kind:    KindUnmatchedKey,
					Message: "no schema rule matches this key",
				})
			}
			continue
		}

		if msg := checkValue(rule, e.Value); msg != "" {
			r := rule
			violations = append(violations, Violation{
				Entry:   e,
				Rule:    &r,
				Kind:    KindTypeMismatch,
				Message: msg,
			})
		}
	}

	return Result{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// checkValue applies the rule's type constraint to a verbatim value string.
// It returns an expected-vs-actual description, or "" when the value passes.
func checkValue(r schema.Rule, value string) string {
	switch r.Type {
	case schema.TypeString:
		return ""
	case schema.TypeInt:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return fmt.Sprintf("expected base-10 integer, got %q", value)
		}
	case schema.TypeBool:
		if value != "0" && value != "1" {
			return fmt.Sprintf("expected boolean 0 or 1, got %q", value)
		}
	case schema.TypeEnum:
		if !containsValue(r.Values, value) {
			return fmt.Sprintf("expected one of [%s], got %q", strings.Join(r.Values, ", "), value)
		}
	case schema.TypeRegex:
		if !r.Expr.MatchString(value) {
			return fmt.Sprintf("expected match for %s, got %q", r.Expr.String(), value)
		}
	}
	return ""
}

func containsValue(allowed []string, value string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
