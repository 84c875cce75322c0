package schema

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func rulesEqual(a, b Rule) bool {
	if a.Pattern != b.Pattern || a.Type != b.Type || !reflect.DeepEqual(a.Values, b.Values) {
		return false
	}
	if (a.Expr == nil) != (b.Expr == nil) {
		return false
	}
	return a.Expr == nil || a.Expr.String() == b.Expr.String()
}

func TestParse_LineFormat(t *testing.T) {
	text := `# sysctl schema
kernel.hostname string
vm.swappiness int
net.ipv4.ip_forward bool
; enum and regex rules take arguments
payments.mode enum(test, live)
net.ipv4.conf.*.rp_filter int
kernel.domainname regex([a-z0-9.-]+)
`
	s, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if len(s.Rules) != 6 {
		t.Fatalf("len(Rules) = %d, want 6", len(s.Rules))
	}

	want := []Rule{
		{Pattern: "kernel.hostname", Type: TypeString},
		{Pattern: "vm.swappiness", Type: TypeInt},
		{Pattern: "net.ipv4.ip_forward", Type: TypeBool},
		{Pattern: "payments.mode", Type: TypeEnum, Values: []string{"test", "live"}},
		{Pattern: "net.ipv4.conf.*.rp_filter", Type: TypeInt},
	}
	for i, w := range want {
		if !rulesEqual(s.Rules[i], w) {
			t.Errorf("Rules[%d] = %+v, want %+v", i, s.Rules[i], w)
		}
	}

	last := s.Rules[5]
	if last.Type != TypeRegex || last.Expr == nil {
		t.Fatalf("Rules[5] = %+v, want a compiled regex rule", last)
	}
	if !last.Expr.MatchString("example.com") {
		t.Errorf("regex rule rejects %q", "example.com")
	}
	if last.Expr.MatchString("has spaces") {
		t.Errorf("regex rule is not anchored to the full value")
	}
}

func TestParse_Faults(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind ErrorKind
		wantLine int
	}{
		{"unknown type token", "kernel.hostname text\n", UnknownType, 1},
		{"missing type token", "# c\nkernel.hostname\n", UnknownType, 2},
		{"empty enum", "payments.mode enum()\n", UnknownType, 1},
		{"empty enum member", "payments.mode enum(test,,live)\n", UnknownType, 1},
		{"bad regex", "kernel.hostname regex([)\n", UnknownType, 1},
		{"empty pattern segment", "net..forward int\n", MalformedPattern, 1},
		{"wildcard inside segment", "net.ip* int\n", MalformedPattern, 1},
		{"two wildcards", "net.*.*.x int\n", MalformedPattern, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse() error = %v, want *ParseError", err)
			}
			if perr.Kind != tt.wantKind {
				t.Errorf("fault kind = %q, want %q", perr.Kind, tt.wantKind)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("fault line = %d, want %d", perr.Line, tt.wantLine)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	content := []byte(`rules:
  - pattern: net.ipv4.conf.*.rp_filter
    type: int
  - pattern: payments.mode
    type: enum
    values: [test, live]
  - pattern: kernel.domainname
    type: regex
    expr: "[a-z.]+"
`)
	s, err := ParseYAML(content)
	if err != nil {
		t.Fatalf("ParseYAML() unexpected error: %v", err)
	}
	if len(s.Rules) != 3 {
		t.Fatalf("len(Rules) = %d, want 3", len(s.Rules))
	}
	if s.Rules[0].Pattern != "net.ipv4.conf.*.rp_filter" || s.Rules[0].Type != TypeInt {
		t.Errorf("Rules[0] = %+v", s.Rules[0])
	}
	if !reflect.DeepEqual(s.Rules[1].Values, []string{"test", "live"}) {
		t.Errorf("Rules[1].Values = %v", s.Rules[1].Values)
	}
	if s.Rules[2].Expr == nil || !s.Rules[2].Expr.MatchString("example.com") {
		t.Errorf("Rules[2] regex not compiled as expected: %+v", s.Rules[2])
	}
}

func TestParseYAML_Faults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", ":\n  - ["},
		{"missing pattern", "rules:\n  - type: int\n"},
		{"unknown type", "rules:\n  - pattern: a.b\n    type: text\n"},
		{"enum without values", "rules:\n  - pattern: a.b\n    type: enum\n"},
		{"regex without expr", "rules:\n  - pattern: a.b\n    type: regex\n"},
		{"malformed pattern", "rules:\n  - pattern: a..b\n    type: int\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.content)); err == nil {
				t.Errorf("ParseYAML() succeeded, want error")
			}
		})
	}
}

func TestLoadPath_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	linePath := filepath.Join(dir, "schema.rules")
	if err := os.WriteFile(linePath, []byte("kernel.hostname string\n"), 0644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "schema.yaml")
	if err := os.WriteFile(yamlPath, []byte("rules:\n  - pattern: kernel.hostname\n    type: string\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fromLine, err := LoadPath(linePath)
	if err != nil {
		t.Fatalf("LoadPath(line) unexpected error: %v", err)
	}
	fromYAML, err := LoadPath(yamlPath)
	if err != nil {
		t.Fatalf("LoadPath(yaml) unexpected error: %v", err)
	}
	if !reflect.DeepEqual(fromLine, fromYAML) {
		t.Errorf("equivalent schemas differ: %+v vs %+v", fromLine, fromYAML)
	}

	if _, err := LoadPath(filepath.Join(dir, "missing.rules")); err == nil {
		t.Errorf("LoadPath(missing) succeeded, want error")
	}
}

// For any schema without regex rules, serializing to YAML and parsing back
// yields an equal schema, preserving rule order.
func TestSchemaYAMLRoundTrip_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genPattern := gen.RegexMatch(`[a-z][a-z0-9]*(\.[a-z][a-z0-9]*){0,3}`)

	genRule := gopter.CombineGens(
		genPattern,
		gen.OneConstOf(TypeString, TypeInt, TypeBool, TypeEnum),
		gen.SliceOfN(2, gen.RegexMatch(`[a-z]{1,8}`)),
	).Map(func(vals []interface{}) Rule {
		rule := Rule{
			Pattern: vals[0].(string),
			Type:    vals[1].(Type),
		}
		if rule.Type == TypeEnum {
			rule.Values = vals[2].([]string)
		}
		return rule
	})

	genSchema := gen.SliceOfN(4, genRule).Map(func(rules []Rule) Schema {
		return Schema{Rules: rules}
	})

	properties.Property("ToYAML then ParseYAML preserves the schema", prop.ForAll(
		func(original Schema) bool {
			yamlBytes, err := original.ToYAML()
			if err != nil {
				t.Logf("ToYAML failed: %v", err)
				return false
			}
			parsed, err := ParseYAML(yamlBytes)
			if err != nil {
				t.Logf("ParseYAML failed: %v", err)
				return false
			}
			if len(parsed.Rules) != len(original.Rules) {
				return false
			}
			for i := range original.Rules {
				if !rulesEqual(original.Rules[i], parsed.Rules[i]) {
					return false
				}
			}
			return true
		},
		genSchema,
	))

	properties.TestingRun(t)
}
