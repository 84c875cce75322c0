package validator

import "fmt"

// FormatViolation formats a Violation into a human-readable report line
// citing the offending line number and key.
func FormatViolation(v Violation) string {
	if v.Kind == KindTypeMismatch && v.Rule != nil {
		return fmt.Sprintf("line %d: %s: %s (rule: %s %s)",
			v.Entry.Line, v.Entry.Key, v.Message, v.Rule.Pattern, v.Rule.Type)
	}
	return fmt.Sprintf("line %d: %s: %s", v.Entry.Line, v.Entry.Key, v.Message)
}

// FormatViolations formats all violations in a result, one line each, in
// document order.
func FormatViolations(result Result) []string {
	messages := make([]string, len(result.Violations))
	for i, v := range result.Violations {
		messages[i] = FormatViolation(v)
	}
	return messages
}
