package conf

import "fmt"

// ErrorKind classifies a configuration syntax fault.
type ErrorKind string

const (
	// MissingSeparator means a logical line had no '=' at all.
	MissingSeparator ErrorKind = "missing-separator"
	// EmptyKey means the text before '=' was empty after trimming.
	EmptyKey ErrorKind = "empty-key"
)

// ParseError is a fatal syntax fault at a specific source line.
type ParseError struct {
	Line int
	Kind ErrorKind
	Text string // the offending logical line
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingSeparator:
		return fmt.Sprintf("line %d: missing '=' separator in %q", e.Line, e.Text)
	case EmptyKey:
		return fmt.Sprintf("line %d: empty key before '='", e.Line)
	}
	return fmt.Sprintf("line %d: invalid entry %q", e.Line, e.Text)
}

// DuplicateKeyError reports a key defined on two lines under the reject
// policy. It names both lines so the report is actionable without
// re-scanning the file.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	Line      int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("line %d: duplicate key %q (first defined on line %d)", e.Line, e.Key, e.FirstLine)
}
