package conf

import "strings"

// Line is one logical line that survived comment and blank filtering.
type Line struct {
	Number int    // 1-based source line number
	Text   string // content with surrounding whitespace trimmed
}

// Scanner yields logical lines from configuration text. A line is skipped
// when, after trimming, it is empty or starts with '#' or ';'. Comment
// markers are recognized only at line start, so values may contain them.
// Restart by constructing a new Scanner over the same text.
type Scanner struct {
	rest string
	line int
}

// NewScanner returns a scanner positioned before the first line of text.
func NewScanner(text string) *Scanner {
	return &Scanner{rest: text}
}

// Next returns the next logical line, or false when the input is exhausted.
func (s *Scanner) Next() (Line, bool) {
	for len(s.rest) > 0 {
		raw := s.rest
		if i := strings.IndexByte(s.rest, '\n'); i >= 0 {
			raw = s.rest[:i]
			s.rest = s.rest[i+1:]
		} else {
			s.rest = ""
		}
		s.line++

		// TrimSpace also drops the '\r' of CRLF line endings.
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' {
			continue
		}
		return Line{Number: s.line, Text: trimmed}, true
	}
	return Line{}, false
}
