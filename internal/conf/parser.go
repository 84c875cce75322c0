package conf

import "strings"

// ParseLine parses one logical line into an Entry. The key is everything
// before the first '=', trimmed; the value is everything after it, trimmed
// but otherwise verbatim. The value may be empty and may contain further '='
// or comment markers.
func ParseLine(ln Line) (Entry, error) {
	i := strings.IndexByte(ln.Text, '=')
	if i < 0 {
		return Entry{}, &ParseError{Line: ln.Number, Kind: MissingSeparator, Text: ln.Text}
	}
	key := strings.TrimSpace(ln.Text[:i])
	if key == "" {
		return Entry{}, &ParseError{Line: ln.Number, Kind: EmptyKey, Text: ln.Text}
	}
	value := strings.TrimSpace(ln.Text[i+1:])
	return Entry{Key: key, Value: value, Line: ln.Number}, nil
}
