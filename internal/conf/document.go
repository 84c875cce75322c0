package conf

// DuplicatePolicy selects what the document builder does when the same key
// appears on more than one line.
type DuplicatePolicy int

const (
	// DuplicateReject fails the parse with a DuplicateKeyError naming both
	// lines. This is the default: silent shadowing in long configuration
	// files is almost always a mistake.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateLastWins keeps the first entry's position but replaces its
	// value and line with the later occurrence.
	DuplicateLastWins
)

// Options configures a parse run.
type Options struct {
	Duplicates DuplicatePolicy
}

// Parse turns configuration text into a Document. It returns the first
// syntax or duplicate-key fault encountered; a malformed document is never
// partially built.
func Parse(text string, opts Options) (*Document, error) {
	doc := &Document{
		entries: make([]Entry, 0),
		index:   make(map[string]int),
	}
	sc := NewScanner(text)
	for {
		ln, ok := sc.Next()
		if !ok {
			break
		}
		entry, err := ParseLine(ln)
		if err != nil {
			return nil, err
		}
		if err := doc.add(entry, opts.Duplicates); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (d *Document) add(e Entry, policy DuplicatePolicy) error {
	if pos, seen := d.index[e.Key]; seen {
		if policy == DuplicateLastWins {
			d.entries[pos].Value = e.Value
			d.entries[pos].Line = e.Line
			return nil
		}
		return &DuplicateKeyError{Key: e.Key, FirstLine: d.entries[pos].Line, Line: e.Line}
	}
	d.index[e.Key] = len(d.entries)
	d.entries = append(d.entries, e)
	return nil
}
