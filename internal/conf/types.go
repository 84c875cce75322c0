// Package conf parses sysctl-style configuration text into an ordered
// key/value document. The pipeline is scanner (logical lines) -> entry
// parser (key/value split) -> document builder (ordering and duplicate
// policy). Values stay verbatim strings; type interpretation belongs to the
// validator, which is the only layer that knows the expected type.
package conf

// Entry is one parsed key/value pair plus the 1-based source line it came from.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Line  int    `json:"line"`
}

// Document is the ordered collection of entries from one configuration
// input. Entry order follows the source file. The index map backs duplicate
// detection and key lookup without relying on map iteration order.
type Document struct {
	entries []Entry
	index   map[string]int // key -> position in entries
}

// Entries returns the document's entries in source order. The returned slice
// is the document's backing storage; callers must not modify it.
func (d *Document) Entries() []Entry {
	return d.entries
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// Get returns the entry for key, if present.
func (d *Document) Get(key string) (Entry, bool) {
	pos, ok := d.index[key]
	if !ok {
		return Entry{}, false
	}
	return d.entries[pos], true
}

// Values returns the document content as a key -> value map.
func (d *Document) Values() map[string]string {
	values := make(map[string]string, len(d.entries))
	for _, e := range d.entries {
		values[e.Key] = e.Value
	}
	return values
}
