package conf

import "strings"

// Nested converts the document's dotted keys into a nested map tree, e.g.
// "net.ipv4.ip_forward = 1" becomes {"net": {"ipv4": {"ip_forward": "1"}}}.
// When a scalar and a deeper key collide, the later entry wins: a table
// arriving at an existing scalar replaces it, and a scalar arriving at an
// existing table replaces the whole table.
func (d *Document) Nested() map[string]any {
	root := make(map[string]any)
	for _, e := range d.entries {
		insertNested(root, strings.Split(e.Key, "."), e.Value)
	}
	return root
}

func insertNested(node map[string]any, parts []string, value string) {
	head := parts[0]
	if len(parts) == 1 {
		node[head] = value
		return
	}
	child, ok := node[head].(map[string]any)
	if !ok {
		child = make(map[string]any)
		node[head] = child
	}
	insertNested(child, parts[1:], value)
}
