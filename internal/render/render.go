// Package render encodes parsed documents for output.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/uonr/sysctl-parser/internal/conf"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name from the CLI.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML, FormatTOML:
		return Format(name), nil
	}
	return "", fmt.Errorf("unsupported format %q (want json, yaml or toml)", name)
}

// Document writes doc to w in the requested format. Flat output is the
// ordered list of {key, value, line} objects, preserving file order. Nested
// output is the dotted-key tree. TOML has no top-level array form, so it
// always renders the tree.
func Document(w io.Writer, doc *conf.Document, format Format, nested bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if nested {
			return enc.Encode(doc.Nested())
		}
		return enc.Encode(doc.Entries())
	case FormatYAML:
		var v any = doc.Entries()
		if nested {
			v = doc.Nested()
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc.Nested())
	}
	return fmt.Errorf("unsupported format %q", format)
}
