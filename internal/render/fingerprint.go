package render

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/uonr/sysctl-parser/internal/conf"
)

// Fingerprint computes the SHA-256 hash of the document's content in
// canonical form and returns it prefixed with "sha256:". Two documents with
// the same key -> value content fingerprint identically regardless of entry
// order or formatting.
func Fingerprint(doc *conf.Document) string {
	hash := sha256.Sum256(canonicalJSON(doc.Values()))
	return "sha256:" + hex.EncodeToString(hash[:])
}

// canonicalJSON serializes values as a JSON object with sorted keys and no
// insignificant whitespace, for deterministic hashing.
func canonicalJSON(values map[string]string) []byte {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, _ := json.Marshal(values[k])
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}
