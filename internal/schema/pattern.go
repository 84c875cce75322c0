package schema

import (
	"fmt"
	"strings"
)

// CheckPattern validates a dotted rule pattern. Segments must be non-empty,
// and at most one segment may be the wildcard "*". A "*" glued inside a
// longer segment ("net.ip*") is rejected.
func CheckPattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}
	wildcards := 0
	for _, seg := range strings.Split(pattern, ".") {
		switch {
		case seg == "":
			return fmt.Errorf("pattern %q has an empty segment", pattern)
		case seg == "*":
			wildcards++
		case strings.Contains(seg, "*"):
			return fmt.Errorf("pattern %q: wildcard must occupy a full segment", pattern)
		}
	}
	if wildcards > 1 {
		return fmt.Errorf("pattern %q has more than one wildcard segment", pattern)
	}
	return nil
}

// MatchPattern reports whether key matches pattern. An exact pattern matches
// only the identical key. A wildcard segment matches exactly one key segment,
// never several, so the segment counts must agree.
func MatchPattern(pattern, key string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == key
	}
	psegs := strings.Split(pattern, ".")
	ksegs := strings.Split(key, ".")
	if len(psegs) != len(ksegs) {
		return false
	}
	for i, p := range psegs {
		if p != "*" && p != ksegs[i] {
			return false
		}
	}
	return true
}
