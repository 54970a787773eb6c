package icons

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Manifest is the set of icon slugs known to exist. A nil Manifest is valid
// and means "unknown": it never reorders candidates.
type Manifest map[string]struct{}

// ParseManifest decodes a JSON array of icon identifiers. Entries are
// lowercased; non-string entries are stringified the way they were written.
func ParseManifest(data []byte) (Manifest, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode icon manifest: %w", err)
	}
	m := make(Manifest, len(raw))
	for _, entry := range raw {
		var s string
		switch v := entry.(type) {
		case string:
			s = v
		case nil:
			s = "null"
		default:
			s = fmt.Sprint(v)
		}
		m[strings.ToLower(s)] = struct{}{}
	}
	return m, nil
}

// NewManifest builds a Manifest from slugs.
func NewManifest(slugs ...string) Manifest {
	m := make(Manifest, len(slugs))
	for _, s := range slugs {
		m[strings.ToLower(s)] = struct{}{}
	}
	return m
}

// Has reports whether slug is listed. A nil manifest lists nothing.
func (m Manifest) Has(slug string) bool {
	if m == nil {
		return false
	}
	_, ok := m[slug]
	return ok
}

// Len returns the number of listed slugs.
func (m Manifest) Len() int {
	return len(m)
}
