package icons

import "sync"

// DefaultBase is the URL prefix icons are served from when none is configured.
const DefaultBase = "./assets/icons"

// Resolver computes ordered icon candidates for integration names.
// The manifest may be installed after construction, so it is guarded for
// concurrent readers.
type Resolver struct {
	mu       sync.RWMutex
	manifest Manifest
	base     string
}

// NewResolver creates a Resolver serving icons under base. An empty base
// falls back to DefaultBase.
func NewResolver(base string) *Resolver {
	if base == "" {
		base = DefaultBase
	}
	return &Resolver{base: base}
}

// SetManifest installs (or clears, with nil) the icon manifest.
func (r *Resolver) SetManifest(m Manifest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.manifest = m
}

// Manifest returns the installed manifest, nil when none is loaded.
func (r *Resolver) Manifest() Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.manifest
}

// Base returns the URL prefix icon sources are built from.
func (r *Resolver) Base() string {
	return r.base
}

// Candidates returns the ordered candidate slugs for an integration name.
func (r *Resolver) Candidates(name string) []string {
	return Candidates(name, r.Manifest())
}

// Fallback creates the runtime resolution state for name.
func (r *Resolver) Fallback(name string) *Fallback {
	return NewFallback(r.base, Slug(name), r.Candidates(name), nil)
}

// Candidates computes the candidate list for name against an optional
// manifest. Candidates found in the manifest move to the front, keeping
// relative order, but only when at least one of them is listed; otherwise
// the natural order is returned unchanged.
func Candidates(name string, manifest Manifest) []string {
	slug := Slug(name)
	base := []string{slug}
	if last := LastWord(slug); last != "" && last != slug {
		base = append(base, last)
	}
	base = append(base, aliases[slug]...)

	candidates := dedupe(base)
	if manifest == nil {
		return candidates
	}

	present := make([]string, 0, len(candidates))
	absent := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if manifest.Has(c) {
			present = append(present, c)
		} else {
			absent = append(absent, c)
		}
	}
	if len(present) == 0 {
		return candidates
	}
	return append(present, absent...)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
