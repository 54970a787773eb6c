package icons

import (
	"strconv"
	"strings"
)

// DefaultExtensions is the order in which file formats are attempted.
var DefaultExtensions = []string{"svg", "png", "webp"}

// Fallback is the per-badge resolution state: an ordered candidate list, an
// ordered extension list and a cursor into each. Every Fail strictly advances
// the combined (candidate, extension) ordinal, so a Fallback is exhausted
// after at most len(candidates)*len(extensions)-1 failures.
type Fallback struct {
	base       string
	slug       string
	candidates []string
	exts       []string
	cIdx       int
	eIdx       int
	exhausted  bool
}

// NewFallback creates resolution state. Empty candidates are dropped; slug is
// only used to build the initial source when no candidate survives. A nil
// exts uses DefaultExtensions.
func NewFallback(base, slug string, candidates, exts []string) *Fallback {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return &Fallback{
		base:       strings.TrimSuffix(base, "/"),
		slug:       slug,
		candidates: kept,
		exts:       append([]string(nil), exts...),
	}
}

// File returns the current "<candidate>.<ext>" file name, or "" once exhausted.
func (f *Fallback) File() string {
	if f.exhausted {
		return ""
	}
	name := f.slug
	if f.cIdx < len(f.candidates) {
		name = f.candidates[f.cIdx]
	}
	return name + "." + f.exts[f.eIdx]
}

// Source returns the URL of the current attempt, or "" once exhausted.
func (f *Fallback) Source() string {
	file := f.File()
	if file == "" {
		return ""
	}
	return f.base + "/" + file
}

// Fail records a load failure of the current source. It advances the
// extension cursor, wrapping onto the next candidate, and returns the next
// source to try. ok is false when no candidate remains; the badge must then
// be removed. Calling Fail on an exhausted Fallback is a no-op.
func (f *Fallback) Fail() (next string, ok bool) {
	if f.exhausted {
		return "", false
	}
	f.eIdx++
	if f.eIdx >= len(f.exts) {
		f.eIdx = 0
		f.cIdx++
	}
	if f.cIdx >= len(f.candidates) {
		f.exhausted = true
		return "", false
	}
	return f.Source(), true
}

// Exhausted reports whether resolution has been abandoned.
func (f *Fallback) Exhausted() bool {
	return f.exhausted
}

// Cursor returns the candidate and extension indexes.
func (f *Fallback) Cursor() (candidate, extension int) {
	return f.cIdx, f.eIdx
}

// Candidates returns a copy of the candidate list.
func (f *Fallback) Candidates() []string {
	return append([]string(nil), f.candidates...)
}

// Extensions returns a copy of the extension list.
func (f *Fallback) Extensions() []string {
	return append([]string(nil), f.exts...)
}

// Attributes returns the data-* attribute values carried by a badge image so
// a client can continue the fallback without recomputing candidates.
func (f *Fallback) Attributes() map[string]string {
	return map[string]string{
		"data-candidates": strings.Join(f.candidates, "|"),
		"data-exts":       strings.Join(f.exts, ","),
		"data-cidx":       strconv.Itoa(f.cIdx),
		"data-eidx":       strconv.Itoa(f.eIdx),
	}
}
