// Package icons resolves integration names to icon file candidates.
//
// A name is normalised into a slug, expanded with a last-word variant and a
// static alias table, and optionally reordered so that slugs listed in an
// icon manifest come first. Resolution at render time walks candidates and
// extensions in order until a source loads or the list is exhausted, at
// which point the badge is dropped.
package icons
