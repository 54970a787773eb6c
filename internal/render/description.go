package render

import "strings"

// Filler is appended to short descriptions so every card fills its
// three-line clamp.
const Filler = " More details inside."

// MinSentences is the sentence count a card description is padded to.
const MinSentences = 3

// CountSentences counts the non-empty pieces of s after collapsing
// whitespace runs and splitting after '.', '!' or '?' followed by whitespace.
func CountSentences(s string) int {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 0
	}
	count := 1
	for _, w := range words[:len(words)-1] {
		switch w[len(w)-1] {
		case '.', '!', '?':
			count++
		}
	}
	return count
}

// PadDescription appends Filler until desc holds at least MinSentences
// sentences. Descriptions that are already long enough are returned as is.
func PadDescription(desc string) string {
	for CountSentences(desc) < MinSentences {
		desc += Filler
	}
	return desc
}
