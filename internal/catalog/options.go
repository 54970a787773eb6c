package catalog

import "sort"

// Options lists the distinct values each select filter can take.
type Options struct {
	UseCases     []string
	Integrations []string
	Difficulties []string
}

// BuildOptions collects sorted, de-duplicated filter values from items.
// Empty difficulties are skipped because the unset filter already covers them.
func BuildOptions(items []Item) Options {
	var useCases, integrations, difficulties []string
	for _, item := range items {
		useCases = append(useCases, item.UseCases...)
		integrations = append(integrations, item.Integrations...)
		if item.Difficulty != "" {
			difficulties = append(difficulties, item.Difficulty)
		}
	}
	return Options{
		UseCases:     sortedSet(useCases),
		Integrations: sortedSet(integrations),
		Difficulties: sortedSet(difficulties),
	}
}

func sortedSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
