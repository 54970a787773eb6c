package icons

// aliases maps common integration slugs to filename variants seen in icon packs.
var aliases = map[string][]string{
	"google-sheets":     {"google-sheets", "sheets", "sheet", "gsheets"},
	"google-drive":      {"google-drive", "drive", "gdrive"},
	"google-calendar":   {"google-calendar", "calendar", "gcal"},
	"docs":              {"docs", "google-docs", "gdocs", "doc"},
	"gmail":             {"gmail", "mail-gmail"},
	"outlook":           {"outlook", "microsoft-outlook"},
	"slack":             {"slack"},
	"linkedin":          {"linkedin"},
	"youtube":           {"youtube", "yt"},
	"chatgpt":           {"chatgpt", "openai-chatgpt", "gpt"},
	"openai":            {"openai"},
	"tavily":            {"tavily"},
	"firecrawl":         {"firecrawl", "fire"},
	"apify":             {"apify"},
	"gemini":            {"gemini"},
	"claude":            {"claude"},
	"chat":              {"chat", "google-chat"},
	"registration-form": {"registration-form", "form"},
	"files":             {"files", "file"},
}

// Aliases returns a copy of the alias list registered for slug.
func Aliases(slug string) []string {
	list, ok := aliases[slug]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
