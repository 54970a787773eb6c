package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Text is a string field that also accepts JSON numbers and booleans, keeping
// the literal as written. Catalog files in the wild use numeric ids and
// versions interchangeably with strings.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case data[0] == '{' || data[0] == '[':
		return &json.UnmarshalTypeError{Value: "object or array", Type: textType}
	default:
		*t = Text(data)
		return nil
	}
}

// String returns the text value.
func (t Text) String() string {
	return string(t)
}

// Item is one workflow entry of the catalog. Items are immutable once loaded.
type Item struct {
	ID           Text     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	UseCases     []string `json:"useCases"`
	Integrations []string `json:"integrations"`
	Difficulty   string   `json:"difficulty"`
	Tags         []string `json:"tags"`

	// Overview is rich text (HTML) and is never escaped, only sanitised.
	Overview string `json:"overview,omitempty"`

	Created Text `json:"created,omitempty"`
	Updated Text `json:"updated,omitempty"`
	Owner   Text `json:"owner,omitempty"`
	Version Text `json:"version,omitempty"`

	DownloadURL string `json:"downloadUrl,omitempty"`
	WorkflowURL string `json:"workflowUrl,omitempty"`
	URL         string `json:"url,omitempty"`
}

// SearchText is the haystack the free-text filter matches against: title,
// description and tags joined by single spaces, lowercased.
func (i Item) SearchText() string {
	return strings.ToLower(i.Title + " " + i.Description + " " + strings.Join(i.Tags, " "))
}

// ActionURL returns the first non-empty of the download, workflow and generic
// URLs, in that priority order.
func (i Item) ActionURL() string {
	for _, u := range []string{i.DownloadURL, i.WorkflowURL, i.URL} {
		if u != "" {
			return u
		}
	}
	return ""
}

// HasUseCase reports whether the item lists useCase exactly.
func (i Item) HasUseCase(useCase string) bool {
	return contains(i.UseCases, useCase)
}

// HasIntegration reports whether the item lists integration exactly.
func (i Item) HasIntegration(integration string) bool {
	return contains(i.Integrations, integration)
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
