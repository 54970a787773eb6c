package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	data := []byte(`{
  "projects": [
    {
      "id": 7,
      "title": "AI Email Sales",
      "description": "Draft replies.",
      "useCases": ["Sales"],
      "integrations": ["Gmail", "ChatGPT"],
      "difficulty": "Beginner",
      "tags": ["email"],
      "overview": "<p>Uses <b>GPT</b>.</p>",
      "version": 2,
      "owner": "growth",
      "workflowUrl": "https://example.test/wf.json"
    },
    {"id": "abc", "title": "String id"}
  ]
}`)

	items, err := Parse("projects.json", data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	require.Equal(t, Text("7"), first.ID)
	require.Equal(t, Text("2"), first.Version)
	require.Equal(t, Text("growth"), first.Owner)
	require.Equal(t, []string{"Gmail", "ChatGPT"}, first.Integrations)
	require.Equal(t, "https://example.test/wf.json", first.ActionURL())
	require.Equal(t, Text("abc"), items[1].ID)
	require.Empty(t, items[1].ActionURL())
}

func TestParseMissingProjectsIsEmpty(t *testing.T) {
	t.Parallel()

	items, err := Parse("projects.json", []byte(`{"items": []}`))
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestParseReportsLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("projects.json", []byte("{\n  \"projects\": [\n    {\"id\": 1,,}\n  ]\n}"))
	var parseErr *wferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "projects.json", parseErr.Path)
	require.Equal(t, 3, parseErr.Line)
}

func TestParseRejectsObjectID(t *testing.T) {
	t.Parallel()

	_, err := Parse("projects.json", []byte(`{"projects":[{"id":{"nested":true}}]}`))
	require.Error(t, err)
}

func TestActionURLPriority(t *testing.T) {
	t.Parallel()

	require.Equal(t, "d", Item{DownloadURL: "d", WorkflowURL: "w", URL: "u"}.ActionURL())
	require.Equal(t, "w", Item{WorkflowURL: "w", URL: "u"}.ActionURL())
	require.Equal(t, "u", Item{URL: "u"}.ActionURL())
	require.Equal(t, "", Item{}.ActionURL())
}

func TestCheckReportsDuplicatesAndUntitled(t *testing.T) {
	t.Parallel()

	issues := Check([]Item{
		{ID: "1", Title: "One"},
		{ID: "1", Title: "Again"},
		{ID: "2"},
	})
	require.Len(t, issues, 2)
	require.Equal(t, 1, issues[0].Index)
	require.Contains(t, issues[0].Message, "duplicate id")
	require.Equal(t, "missing title", issues[1].Message)
}

func TestEncodeRoundTripsIDsAsText(t *testing.T) {
	t.Parallel()

	data, err := Encode([]Item{{ID: "7", Title: "Seven"}})
	require.NoError(t, err)

	items, err := Parse("encoded", data)
	require.NoError(t, err)
	require.Equal(t, Text("7"), items[0].ID)
}
