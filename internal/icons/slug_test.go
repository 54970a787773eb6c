package icons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces become hyphens", in: "Google Sheets", want: "google-sheets"},
		{name: "plus is spelled out", in: "Google+", want: "googleplus"},
		{name: "ampersand is spelled out", in: "Q&A Bot", want: "qanda-bot"},
		{name: "runs collapse", in: "  Make.com  /  API ", want: "make-com-api"},
		{name: "non ascii is a separator", in: "Café Sync", want: "caf-sync"},
		{name: "leading and trailing separators trimmed", in: "--Slack--", want: "slack"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Slug(tc.in))
		})
	}
}

func TestLastWord(t *testing.T) {
	t.Parallel()

	require.Equal(t, "sheets", LastWord("google-sheets"))
	require.Equal(t, "slack", LastWord("slack"))
	require.Equal(t, "", LastWord(""))
}
