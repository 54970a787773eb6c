package icons

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCandidatesWithoutManifest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "alias table after dedup", in: "Google Sheets", want: []string{"google-sheets", "sheets", "sheet", "gsheets"}},
		{name: "single word with aliases", in: "YouTube", want: []string{"youtube", "yt"}},
		{name: "no alias", in: "Airtable Base", want: []string{"airtable-base", "base"}},
		{name: "single word without alias", in: "Notion", want: []string{"notion"}},
		{name: "empty name", in: "", want: []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, Candidates(tc.in, nil)); diff != "" {
				t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCandidatesManifestReordersPresentFirst(t *testing.T) {
	t.Parallel()

	manifest := NewManifest("gsheets", "sheets")
	got := Candidates("Google Sheets", manifest)
	require.Equal(t, []string{"sheets", "gsheets", "google-sheets", "sheet"}, got)
}

func TestCandidatesManifestWithoutMatchesKeepsOrder(t *testing.T) {
	t.Parallel()

	manifest := NewManifest("slack", "notion")
	got := Candidates("Google Sheets", manifest)
	require.Equal(t, []string{"google-sheets", "sheets", "sheet", "gsheets"}, got)
}

func TestCandidatesNeverFilterOut(t *testing.T) {
	t.Parallel()

	without := Candidates("Google Drive", nil)
	with := Candidates("Google Drive", NewManifest("gdrive"))
	require.ElementsMatch(t, without, with)
	require.Equal(t, "gdrive", with[0])
}

func TestResolverManifestLifecycle(t *testing.T) {
	t.Parallel()

	r := NewResolver("")
	require.Equal(t, DefaultBase, r.Base())
	require.Nil(t, r.Manifest())
	require.Equal(t, []string{"gmail", "mail-gmail"}, r.Candidates("Gmail"))

	r.SetManifest(NewManifest("mail-gmail"))
	require.Equal(t, []string{"mail-gmail", "gmail"}, r.Candidates("Gmail"))

	r.SetManifest(nil)
	require.Equal(t, []string{"gmail", "mail-gmail"}, r.Candidates("Gmail"))
}

func TestAliasesReturnsCopy(t *testing.T) {
	t.Parallel()

	list := Aliases("files")
	require.Equal(t, []string{"files", "file"}, list)
	list[0] = "mutated"
	require.Equal(t, []string{"files", "file"}, Aliases("files"))
	require.Nil(t, Aliases("unknown"))
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := ParseManifest([]byte(`["Slack", "gmail", 42]`))
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())
	require.True(t, m.Has("slack"))
	require.True(t, m.Has("42"))
	require.False(t, m.Has("Slack"))

	_, err = ParseManifest([]byte(`{"not": "a list"}`))
	require.Error(t, err)
}
