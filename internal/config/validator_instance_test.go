package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidSourceURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		uri  string
		want bool
	}{
		{uri: "data/projects.json", want: true},
		{uri: "/srv/catalog/projects.json", want: true},
		{uri: "file:///srv/catalog/projects.json", want: true},
		{uri: "https://example.test/projects.json", want: true},
		{uri: "git+https://github.com/acme/wf.git#data/projects.json", want: true},
		{uri: "s3://bucket/key.json", want: true},
		{uri: "", want: false},
		{uri: "   ", want: false},
		{uri: "ftp://example.test/x", want: false},
		{uri: "git+https://github.com/acme/wf.git", want: false},
		{uri: "s3://bucket", want: false},
		{uri: "bad\x00path", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, isValidSourceURI(tt.uri))
		})
	}
}

func TestThemeTag(t *testing.T) {
	t.Parallel()

	type probe struct {
		Theme string `validate:"theme"`
	}
	v := GetValidator()
	require.NoError(t, v.Struct(probe{Theme: "light"}))
	require.NoError(t, v.Struct(probe{Theme: "dark"}))
	require.Error(t, v.Struct(probe{Theme: "Dark"}))
}

func TestToSnake(t *testing.T) {
	t.Parallel()

	require.Equal(t, "shutdown_timeout", toSnake("ShutdownTimeout"))
	require.Equal(t, "ui", toSnake("UI"))
	require.Equal(t, "slides[0]", toSnake("Slides[0]"))
	require.Equal(t, "cache_dir", toSnake("CacheDir"))
}
