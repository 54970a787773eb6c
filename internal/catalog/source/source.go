// Package source fetches catalog and manifest documents from local files,
// HTTP endpoints, git repositories and S3 buckets.
package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// Source yields the raw bytes of one document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// Options carries the settings shared by every source kind.
type Options struct {
	// CacheDir holds git checkouts.
	CacheDir   string
	HTTPClient *http.Client
	S3         S3Options
}

// Open builds a Source from a URI. Supported forms:
//
//	data/projects.json
//	file:///srv/catalog/projects.json
//	https://example.com/projects.json
//	git+https://github.com/org/repo.git?ref=main#data/projects.json
//	s3://bucket/path/projects.json
func Open(uri string, opts Options) (Source, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, wferrors.NewValidationError("source", "source URI is empty", nil)
	}

	scheme := ""
	if i := strings.Index(uri, "://"); i > 0 {
		scheme = strings.ToLower(uri[:i])
	}

	switch {
	case scheme == "":
		return &FileSource{Path: uri}, nil
	case scheme == "file":
		u, err := url.Parse(uri)
		if err != nil {
			return nil, wferrors.NewValidationError("source", "invalid file URI", err)
		}
		return &FileSource{Path: u.Path}, nil
	case scheme == "http" || scheme == "https":
		return NewHTTPSource(uri, opts.HTTPClient), nil
	case strings.HasPrefix(scheme, "git+"):
		return ParseGitURI(uri, opts.CacheDir)
	case scheme == "s3":
		return ParseS3URI(uri, opts.S3)
	default:
		return nil, wferrors.NewValidationError("source", fmt.Sprintf("unsupported scheme %q", scheme), nil)
	}
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
