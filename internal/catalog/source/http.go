package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// maxDocumentSize bounds remote documents.
const maxDocumentSize = 32 << 20

// HTTPSource fetches a document with a GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client gets a default with a
// request timeout.
func NewHTTPSource(rawURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = defaultHTTPClient()
	}
	return &HTTPSource{URL: rawURL, Client: client}
}

// Fetch implements Source.
func (h *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, wferrors.NewFetchError(h.URL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, wferrors.NewFetchError(h.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, wferrors.NewFetchError(h.URL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, wferrors.NewFetchError(h.URL, err)
	}
	return data, nil
}

func (h *HTTPSource) String() string {
	return h.URL
}
