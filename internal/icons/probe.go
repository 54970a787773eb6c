package icons

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Prober reports whether an icon file can be loaded. Each false answer is
// treated as one load failure.
type Prober interface {
	Exists(ctx context.Context, file string) bool
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context, file string) bool

// Exists implements Prober.
func (f ProberFunc) Exists(ctx context.Context, file string) bool {
	return f(ctx, file)
}

// Probe drives f against p until a source loads or the candidates run out.
// It returns the loaded source and true, or "" and false when the badge must
// be dropped. Cancellation counts as a terminal failure.
func Probe(ctx context.Context, f *Fallback, p Prober) (string, bool) {
	if f == nil || p == nil {
		return "", false
	}
	for !f.Exhausted() {
		if ctx.Err() != nil {
			return "", false
		}
		if p.Exists(ctx, f.File()) {
			return f.Source(), true
		}
		if _, ok := f.Fail(); !ok {
			break
		}
	}
	return "", false
}

// DirProber looks icons up in a local directory.
type DirProber struct {
	Root string
}

// Exists implements Prober.
func (d DirProber) Exists(_ context.Context, file string) bool {
	if file == "" || strings.ContainsAny(file, `/\`) {
		return false
	}
	info, err := os.Stat(filepath.Join(d.Root, file))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// HTTPProber checks icon availability with HEAD requests against Base.
type HTTPProber struct {
	Base   string
	Client *http.Client
}

// NewHTTPProber creates an HTTPProber with a short request timeout.
func NewHTTPProber(base string) *HTTPProber {
	return &HTTPProber{
		Base:   strings.TrimSuffix(base, "/"),
		Client: &http.Client{Timeout: 3 * time.Second},
	}
}

// Exists implements Prober.
func (h *HTTPProber) Exists(ctx context.Context, file string) bool {
	if file == "" {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.Base+"/"+file, nil)
	if err != nil {
		return false
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
