package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// GitSource reads a document out of a shallow clone of a git repository.
// The clone lives under CacheDir and is refreshed with a pull on every Fetch.
type GitSource struct {
	Repo     string
	Ref      string
	Path     string
	CacheDir string

	mu sync.Mutex
}

// ParseGitURI parses git+<transport>://host/repo.git?ref=branch#path/in/repo.
func ParseGitURI(uri, cacheDir string) (*GitSource, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, wferrors.NewValidationError("source", "invalid git URI", err)
	}
	docPath := strings.TrimPrefix(u.Fragment, "/")
	if docPath == "" {
		return nil, wferrors.NewValidationError("source", "git URI needs a #path to the document", nil)
	}
	if cleaned := path.Clean(docPath); strings.HasPrefix(cleaned, "..") {
		return nil, wferrors.NewValidationError("source", "git document path escapes the repository", nil)
	}
	ref := u.Query().Get("ref")

	u.Scheme = strings.TrimPrefix(u.Scheme, "git+")
	u.Fragment = ""
	u.RawQuery = ""

	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "workflowdeck", "git")
	}

	return &GitSource{Repo: u.String(), Ref: ref, Path: docPath, CacheDir: cacheDir}, nil
}

// Fetch implements Source.
func (g *GitSource) Fetch(ctx context.Context) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dir := g.checkoutDir()
	if err := g.sync(ctx, dir); err != nil {
		return nil, wferrors.NewFetchError(g.String(), err)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(g.Path)))
	if err != nil {
		return nil, wferrors.NewFetchError(g.String(), err)
	}
	return data, nil
}

func (g *GitSource) sync(ctx context.Context, dir string) error {
	repo, err := git.PlainOpen(dir)
	if err == nil {
		wt, err := repo.Worktree()
		if err != nil {
			return fmt.Errorf("open worktree: %w", err)
		}
		opts := &git.PullOptions{RemoteName: "origin", Depth: 1, Force: true}
		if g.Ref != "" {
			opts.ReferenceName = plumbing.NewBranchReferenceName(g.Ref)
			opts.SingleBranch = true
		}
		err = wt.PullContext(ctx, opts)
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return fmt.Errorf("pull %s: %w", g.Repo, err)
		}
		return nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return fmt.Errorf("open checkout: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	opts := &git.CloneOptions{URL: g.Repo, Depth: 1}
	if g.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(g.Ref)
		opts.SingleBranch = true
	}
	if _, err := git.PlainCloneContext(ctx, dir, false, opts); err != nil {
		_ = os.RemoveAll(dir)
		return fmt.Errorf("clone %s: %w", g.Repo, err)
	}
	return nil
}

func (g *GitSource) checkoutDir() string {
	sum := sha256.Sum256([]byte(g.Repo + "@" + g.Ref))
	return filepath.Join(g.CacheDir, hex.EncodeToString(sum[:8]))
}

func (g *GitSource) String() string {
	s := g.Repo
	if g.Ref != "" {
		s += "@" + g.Ref
	}
	return s + "#" + g.Path
}
