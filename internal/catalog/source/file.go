package source

import (
	"context"
	"os"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// FileSource reads a document from the local filesystem.
type FileSource struct {
	Path string
}

// Fetch implements Source.
func (f *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, wferrors.NewFetchError(f.Path, err)
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, wferrors.NewFetchError(f.Path, err)
	}
	return data, nil
}

func (f *FileSource) String() string {
	return f.Path
}
