package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

var textType = reflect.TypeOf(Text(""))

// Document is the on-disk catalog shape.
type Document struct {
	Projects []Item `json:"projects"`
}

// Parse decodes a catalog document. A document without a projects list is an
// empty catalog, not an error.
func Parse(source string, data []byte) ([]Item, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wferrors.NewParseError(source, lineOf(data, err), err)
	}
	if doc.Projects == nil {
		return []Item{}, nil
	}
	return doc.Projects, nil
}

// Encode writes items back as a catalog document.
func Encode(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(Document{Projects: items}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return data, nil
}

func lineOf(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset <= 0 {
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// Issue is a non-fatal catalog problem worth logging.
type Issue struct {
	Index   int
	ID      string
	Message string
}

// Check reports duplicate identifiers and untitled items. The catalog stays
// usable either way; lookups by id resolve to the first occurrence.
func Check(items []Item) []Issue {
	var issues []Issue
	seen := make(map[Text]int, len(items))
	for i, item := range items {
		if first, ok := seen[item.ID]; ok {
			issues = append(issues, Issue{
				Index:   i,
				ID:      item.ID.String(),
				Message: fmt.Sprintf("duplicate id (first seen at index %d)", first),
			})
		} else {
			seen[item.ID] = i
		}
		if item.Title == "" {
			issues = append(issues, Issue{Index: i, ID: item.ID.String(), Message: "missing title"})
		}
	}
	return issues
}
