package modal

import (
	"strings"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
)

// Placeholder substitutes missing optional detail values.
const Placeholder = "—"

// NoOverview is shown when an item has no overview text.
const NoOverview = "No overview yet."

// Detail is one key/value row of the details table.
type Detail struct {
	Key   string
	Value string
}

// Content is everything the modal displays for one item. Overview is rich
// text; every other field is plain text.
type Content struct {
	ItemID       string
	Title        string
	Description  string
	Meta         []string
	Overview     string
	HasOverview  bool
	Details      []Detail
	Tags         []string
	DownloadURL  string
	DownloadName string
}

// ContentFor builds modal content for item.
func ContentFor(item catalog.Item) Content {
	var meta []string
	if len(item.UseCases) > 0 {
		meta = append(meta, "Use cases: "+strings.Join(item.UseCases, ", "))
	}
	if len(item.Integrations) > 0 {
		meta = append(meta, "Integrations: "+strings.Join(item.Integrations, ", "))
	}

	overview := item.Overview
	hasOverview := overview != ""
	if !hasOverview {
		overview = NoOverview
	}

	name := item.Title
	if name == "" {
		name = "workflow"
	}

	return Content{
		ItemID:      item.ID.String(),
		Title:       item.Title,
		Description: item.Description,
		Meta:        meta,
		Overview:    overview,
		HasOverview: hasOverview,
		Details: []Detail{
			{Key: "ID", Value: item.ID.String()},
			{Key: "Created", Value: orPlaceholder(item.Created.String())},
			{Key: "Updated", Value: orPlaceholder(item.Updated.String())},
			{Key: "Owner", Value: orPlaceholder(item.Owner.String())},
			{Key: "Version", Value: orPlaceholder(item.Version.String())},
		},
		Tags:         append([]string(nil), item.Tags...),
		DownloadURL:  item.ActionURL(),
		DownloadName: name,
	}
}

// HasDownload reports whether the download action should be shown.
func (c Content) HasDownload() bool {
	return c.DownloadURL != ""
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
