package main

import (
	"fmt"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/render"
)

func renderPage(app *AppContext, theme string, state catalog.FilterState, items []catalog.Item, loadErr error) render.Page {
	return render.Page{
		Title:   app.Config.Title,
		Theme:   theme,
		State:   state,
		Options: catalog.BuildOptions(items),
		Items:   catalog.Filter(items, state),
		Slides:  app.Config.UI.Slides,
		LoadErr: loadErr,

		Notifications: app.Config.UI.Notifications,
	}
}

func errInvalidTheme(theme string) error {
	return fmt.Errorf("unknown theme %q", theme)
}
