package render

import (
	"context"
	"io"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
	"github.com/alexisbeaulieu97/workflowdeck/internal/widgets"
)

// Page is the input of a full catalog page render.
type Page struct {
	Title   string
	Theme   string
	State   catalog.FilterState
	Options catalog.Options
	Items   []catalog.Item
	Slides  []widgets.Slide
	// LoadErr replaces the grid with the empty-state message.
	LoadErr error
	// Modal, when set, is rendered open over the grid.
	Modal *modal.Content
	// ScriptSrc links the page script; empty inlines it.
	ScriptSrc     string
	Notifications bool
}

type pageView struct {
	Title   string
	Theme   string
	State   catalog.FilterState
	Options catalog.Options
	Label   string
	Cards   []Card
	Empty   string
	Slides  []widgets.Slide
	Dots    []bool
	Timings timings

	IconBase      string
	Modal         *modal.Content
	ScriptSrc     string
	Notifications bool
	Pools         widgets.Pools
}

// timings are the client animation and widget durations, in milliseconds.
type timings struct {
	Enter       int64
	Exit        int64
	Slide       int64
	ModalExit   int64
	NotifyFirst int64
	NotifyLife  int64
	NotifyExit  int64
}

var pageTimings = timings{
	Enter:       widgets.EnterAnimation.Milliseconds(),
	Exit:        widgets.ExitDelay.Milliseconds(),
	Slide:       widgets.SlideInterval.Milliseconds(),
	ModalExit:   modal.ExitDelay.Milliseconds(),
	NotifyFirst: widgets.FirstNotificationDelay.Milliseconds(),
	NotifyLife:  widgets.NotificationLifetime.Milliseconds(),
	NotifyExit:  widgets.DismissAnimation.Milliseconds(),
}

// WritePage renders the whole catalog page.
func (r *Renderer) WritePage(ctx context.Context, w io.Writer, p Page) error {
	theme := p.Theme
	if theme == "" {
		theme = "light"
	}
	slider := widgets.NewSlider(len(p.Slides))
	view := pageView{
		Title:   p.Title,
		Theme:   theme,
		State:   p.State,
		Options: p.Options,
		Label:   catalog.ResultLabel(len(p.Items)),
		Slides:  p.Slides,
		Dots:    slider.Dots(),
		Timings: pageTimings,

		IconBase:      r.resolver.Base(),
		Modal:         p.Modal,
		ScriptSrc:     p.ScriptSrc,
		Notifications: p.Notifications,
		Pools:         widgets.ClientPools(),
	}
	if p.LoadErr != nil {
		view.Empty = catalog.EmptyMessage
		view.Label = catalog.ResultLabel(0)
	} else {
		view.Cards = r.Cards(ctx, p.Items)
	}
	return r.tmpl.ExecuteTemplate(w, "page", view)
}
