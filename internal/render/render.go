package render

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
	"github.com/alexisbeaulieu97/workflowdeck/internal/widgets"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/app.js
var appScript []byte

// ScriptPath is where the server publishes the page script.
const ScriptPath = "/assets/app.js"

// Script returns a copy of the page script.
func Script() []byte {
	return append([]byte(nil), appScript...)
}

// Options tunes a Renderer.
type Options struct {
	// Prober settles badge icons before rendering. Nil leaves the fallback
	// to the client through data attributes.
	Prober icons.Prober
	// OnBadge is called once per rendered or dropped badge.
	OnBadge func(BadgeOutcome)
}

// Renderer turns catalog items into HTML. Interpolated text is escaped by
// html/template; the only rich-text field, the overview, is sanitised.
type Renderer struct {
	resolver *icons.Resolver
	prober   icons.Prober
	onBadge  func(BadgeOutcome)
	ugc      *bluemonday.Policy
	strict   *bluemonday.Policy
	tmpl     *template.Template
}

// New parses the embedded templates and returns a Renderer.
func New(resolver *icons.Resolver, opts Options) (*Renderer, error) {
	if resolver == nil {
		resolver = icons.NewResolver("")
	}
	r := &Renderer{
		resolver: resolver,
		prober:   opts.Prober,
		onBadge:  opts.OnBadge,
		ugc:      bluemonday.UGCPolicy(),
		strict:   bluemonday.StrictPolicy(),
	}
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"overview":   r.Overview,
		"transition": transition,
		"script":     func() template.JS { return template.JS(appScript) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Card is the view of one catalog item in the grid.
type Card struct {
	ID          string
	Title       string
	Description string
	Badges      []Badge
}

// Card builds the card view for item. The item itself is left untouched.
func (r *Renderer) Card(ctx context.Context, item catalog.Item) Card {
	return Card{
		ID:          item.ID.String(),
		Title:       item.Title,
		Description: PadDescription(item.Description),
		Badges:      r.Badges(ctx, item.Integrations),
	}
}

// Cards builds card views in the order of items.
func (r *Renderer) Cards(ctx context.Context, items []catalog.Item) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, r.Card(ctx, item))
	}
	return cards
}

// WriteCards writes the grid fragment for items.
func (r *Renderer) WriteCards(ctx context.Context, w io.Writer, items []catalog.Item) error {
	return r.tmpl.ExecuteTemplate(w, "cards", r.Cards(ctx, items))
}

// WriteModal writes the detail modal fragment for item.
func (r *Renderer) WriteModal(w io.Writer, item catalog.Item) error {
	return r.tmpl.ExecuteTemplate(w, "modal", modal.ContentFor(item))
}

// Overview sanitises rich overview text for direct inclusion in a page.
func (r *Renderer) Overview(html string) template.HTML {
	return template.HTML(r.ugc.Sanitize(html))
}

// PlainText strips every tag from rich text, for terminal display.
func (r *Renderer) PlainText(html string) string {
	return r.strict.Sanitize(html)
}

func (r *Renderer) observe(outcome BadgeOutcome) {
	if r.onBadge != nil {
		r.onBadge(outcome)
	}
}

// transition reports whether following href should play the page-exit
// animation first.
func transition(href string) bool {
	return widgets.Intercepts(widgets.LinkClick{Href: href})
}
