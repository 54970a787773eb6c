package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
	"github.com/alexisbeaulieu97/workflowdeck/internal/render"
	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// ItemsResponse is the body of GET /api/items.
type ItemsResponse struct {
	Count int            `json:"count"`
	Label string         `json:"label"`
	Items []catalog.Item `json:"items"`
}

// IconsResponse is the body of GET /api/icons/{name}.
type IconsResponse struct {
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	Candidates []string          `json:"candidates"`
	Source     string            `json:"source"`
	Attributes map[string]string `json:"attributes"`
}

func filterState(r *http.Request) catalog.FilterState {
	q := r.URL.Query()
	return catalog.FilterState{
		Search:      q.Get("q"),
		UseCase:     q.Get("usecase"),
		Integration: q.Get("integration"),
		Difficulty:  q.Get("difficulty"),
	}
}

func (s *Server) theme(r *http.Request) string {
	if t := r.URL.Query().Get("theme"); prefs.ValidTheme(t) {
		return t
	}
	if s.prefs == nil {
		return prefs.DefaultTheme
	}
	theme, err := s.prefs.Theme(r.Context())
	if err != nil {
		s.log.Warn(r.Context(), "theme lookup failed", "error", err)
	}
	return theme
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, nil)
}

// handleItem serves the catalog page with the item's modal open. With
// ?partial=1 only the modal fragment is returned, for the page script.
func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	item, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		var notFound *wferrors.NotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.serverError(w, r, "lookup item", err)
		return
	}

	if r.URL.Query().Get("partial") != "1" {
		content := modal.ContentFor(item)
		s.writePage(w, r, &content)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.WriteModal(&buf, item); err != nil {
		s.serverError(w, r, "render modal", err)
		return
	}
	s.metrics.observeRender("modal", started)
	writeHTML(w, buf.Bytes())
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, open *modal.Content) {
	started := time.Now()
	state := filterState(r)
	items, loadErr := s.store.Snapshot()

	page := render.Page{
		Title:         s.title,
		Theme:         s.theme(r),
		State:         state,
		Options:       catalog.BuildOptions(items),
		Items:         catalog.Filter(items, state),
		Slides:        s.slides,
		LoadErr:       loadErr,
		Modal:         open,
		ScriptSrc:     render.ScriptPath,
		Notifications: s.notify,
	}

	var buf bytes.Buffer
	if err := s.renderer.WritePage(r.Context(), &buf, page); err != nil {
		s.serverError(w, r, "render page", err)
		return
	}
	view := "page"
	if open != nil {
		view = "item_page"
	}
	s.metrics.observeRender(view, started)
	writeHTML(w, buf.Bytes())
}

func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(render.Script())
}

func (s *Server) handleAPIItems(w http.ResponseWriter, r *http.Request) {
	visible := catalog.Filter(s.store.Items(), filterState(r))
	writeJSON(w, http.StatusOK, ItemsResponse{
		Count: len(visible),
		Label: catalog.ResultLabel(len(visible)),
		Items: visible,
	})
}

func (s *Server) handleAPIIcons(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	fb := s.resolver.Fallback(name)
	writeJSON(w, http.StatusOK, IconsResponse{
		Name:       name,
		Slug:       icons.Slug(name),
		Candidates: fb.Candidates(),
		Source:     fb.Source(),
		Attributes: fb.Attributes(),
	})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if s.prefs == nil {
		http.Error(w, "theme preferences are disabled", http.StatusNotImplemented)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	theme := r.PostForm.Get("theme")
	if theme == "" {
		theme, err = s.prefs.ToggleTheme(r.Context())
	} else {
		err = s.prefs.SetTheme(r.Context(), theme)
	}
	if err != nil {
		var validationErr *wferrors.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.serverError(w, r, "store theme", err)
		return
	}
	s.log.Info(r.Context(), "theme changed", "theme", theme)

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	items, loadErr := s.store.Snapshot()
	body := map[string]any{
		"status": "ok",
		"items":  len(items),
		"loaded": loadErr == nil,
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.log.Error(r.Context(), op+" failed", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
