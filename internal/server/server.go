// Package server exposes the catalog page over HTTP: the filtered page,
// item pages with the detail modal open, modal fragments, the page script,
// a JSON API, icon files, health and metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/logger"
	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
	"github.com/alexisbeaulieu97/workflowdeck/internal/render"
	"github.com/alexisbeaulieu97/workflowdeck/internal/widgets"
)

// Options wires a Server to its collaborators. Store, Resolver and Renderer
// are required.
type Options struct {
	Title    string
	Slides   []widgets.Slide
	Store    *catalog.Store
	Resolver *icons.Resolver
	Renderer *render.Renderer
	// Prefs persists the theme; nil serves the default theme only.
	Prefs *prefs.Store
	// IconsDir, when set, is served under /assets/icons/.
	IconsDir string
	// Metrics, when set, is updated and served on /metrics.
	Metrics *Metrics
	// Notifications enables the page's popup ticker.
	Notifications   bool
	Logger          ports.Logger
	ShutdownTimeout time.Duration
}

// Server is the workflowdeck HTTP front end.
type Server struct {
	title    string
	slides   []widgets.Slide
	store    *catalog.Store
	resolver *icons.Resolver
	renderer *render.Renderer
	prefs    *prefs.Store
	metrics  *Metrics
	notify   bool
	log      ports.Logger
	shutdown time.Duration
	handler  http.Handler
}

// New validates opts and builds the route table.
func New(opts Options) (*Server, error) {
	if opts.Store == nil || opts.Resolver == nil || opts.Renderer == nil {
		return nil, errors.New("server: store, resolver and renderer are required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOp()
	}
	shutdown := opts.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = 5 * time.Second
	}

	s := &Server{
		title:    opts.Title,
		slides:   opts.Slides,
		store:    opts.Store,
		resolver: opts.Resolver,
		renderer: opts.Renderer,
		prefs:    opts.Prefs,
		metrics:  opts.Metrics,
		notify:   opts.Notifications,
		log:      log.With("component", "server"),
		shutdown: shutdown,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /items/{id}", s.handleItem)
	mux.HandleFunc("GET /api/items", s.handleAPIItems)
	mux.HandleFunc("GET /api/icons/{name}", s.handleAPIIcons)
	mux.HandleFunc("POST /theme", s.handleTheme)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET "+render.ScriptPath, s.handleScript)
	if opts.IconsDir != "" {
		mux.Handle("GET /assets/icons/", http.StripPrefix("/assets/icons/", http.FileServer(http.Dir(opts.IconsDir))))
	}
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics.Handler())
	}
	s.handler = s.instrument(mux)
	return s, nil
}

// Handler returns the instrumented route table.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info(ctx, "server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info(ctx, "server stopped")
	return nil
}
