// Package server exposes the editor over a JSON HTTP API.
//
// The server wraps one [editor.Session] and the template catalog. Layout
// changes go through the session, which saves them to the store; catalog
// changes are saved before they become visible. Exports are served by a
// shared [pipeline.Runner], so repeated exports of an unchanged layout come
// from cache.
//
// Routes:
//
//	GET    /api/layout                     current layout, selection and context
//	PUT    /api/layout                     replace the layout
//	POST   /api/layout/ops                 apply a layout request
//	POST   /api/layout/reset               back to the default layout
//	GET    /api/layout/export?format=      tsx, json, dot or svg
//	PUT    /api/selection                  select a component or column
//	GET    /api/palette?q=                 component types by category
//	POST   /api/palette/{type}             add a component to the palette target
//	GET    /api/siteparts                  site parts with their active template
//	POST   /api/siteparts/{part}/new       start a blank layout for a part
//	GET    /api/templates?part=            saved templates
//	POST   /api/templates                  save the current layout as a template
//	POST   /api/templates/{id}/load        open a template in the editor
//	PUT    /api/templates/{id}/active      make a template active for its part
//	PUT    /api/templates/{id}/condition   set the display condition
//	PUT    /api/templates/{id}/name        rename
//	DELETE /api/templates/{id}
//	GET    /api/categories
//	POST   /api/categories
//	PUT    /api/categories/{id}
//	DELETE /api/categories/{id}
//	GET    /healthz
//
// Errors are returned as {"error": message, "code": code} with the status
// of [errors.HTTPStatus].
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/pipeline"
	"github.com/matzehuels/pagesmith/pkg/store"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// ShutdownTimeout bounds how long [Server.ListenAndServe] waits for open
// requests after its context is cancelled.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP API. It is safe for concurrent use.
type Server struct {
	session *editor.Session
	store   store.Store
	runner  *pipeline.Runner
	logger  *log.Logger
	router  chi.Router

	mu      sync.Mutex
	catalog theme.Catalog
}

// New returns a server editing sess, with templates kept in st. The
// catalog is loaded once here; a corrupt catalog is replaced by an empty
// one. A nil logger discards.
func New(ctx context.Context, sess *editor.Session, st store.Store, runner *pipeline.Runner, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	catalog, err := st.LoadCatalog(ctx)
	if err != nil && !stderrors.Is(err, store.ErrCorrupt) {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "load catalog")
	}
	s := &Server{
		session: sess,
		store:   st,
		runner:  runner,
		logger:  logger,
		catalog: catalog,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/api", func(r chi.Router) {
		r.Route("/layout", func(r chi.Router) {
			r.Get("/", s.getLayout)
			r.Put("/", s.putLayout)
			r.Post("/ops", s.applyOp)
			r.Post("/reset", s.resetLayout)
			r.Get("/export", s.exportLayout)
		})
		r.Put("/selection", s.putSelection)
		r.Get("/palette", s.getPalette)
		r.Post("/palette/{type}", s.addFromPalette)
		r.Get("/siteparts", s.getSiteParts)
		r.Post("/siteparts/{part}/new", s.createNew)
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.listTemplates)
			r.Post("/", s.saveTemplate)
			r.Route("/{id}", func(r chi.Router) {
				r.Post("/load", s.loadTemplate)
				r.Put("/active", s.activateTemplate)
				r.Put("/condition", s.setCondition)
				r.Put("/name", s.renameTemplate)
				r.Delete("/", s.deleteTemplate)
			})
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.listCategories)
			r.Post("/", s.addCategory)
			r.Put("/{id}", s.renameCategory)
			r.Delete("/{id}", s.deleteCategory)
		})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Catalog returns the current catalog.
func (s *Server) Catalog() theme.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// updateCatalog applies fn to the catalog, saves the result and only then
// makes it current.
func (s *Server) updateCatalog(ctx context.Context, fn func(theme.Catalog) (theme.Catalog, error)) (theme.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.catalog)
	if err != nil {
		return s.catalog, err
	}
	if err := s.store.SaveCatalog(ctx, next); err != nil {
		return s.catalog, errors.Wrap(errors.ErrCodeStorage, err, "save catalog")
	}
	s.catalog = next
	return next, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()))
	})
}
