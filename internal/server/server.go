// Package server serves the catalog page over HTTP.
//
// Products are loaded once when the Server is created. Every request builds
// its own catalog.Session from that immutable list, so handlers never share
// mutable state.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/schema"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/imagecheck"
	"github.com/nikbrunner/catalog/internal/logger"
	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/render"
	"github.com/nikbrunner/catalog/internal/search"
	"github.com/nikbrunner/catalog/internal/storage"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// PageQuery is the query string of the catalog page.
type PageQuery struct {
	Query string `schema:"q"`
	Sort  string `schema:"sort"`
}

// Params configures a Server.
type Params struct {
	Source       storage.Source
	Placeholder  string             // thumbnail fallback, defaults to model.PlaceholderImage
	ImageCheck   *imagecheck.Params // probe thumbnails after loading when set
	SuggestLimit int                // defaults to search.DefaultLimit
}

// Server holds the loaded products and the HTTP routes.
type Server struct {
	products     []model.Product
	loadErr      error
	renderer     *render.Renderer
	suggestLimit int
	router       chi.Router
}

// New loads products from params.Source and builds the router. A load
// failure is logged and remembered; the server still serves, rendering the
// error row on every page.
func New(ctx context.Context, params Params) *Server {
	s := &Server{
		suggestLimit: params.SuggestLimit,
	}
	if s.suggestLimit <= 0 {
		s.suggestLimit = search.DefaultLimit
	}

	s.load(ctx, params.Source)

	opts := render.Options{Placeholder: params.Placeholder}
	if params.ImageCheck != nil && s.loadErr == nil {
		opts.BrokenImages = s.checkImages(ctx, *params.ImageCheck)
	}
	s.renderer = render.NewRenderer(opts)
	s.router = s.routes()
	return s
}

func (s *Server) checkImages(ctx context.Context, params imagecheck.Params) map[model.ID]bool {
	broken := imagecheck.BrokenIDs(imagecheck.CheckImages(ctx, s.products, params))
	brokenImages.Set(float64(len(broken)))
	logger.FromContext(ctx).Info("thumbnails checked", "products", len(s.products), "broken", len(broken))
	return broken
}

func (s *Server) load(ctx context.Context, src storage.Source) {
	log := logger.FromContext(ctx)

	if src == nil {
		s.loadErr = fmt.Errorf("no product source configured: %w", storage.ErrLoadFailure)
	} else {
		cat, err := src.Load(ctx)
		if err != nil {
			s.loadErr = err
		} else {
			s.products = cat.Products
		}
	}

	if s.loadErr != nil {
		loadFailures.Inc()
		totalProducts.Set(0)
		log.Error(s.loadErr, "failed to load products")
		return
	}
	totalProducts.Set(float64(len(s.products)))
	log.Info("products loaded", "count", len(s.products))
}

// LoadErr returns the startup load error, if any.
func (s *Server) LoadErr() error {
	return s.loadErr
}

// Products returns the loaded products.
func (s *Server) Products() []model.Product {
	return s.products
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/db.json", s.handleProducts)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var q PageQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	key, err := catalog.ParseSortKey(q.Sort)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pageViews.Inc()

	page := render.Page{Query: q.Query}
	if s.loadErr != nil {
		page.LoadFailed = true
	} else {
		session := catalog.NewSession(s.products)
		page.View = session.Apply(q.Query, key)
		if page.View.Term != "" {
			searches.Inc()
		}
		if key != catalog.SortNone {
			sorts.WithLabelValues(key.String()).Inc()
		}
		if page.View.Empty() && page.View.Term != "" {
			emptyResults.Inc()
			page.Suggestions = search.SuggestTitles(session.All(), page.View.Term, s.suggestLimit)
		}
	}

	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, page); err != nil {
		logger.FromContext(r.Context()).Error(err, "failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if s.loadErr != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": s.loadErr.Error()})
		return
	}
	products := s.products
	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

type health struct {
	Status   string `json:"status"`
	Loaded   bool   `json:"loaded"`
	Products int    `json:"products"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, health{
		Status:   "ok",
		Loaded:   s.loadErr == nil,
		Products: len(s.products),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		log := logger.Get().WithValues("requestID", middleware.GetReqID(r.Context()))
		ctx := logger.WithLogger(r.Context(), &log)

		next.ServeHTTP(ww, r.WithContext(ctx))

		log.V(1).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
		)
	})
}

// Run serves srv until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down gracefully within shutdownTimeout.
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	ctx, stop := signalContext(ctx)
	defer stop()

	log := logger.FromContext(ctx)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting catalog server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("catalog server shutdown complete")
	return nil
}

// NewHTTPServer wraps handler with the timeouts used by Run.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
