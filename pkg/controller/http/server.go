package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/frontend"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/service/render"
	"github.com/secmon-lab/launchdash/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

type serverOptions struct {
	metrics  http.Handler
	frontend http.FileSystem
}

// ServerOption configures optional routes of the server
type ServerOption func(*serverOptions)

// WithMetrics mounts a metrics handler at /metrics
func WithMetrics(h http.Handler) ServerOption {
	return func(o *serverOptions) {
		o.metrics = h
	}
}

// WithFrontend serves the dashboard page from fsys instead of the
// embedded build
func WithFrontend(fsys http.FileSystem) ServerOption {
	return func(o *serverOptions) {
		o.frontend = fsys
	}
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	dashboard interfaces.Dashboard,
	renderer interfaces.ChartRenderer,
	opts ...ServerOption,
) (*Server, error) {
	if dashboard == nil {
		return nil, goerr.New("dashboard is required")
	}
	if renderer == nil {
		return nil, goerr.New("chart renderer is required")
	}

	var options serverOptions
	for _, opt := range opts {
		opt(&options)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := NewDashboardHandler(dashboard, renderer)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/options", handler.HandleOptions)
		r.Get("/charts/{output}", handler.HandleChart)
		r.Post("/inputs", handler.HandleInputs)
	})

	if options.metrics != nil {
		router.Handle("/metrics", options.metrics)
	}

	fsys := options.frontend
	if fsys == nil {
		embedded, err := frontend.GetHTTPFS()
		if err != nil {
			ctxlog.From(ctx).Warn("Embedded dashboard page is not available", "error", err)
		}
		fsys = embedded
	}

	if fsys != nil {
		page, err := NewPageHandler(fsys)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create page handler")
		}
		router.Handle("/*", page)
	}

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "launchdash",
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// statusOf maps tagged errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, usecase.ErrTagUnknownOutput):
		return http.StatusNotFound
	case goerr.HasTag(err, usecase.ErrTagUnknownInput),
		goerr.HasTag(err, render.ErrTagUnsupportedFormat),
		goerr.HasTag(err, ErrTagBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	message := err.Error()
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	}

	body := map[string]string{"error": message}
	if id := middleware.GetReqID(r.Context()); id != "" {
		body["request_id"] = id
	}
	writeJSON(w, r, status, body)
}

// imageFormat resolves the format query parameter. Empty and "json" mean a
// JSON chart result.
func imageFormat(value string) (types.ImageFormat, bool, error) {
	switch value {
	case "", "json":
		return "", false, nil
	}

	format := types.ImageFormat(value)
	if !format.IsValid() {
		return "", false, goerr.New("unsupported chart format",
			goerr.V("format", value),
			goerr.T(render.ErrTagUnsupportedFormat))
	}
	return format, true, nil
}
