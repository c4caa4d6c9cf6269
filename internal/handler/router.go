package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vladislavprovich/cosmos-rest/pkg/logger"
)

// NewRouter mounts every query the service knows under /api/{version}, using
// the registry template path as the chi pattern.
func NewRouter(ctx context.Context, handler Handler, log *slog.Logger, cfg *Config) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)
	mux.Use(chiMiddleware.Timeout(cfg.Timeout))

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge),
	}))

	wrappedLogger := &logger.Logger{Logger: log}
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  wrappedLogger,
		NoColor: true,
	}))

	mux.Get("/health", handler.Health)

	routes := handler.Routes(ctx)
	mux.Route(fmt.Sprintf("/api/%s", cfg.APIVersion), func(r chi.Router) {
		r.Get("/queries", handler.Queries)
		for _, info := range routes {
			r.Get(info.Path, handler.Query(info))
		}
	})

	log.InfoContext(ctx, "gateway routes mounted", slog.Int("queries", len(routes)))

	return mux
}
