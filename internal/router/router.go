package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"oracle-backend/internal/handlers"
	"oracle-backend/internal/middleware"
)

func New(
	aiHandler *handlers.AIHandler,
	assets fs.FS,
	corsOrigin string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(corsOrigin))

	// Health check
	r.Get("/health", handlers.Health)

	// ──── Proxy ────
	r.Post("/ai", aiHandler.Ask)

	// ──── Chat widget ────
	r.Handle("/*", http.FileServer(http.FS(assets)))

	return r
}
