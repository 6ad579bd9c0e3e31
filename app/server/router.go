package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mytheresa/product-categories/app/catalog"
	"github.com/mytheresa/product-categories/app/categories"
	"github.com/mytheresa/product-categories/app/users"
	"github.com/mytheresa/product-categories/models"
)

// NewRouter wires every handler of the catalog screen onto one mux.
func NewRouter(repo *models.CatalogRepository, logger *slog.Logger) http.Handler {
	catalogHandler := catalog.NewCatalogHandler(repo)
	categoryHandler := categories.NewCategoryHandler(repo)
	userHandler := users.NewUserHandler(repo)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", catalogHandler.HandlePage)
	mux.HandleFunc("GET /api/products", catalogHandler.HandleGet)
	mux.HandleFunc("GET /api/products/{id}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /api/categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /api/users", userHandler.HandleGetAll)

	return logRequests(logger, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.LogAttrs(r.Context(), slog.LevelInfo, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
