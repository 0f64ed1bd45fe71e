package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sparkquote/estimator-backend/internal/api/docs"
	"github.com/sparkquote/estimator-backend/internal/api/middleware"
	quoteapi "github.com/sparkquote/estimator-backend/internal/api/quote"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(quoteHandler *quoteapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.Metrics)                      // Record request metrics
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(90 * time.Second)) // Default timeout, above the upstream budget

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	quoteapi.RegisterRoutes(r, quoteHandler)

	return r
}
