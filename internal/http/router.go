package http

import (
	"net/http"

	"api-usage/internal/models"
	"api-usage/internal/shared/loggers"
	"api-usage/internal/shared/metrics"
	"api-usage/internal/usages"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(usageService usages.UsageService, defaultMode models.ParseMode, precision int, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	reportHandler := NewReportHandler(usageService, defaultMode, precision)

	// Routes
	router.Post("/reports", errorHandlingAdapter(reportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
