package api

import (
	"net/http"

	"vedic-chart-service/internal/api/handlers"
	"vedic-chart-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters.
func NewRouter(resolver *services.LocationResolver, engine *services.ChartEngine) http.Handler {
	mux := http.NewServeMux()

	chartHandler := &handlers.ChartHandler{
		Resolver: resolver,
		Engine:   engine,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/charts", chartHandler.Compute)

	return requestIDMiddleware(loggingMiddleware(mux))
}
