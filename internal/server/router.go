package server

import (
	"net/http"

	"github.com/ThomasMeMan2/skinavigator/pkg/metrics"
	"github.com/ThomasMeMan2/skinavigator/pkg/ratelimit"
)

// NewRouter собирает маршруты и middleware сервиса
func NewRouter(h *Handler, limiter ratelimit.Limiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/locations", h.handleLocations)
	mux.HandleFunc("POST /api/v1/route", h.handleRoute)
	mux.HandleFunc("POST /api/v1/route/export", h.handleExport)
	mux.HandleFunc("GET /api/v1/graph/stats", h.handleStats)
	mux.HandleFunc("GET /api/v1/resorts", h.handleResorts)

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", h.handleReady)

	if h.cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	mws := []Middleware{
		Recovery(),
		Logging(),
		Metrics(),
	}

	if h.cfg.HTTP.CORS.Enabled {
		mws = append(mws, CORS(h.cfg.HTTP.CORS))
	}

	if limiter != nil {
		mws = append(mws, RateLimit(limiter))
	}

	return Chain(mux, mws...)
}
