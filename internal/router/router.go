package router

import (
	"net/http"

	"github.com/senyabanana/capital-schemes/internal/handlers"
	"github.com/senyabanana/capital-schemes/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Schemes          *handlers.SchemeHandler
	Authorities      *handlers.AuthorityHandler
	ReportingWindows *handlers.ReportingWindowHandler
}

func InitRoutes(h Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/ping", handlers.PingHandler)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /api/reporting-window", h.ReportingWindows.GetReportingWindow)

	mux.HandleFunc("POST /api/authorities", h.Authorities.ImportAuthorities)
	mux.HandleFunc("DELETE /api/authorities", h.Authorities.ClearAuthorities)
	mux.HandleFunc("GET /api/authorities/{authorityId}", h.Authorities.GetAuthority)
	mux.HandleFunc("GET /api/authorities/{authorityId}/schemes", h.Schemes.GetAuthoritySchemes)

	mux.HandleFunc("POST /api/schemes", h.Schemes.ImportSchemes)
	mux.HandleFunc("DELETE /api/schemes", h.Schemes.ClearSchemes)
	mux.HandleFunc("GET /api/schemes/{schemeId}", h.Schemes.ExportScheme)
	mux.HandleFunc("GET /api/schemes/{schemeId}/summary", h.Schemes.GetScheme)
	mux.HandleFunc("PUT /api/schemes/{schemeId}/spend-to-date", h.Schemes.UpdateSpendToDate)
	mux.HandleFunc("PUT /api/schemes/{schemeId}/milestones", h.Schemes.UpdateMilestones)
	mux.HandleFunc("POST /api/schemes/{schemeId}/reviews", h.Schemes.ReviewScheme)

	return requestID(log, instrument(mux, m))
}
