package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"club-ads/internal/core/port"
	"club-ads/internal/metrics"
)

// Deps are the collaborators of the HTTP adapter.
type Deps struct {
	Delivery  port.AdDelivery
	Lifecycle port.CampaignLifecycle
	Inventory port.Inventory
	Auth      *Authenticator
	// WebhookSecret signs payment webhooks. Empty disables the check.
	WebhookSecret string
	Metrics       *metrics.Metrics
	// Gatherer backs GET /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: public serve, click and webhook endpoints plus the authenticated
// advertiser and admin API.
type Handler struct {
	delivery      port.AdDelivery
	lifecycle     port.CampaignLifecycle
	inventory     port.Inventory
	auth          *Authenticator
	webhookSecret []byte
	metrics       *metrics.Metrics
	logger        *slog.Logger
	router        chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		delivery:      d.Delivery,
		lifecycle:     d.Lifecycle,
		inventory:     d.Inventory,
		auth:          d.Auth,
		webhookSecret: []byte(d.WebhookSecret),
		metrics:       d.Metrics,
		logger:        d.Logger,
	}
	if h.metrics == nil {
		h.metrics = metrics.NewNop()
	}
	if h.logger == nil {
		h.logger = slog.New(slog.DiscardHandler)
	}
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.observe, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads/serve/{zoneId}", h.handleServe)
		r.Post("/ads/{campaignId}/click", h.handleAdClick)
		r.Post("/webhooks/payments", h.handlePaymentWebhook)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.requireAuth)

			r.Get("/zones", h.handleListZones)
			r.Get("/zones/{zoneId}", h.handleGetZone)

			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", h.handleCreateCampaign)
				r.Get("/", h.handleListCampaigns)
				r.Route("/{campaignId}", func(r chi.Router) {
					r.Get("/", h.handleGetCampaign)
					r.Delete("/", h.handleRetireCampaign)
					r.Post("/submit", h.handleSubmit)
					r.Post("/payment", h.handleRequestPayment)
					r.Post("/pause", h.handlePause)
					r.Post("/resume", h.handleResume)
					r.Get("/stats", h.handleCampaignStats)
					r.Post("/creatives", h.handleCreateCreative)
					r.Get("/creatives", h.handleListCreatives)
					r.With(requireAdmin).Post("/reject", h.handleReject)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/zones", h.handleCreateZone)
				r.Patch("/zones/{zoneId}/status", h.handleSetZoneStatus)
				r.Patch("/creatives/{creativeId}/status", h.handleSetCreativeStatus)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
