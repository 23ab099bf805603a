package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tour-campaigns/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP that holds the campaign use case and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router

	// retentionDays is used by cleanup when the request names no window.
	retentionDays int
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, retentionDays int) *Handler {
	h := &Handler{svc: svc, logger: logger, retentionDays: retentionDays}
	r := chi.NewRouter()
	r.Use(Metrics)

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)

			r.Get("/by-name/{name}", h.handleGetCampaignByName)
			r.Get("/status/{status}", h.handleCampaignsByStatus)
			r.Get("/upcoming", h.handleUpcomingCampaigns)
			r.Get("/expired", h.handleExpiredCampaigns)
			r.Get("/budget/search", h.handleSearchByBudget)
			r.Get("/budget/range", h.handleBudgetRange)
			r.Get("/top", h.handleTopByClicks)
			r.Get("/needing-click-updates", h.handleNeedingClickUpdates)
			r.Get("/creator/{userID}", h.handleCampaignsByCreator)
			r.Get("/date-range", h.handleWithinDateRange)
			r.Get("/audience/{audience}", h.handleActiveForAudience)
			r.Get("/high-budget", h.handleHighBudget)

			r.Post("/bulk", h.handleBulkCreate)
			r.Put("/bulk", h.handleBulkUpdate)
			r.Post("/bulk/status", h.handleBulkStatus)
			r.Post("/bulk/clicks", h.handleBulkClicks)
			r.Post("/bulk/delete", h.handleBulkDelete)

			r.Post("/maintenance/cleanup", h.handleCleanup)
			r.Post("/maintenance/recalculate", h.handleRecalculate)
			r.Post("/maintenance/sync-clicks", h.handleSyncClicks)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Put("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Post("/{action}", h.handleTransition)
				r.Get("/transitions", h.handleValidTransitions)
				r.Post("/clicks", h.handleIncrementClicks)
				r.Get("/budget", h.handleCampaignBudget)
			})
		})
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
