package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tour-campaigns/internal/core/domain"
)

// writeCampaigns writes a list result or the error that produced it.
func (h *Handler) writeCampaigns(w http.ResponseWriter, r *http.Request, cs []domain.Campaign, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponses(cs))
}

func (h *Handler) handleCampaignsByStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := domain.ParseStatus(chi.URLParam(r, "status"))
	if !ok {
		h.writeBadRequest(w, "unknown status")
		return
	}
	cs, err := h.svc.CampaignsByStatus(r.Context(), status)
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleUpcomingCampaigns(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.UpcomingCampaigns(r.Context())
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleExpiredCampaigns(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ExpiredCampaigns(r.Context())
	h.writeCampaigns(w, r, cs, err)
}

// handleSearchByBudget expects a `budget` query parameter and returns
// campaigns within ten percent of it.
func (h *Handler) handleSearchByBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := queryDecimal(r, "budget")
	if err != nil {
		h.writeBadRequest(w, "invalid 'budget'")
		return
	}
	cs, err := h.svc.SearchByBudget(r.Context(), budget)
	h.writeCampaigns(w, r, cs, err)
}

// handleBudgetRange expects `min` and `max` query parameters, both
// inclusive.
func (h *Handler) handleBudgetRange(w http.ResponseWriter, r *http.Request) {
	lo, err := queryDecimal(r, "min")
	if err != nil {
		h.writeBadRequest(w, "invalid 'min'")
		return
	}
	hi, err := queryDecimal(r, "max")
	if err != nil {
		h.writeBadRequest(w, "invalid 'max'")
		return
	}
	cs, err := h.svc.CampaignsInBudgetRange(r.Context(), lo, hi)
	h.writeCampaigns(w, r, cs, err)
}

// handleTopByClicks returns the `n` (default 10) most clicked campaigns.
func (h *Handler) handleTopByClicks(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n", 10)
	if err != nil {
		h.writeBadRequest(w, "invalid 'n'")
		return
	}
	cs, err := h.svc.TopCampaignsByClicks(r.Context(), n)
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleNeedingClickUpdates(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.CampaignsNeedingClickUpdates(r.Context())
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleCampaignsByCreator(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.writeBadRequest(w, "invalid user id")
		return
	}
	cs, err := h.svc.CampaignsByCreator(r.Context(), userID)
	h.writeCampaigns(w, r, cs, err)
}

// handleWithinDateRange expects RFC3339 `from` and `to` query parameters.
func (h *Handler) handleWithinDateRange(w http.ResponseWriter, r *http.Request) {
	from, err := queryTime(r, "from")
	if err != nil {
		h.writeBadRequest(w, "invalid 'from' timestamp")
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		h.writeBadRequest(w, "invalid 'to' timestamp")
		return
	}
	cs, err := h.svc.CampaignsWithinDateRange(r.Context(), from, to)
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleActiveForAudience(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ActiveCampaignsForAudience(r.Context(), chi.URLParam(r, "audience"))
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleHighBudget(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.HighBudgetCampaigns(r.Context())
	h.writeCampaigns(w, r, cs, err)
}
