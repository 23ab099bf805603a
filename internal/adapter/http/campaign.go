package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

// handleCreateCampaign decodes a port.CreateCampaignReq and stores the
// campaign on behalf of the caller named by the X-User-ID header. It
// answers 201 with the stored campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	creator, err := callerIdentity(r)
	if err != nil {
		h.writeBadRequest(w, "invalid "+userHeader+" header")
		return
	}
	var req port.CreateCampaignReq
	if err = decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), creator, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

// handleListCampaigns returns one page of campaigns. It accepts optional
// `page` and `size` query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.writeBadRequest(w, "invalid 'page'")
		return
	}
	size, err := queryInt(r, "size", 0)
	if err != nil {
		h.writeBadRequest(w, "invalid 'size'")
		return
	}
	result, err := h.svc.ListCampaigns(r.Context(), port.PageReq{Page: page, Size: size})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toPageResponse(result))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleGetCampaignByName(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaignByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleUpdateCampaign applies a partial port.UpdateCampaignReq.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	var req port.UpdateCampaignReq
	if err = decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	if err = h.svc.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTransition dispatches the {action} path segment to the matching
// lifecycle operation. Unknown actions produce HTTP 404.
func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	var target domain.Status
	switch chi.URLParam(r, "action") {
	case "activate":
		target = domain.StatusActive
	case "pause":
		target = domain.StatusPaused
	case "complete":
		target = domain.StatusCompleted
	case "cancel":
		target = domain.StatusCancelled
	default:
		http.NotFound(w, r)
		return
	}
	c, err := h.svc.TransitionStatus(r.Context(), id, target)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleValidTransitions(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	statuses, err := h.svc.ValidTransitions(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]domain.Status{"transitions": statuses})
}

func (h *Handler) handleIncrementClicks(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	c, err := h.svc.IncrementClicks(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleCampaignBudget(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	view, err := h.svc.CampaignBudget(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}
