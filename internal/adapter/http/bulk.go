package httpadapter

import (
	"net/http"

	"github.com/google/uuid"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

type idsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type bulkStatusRequest struct {
	IDs    []uuid.UUID   `json:"ids"`
	Status domain.Status `json:"status"`
}

// handleBulkCreate stores every campaign in the JSON array or none.
func (h *Handler) handleBulkCreate(w http.ResponseWriter, r *http.Request) {
	creator, err := callerIdentity(r)
	if err != nil {
		h.writeBadRequest(w, "invalid "+userHeader+" header")
		return
	}
	var reqs []port.CreateCampaignReq
	if err = decodeJSON(r, &reqs); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	cs, err := h.svc.BulkCreate(r.Context(), creator, reqs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponses(cs))
}

// handleBulkUpdate always answers 501: items carry no ids.
func (h *Handler) handleBulkUpdate(w http.ResponseWriter, r *http.Request) {
	var reqs []port.UpdateCampaignReq
	if err := decodeJSON(r, &reqs); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	cs, err := h.svc.BulkUpdate(r.Context(), reqs)
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleBulkStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	status, ok := domain.ParseStatus(string(req.Status))
	if !ok {
		h.writeBadRequest(w, "unknown status")
		return
	}
	cs, err := h.svc.BulkUpdateStatus(r.Context(), req.IDs, status)
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleBulkClicks(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	cs, err := h.svc.BulkIncrementClicks(r.Context(), req.IDs)
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	if err := h.svc.BulkDelete(r.Context(), req.IDs); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCleanup deletes terminal campaigns older than `retention_days`,
// falling back to the configured window.
func (h *Handler) handleCleanup(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "retention_days", h.retentionDays)
	if err != nil {
		h.writeBadRequest(w, "invalid 'retention_days'")
		return
	}
	n, err := h.svc.CleanupExpired(r.Context(), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}

func (h *Handler) handleRecalculate(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.RecalculateStatuses(r.Context())
	h.writeCampaigns(w, r, cs, err)
}

func (h *Handler) handleSyncClicks(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SyncClicks(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
