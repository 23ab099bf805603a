package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

// userHeader carries the caller identity, resolved upstream.
const userHeader = "X-User-ID"

type errorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	From    domain.Status `json:"from,omitempty"`
	To      domain.Status `json:"to,omitempty"`
}

// campaignResponse is the JSON shape of a campaign.
type campaignResponse struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	TargetAudience  string              `json:"target_audience"`
	Type            domain.CampaignType `json:"type"`
	Status          domain.Status       `json:"status"`
	Budget          decimal.Decimal     `json:"budget"`
	RemainingBudget decimal.Decimal     `json:"remaining_budget"`
	StartDate       time.Time           `json:"start_date"`
	EndDate         time.Time           `json:"end_date"`
	TargetClicks    int64               `json:"target_clicks"`
	ActualClicks    int64               `json:"actual_clicks"`
	CreatedBy       *uuid.UUID          `json:"created_by,omitempty"`
	Tours           []uuid.UUID         `json:"tours"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Version         int64               `json:"version"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		TargetAudience:  c.TargetAudience,
		Type:            c.Type,
		Status:          c.Status,
		Budget:          c.Budget,
		RemainingBudget: domain.RemainingBudget(c),
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		TargetClicks:    c.TargetClicks,
		ActualClicks:    c.ActualClicks,
		Tours:           c.Tours,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Version:         c.Version,
	}
	if c.CreatedBy != uuid.Nil {
		id := c.CreatedBy
		resp.CreatedBy = &id
	}
	if resp.Tours == nil {
		resp.Tours = []uuid.UUID{}
	}
	return resp
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignResponse(c))
	}
	return out
}

func toPageResponse(p port.Page[domain.Campaign]) port.Page[campaignResponse] {
	return port.Page[campaignResponse]{
		Items:      toCampaignResponses(p.Items),
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: msg})
}

// writeError maps domain failures to HTTP statuses. Anything unexpected is
// logged and reported as a generic internal error.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Message: err.Error()}
	status := http.StatusInternalServerError

	var terr *domain.TransitionError
	switch {
	case errors.As(err, &terr):
		status, resp.Code = http.StatusUnprocessableEntity, "INVALID_STATUS_TRANSITION"
		resp.From, resp.To = terr.From, terr.To
	case errors.Is(err, domain.ErrNotFound):
		status, resp.Code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicateName):
		status, resp.Code = http.StatusConflict, "DUPLICATE_NAME"
	case errors.Is(err, domain.ErrConcurrentModification):
		status, resp.Code = http.StatusConflict, "CONCURRENT_MODIFICATION"
	case errors.Is(err, domain.ErrInvalidDateRange):
		status, resp.Code = http.StatusUnprocessableEntity, "INVALID_DATE_RANGE"
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		status, resp.Code = http.StatusUnprocessableEntity, "INVALID_STATUS_TRANSITION"
	case errors.Is(err, domain.ErrValidation):
		status, resp.Code = http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, domain.ErrUnsupportedOperation):
		status, resp.Code = http.StatusNotImplemented, "UNSUPPORTED_OPERATION"
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		resp.Code, resp.Message = "INTERNAL", "internal error"
	}
	h.writeJSON(w, status, resp)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// uuidParam reads a uuid path parameter bound by the router.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// callerIdentity returns the identity named by the user header. A missing
// header yields the zero identity.
func callerIdentity(r *http.Request) (domain.Identity, error) {
	raw := r.Header.Get(userHeader)
	if raw == "" {
		return domain.Identity{}, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{ID: id}, nil
}

func queryDecimal(r *http.Request, name string) (decimal.Decimal, error) {
	return decimal.NewFromString(r.URL.Query().Get(name))
}

func queryTime(r *http.Request, name string) (time.Time, error) {
	return time.Parse(time.RFC3339, r.URL.Query().Get(name))
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
