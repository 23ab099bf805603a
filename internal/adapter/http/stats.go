package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"

	"tour-campaigns/internal/core/domain"
)

type overviewResponse struct {
	Count               int                               `json:"count"`
	TotalBudget         decimal.Decimal                   `json:"total_budget"`
	TotalSpent          decimal.Decimal                   `json:"total_spent"`
	TotalRemaining      decimal.Decimal                   `json:"total_remaining"`
	AverageBudget       decimal.Decimal                   `json:"average_budget"`
	HighBudgetThreshold decimal.Decimal                   `json:"high_budget_threshold"`
	SuccessRate         float64                           `json:"success_rate"`
	BudgetByStatus      map[domain.Status]decimal.Decimal `json:"budget_by_status"`
	CountByStatus       map[domain.Status]int             `json:"count_by_status"`
}

// handleStatsOverview returns aggregated budget statistics over every
// campaign. Spend only counts ACTIVE and COMPLETED campaigns; the success
// rate is a percentage of all campaigns.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Overview(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, overviewResponse{
		Count:               s.Count,
		TotalBudget:         s.TotalBudget,
		TotalSpent:          s.TotalSpent,
		TotalRemaining:      s.TotalRemaining,
		AverageBudget:       s.AverageBudget,
		HighBudgetThreshold: s.HighBudgetThreshold,
		SuccessRate:         s.SuccessRate,
		BudgetByStatus:      s.BudgetByStatus,
		CountByStatus:       s.CountByStatus,
	})
}
