package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tour-campaigns/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// engine. This interface is the primary port into the application domain.
// Every write validates fully before anything reaches the repository.
type CampaignUseCase interface {
	// CreateCampaign validates req and stores a new campaign created by
	// creator. A non-zero creator must resolve or domain.ErrNotFound is
	// returned; the zero identity stores no creator. Tour ids that do not
	// resolve are dropped silently. The name is trimmed before validation.
	CreateCampaign(ctx context.Context, creator domain.Identity, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns a campaign or domain.ErrNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetCampaignByName looks a campaign up by name, ignoring case.
	GetCampaignByName(ctx context.Context, name string) (*domain.Campaign, error)
	// ListCampaigns returns one page of campaigns.
	ListCampaigns(ctx context.Context, req PageReq) (Page[domain.Campaign], error)
	// UpdateCampaign applies the non-nil fields of req.
	UpdateCampaign(ctx context.Context, id uuid.UUID, req UpdateCampaignReq) (*domain.Campaign, error)
	// DeleteCampaign removes a campaign or returns domain.ErrNotFound.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error

	// TransitionStatus moves a campaign to the target status when the
	// lifecycle allows it.
	TransitionStatus(ctx context.Context, id uuid.UUID, to domain.Status) (*domain.Campaign, error)
	Activate(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Pause(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ValidTransitions lists the statuses the campaign may move to next.
	ValidTransitions(ctx context.Context, id uuid.UUID) ([]domain.Status, error)
	// IncrementClicks adds one click to a campaign.
	IncrementClicks(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// CampaignBudget returns the prorated budget view of one campaign.
	CampaignBudget(ctx context.Context, id uuid.UUID) (*BudgetView, error)
	// Overview aggregates budget and success figures over every campaign.
	Overview(ctx context.Context) (*domain.BudgetSummary, error)
	// HighBudgetCampaigns returns campaigns above the high-budget threshold.
	HighBudgetCampaigns(ctx context.Context) ([]domain.Campaign, error)

	CampaignsByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error)
	UpcomingCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ExpiredCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// SearchByBudget returns campaigns within ±10% of budget.
	SearchByBudget(ctx context.Context, budget decimal.Decimal) ([]domain.Campaign, error)
	// CampaignsInBudgetRange returns campaigns with min <= budget <= max.
	CampaignsInBudgetRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Campaign, error)
	TopCampaignsByClicks(ctx context.Context, n int) ([]domain.Campaign, error)
	CampaignsNeedingClickUpdates(ctx context.Context) ([]domain.Campaign, error)
	// CampaignsByCreator fails with domain.ErrNotFound when the creator
	// does not resolve.
	CampaignsByCreator(ctx context.Context, creator uuid.UUID) ([]domain.Campaign, error)
	CampaignsWithinDateRange(ctx context.Context, from, to time.Time) ([]domain.Campaign, error)
	ActiveCampaignsForAudience(ctx context.Context, audience string) ([]domain.Campaign, error)

	// BulkCreate stores every request or none of them.
	BulkCreate(ctx context.Context, creator domain.Identity, reqs []CreateCampaignReq) ([]domain.Campaign, error)
	// BulkUpdate is not supported: items carry no identifying key.
	BulkUpdate(ctx context.Context, reqs []UpdateCampaignReq) ([]domain.Campaign, error)
	// BulkUpdateStatus moves every campaign to status or changes nothing.
	BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status domain.Status) ([]domain.Campaign, error)
	// BulkIncrementClicks adds one click per occurrence of each id.
	BulkIncrementClicks(ctx context.Context, ids []uuid.UUID) ([]domain.Campaign, error)
	// BulkDelete removes every campaign or, if any id is missing, none.
	BulkDelete(ctx context.Context, ids []uuid.UUID) error
	// CleanupExpired deletes terminal campaigns that ended more than
	// retentionDays ago and returns how many were removed.
	CleanupExpired(ctx context.Context, retentionDays int) (int, error)
	// RecalculateStatuses completes every active campaign past its end
	// date and returns the updated campaigns.
	RecalculateStatuses(ctx context.Context) ([]domain.Campaign, error)
	// SyncClicks runs the configured ClickSyncer, if any.
	SyncClicks(ctx context.Context) error
}

// CreateCampaignReq carries the fields of a new campaign. Status defaults
// to DRAFT and TargetClicks to zero when omitted.
type CreateCampaignReq struct {
	Name           string              `json:"name" validate:"required,min=3,max=255"`
	Description    string              `json:"description" validate:"max=1000"`
	TargetAudience string              `json:"target_audience" validate:"required,min=1,max=50"`
	Type           domain.CampaignType `json:"type" validate:"required,campaign_type"`
	Status         domain.Status       `json:"status" validate:"omitempty,campaign_status"`
	Budget         decimal.Decimal     `json:"budget"`
	StartDate      time.Time           `json:"start_date" validate:"required"`
	EndDate        time.Time           `json:"end_date" validate:"required"`
	TargetClicks   *int64              `json:"target_clicks" validate:"omitempty,gte=0"`
	TourIDs        []uuid.UUID         `json:"tour_ids"`
}

// UpdateCampaignReq carries a partial update. Nil fields are left
// untouched. Clicks are only changed through increments.
type UpdateCampaignReq struct {
	Name           *string              `json:"name" validate:"omitempty,min=3,max=255"`
	Description    *string              `json:"description" validate:"omitempty,max=1000"`
	TargetAudience *string              `json:"target_audience" validate:"omitempty,min=1,max=50"`
	Type           *domain.CampaignType `json:"type" validate:"omitempty,campaign_type"`
	Status         *domain.Status       `json:"status" validate:"omitempty,campaign_status"`
	Budget         *decimal.Decimal     `json:"budget"`
	StartDate      *time.Time           `json:"start_date"`
	EndDate        *time.Time           `json:"end_date"`
	TargetClicks   *int64               `json:"target_clicks" validate:"omitempty,gte=0"`
	TourIDs        []uuid.UUID          `json:"tour_ids"`
}

// BudgetView is the prorated budget state of a single campaign.
type BudgetView struct {
	CampaignID uuid.UUID       `json:"campaign_id"`
	Budget     decimal.Decimal `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	ClickRatio decimal.Decimal `json:"click_ratio"`
}
