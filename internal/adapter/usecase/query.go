package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

// CampaignBudget returns the prorated budget of one campaign.
func (u *CampaignUseCase) CampaignBudget(ctx context.Context, id uuid.UUID) (*port.BudgetView, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.BudgetView{
		CampaignID: c.ID,
		Budget:     c.Budget,
		Spent:      domain.SpentBudget(*c),
		Remaining:  domain.RemainingBudget(*c),
		ClickRatio: domain.ClickRatio(*c),
	}, nil
}

// Overview summarises budgets and success over every campaign.
func (u *CampaignUseCase) Overview(ctx context.Context) (*domain.BudgetSummary, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(all)
	return &summary, nil
}

// HighBudgetCampaigns returns campaigns above 1.5 times the average budget.
func (u *CampaignUseCase) HighBudgetCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.HighBudgetCampaigns(all), nil
}

// CampaignsByStatus returns campaigns in exactly the given status.
func (u *CampaignUseCase) CampaignsByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return u.repo.FindByStatus(ctx, status)
}

// UpcomingCampaigns returns campaigns that have not started yet.
func (u *CampaignUseCase) UpcomingCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Upcoming(all, u.now()), nil
}

// ExpiredCampaigns returns campaigns whose end date has passed.
func (u *CampaignUseCase) ExpiredCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Expired(all, u.now()), nil
}

// SearchByBudget returns campaigns within ten percent of budget.
func (u *CampaignUseCase) SearchByBudget(ctx context.Context, budget decimal.Decimal) ([]domain.Campaign, error) {
	if budget.IsNegative() {
		return nil, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BudgetNear(all, budget), nil
}

// CampaignsInBudgetRange returns campaigns with a budget in [min, max].
func (u *CampaignUseCase) CampaignsInBudgetRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Campaign, error) {
	if min.GreaterThan(max) {
		return nil, fmt.Errorf("%w: min budget %s exceeds max budget %s", domain.ErrValidation, min, max)
	}
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BudgetBetween(all, min, max), nil
}

// TopCampaignsByClicks returns the n most clicked campaigns.
func (u *CampaignUseCase) TopCampaignsByClicks(ctx context.Context, n int) ([]domain.Campaign, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", domain.ErrValidation)
	}
	return u.repo.FindTopByClicks(ctx, n)
}

// CampaignsNeedingClickUpdates returns active campaigns below their click
// target.
func (u *CampaignUseCase) CampaignsNeedingClickUpdates(ctx context.Context) ([]domain.Campaign, error) {
	active, err := u.repo.FindByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	return domain.NeedingClickUpdates(active), nil
}

// CampaignsByCreator returns campaigns created by an existing user.
func (u *CampaignUseCase) CampaignsByCreator(ctx context.Context, creator uuid.UUID) ([]domain.Campaign, error) {
	user, err := u.users.FindUser(ctx, creator)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", creator, domain.ErrNotFound)
	}
	return u.repo.FindByCreator(ctx, user.ID)
}

// CampaignsWithinDateRange returns campaigns running entirely inside
// [from, to].
func (u *CampaignUseCase) CampaignsWithinDateRange(ctx context.Context, from, to time.Time) ([]domain.Campaign, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidDateRange
	}
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.WithinDateRange(all, from, to), nil
}

// ActiveCampaignsForAudience returns active campaigns for an audience.
func (u *CampaignUseCase) ActiveCampaignsForAudience(ctx context.Context, audience string) ([]domain.Campaign, error) {
	return u.repo.FindActiveByAudience(ctx, audience)
}
