package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

// CampaignUseCase provides business logic for the campaign lifecycle,
// budget accounting and bulk operations. It implements port.CampaignUseCase
// on top of the outbound repositories.
//
// Concurrent writers are handled optimistically: every write carries the
// version it loaded and the repository rejects stale ones.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	tours  port.TourRepository
	users  port.UserRepository
	logger *slog.Logger

	validate *validator.Validate
	clicks   port.ClickSyncer
	paging   port.PageSizeConfig
	now      func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// Option customises a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithClock overrides the time source used for timestamps and date
// based queries.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// WithClickSyncer plugs an external click source into SyncClicks.
func WithClickSyncer(s port.ClickSyncer) Option {
	return func(u *CampaignUseCase) { u.clicks = s }
}

// WithPageSize sets the default and maximum page sizes for listings.
func WithPageSize(cfg port.PageSizeConfig) Option {
	return func(u *CampaignUseCase) { u.paging = cfg }
}

// NewCampaignUseCase creates a new usecase with the provided repositories.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	tours port.TourRepository,
	users port.UserRepository,
	logger *slog.Logger,
	opts ...Option,
) *CampaignUseCase {
	u := &CampaignUseCase{
		repo:     repo,
		tours:    tours,
		users:    users,
		logger:   logger,
		validate: newValidator(),
		paging:   port.PageSizeConfig{Default: 20, Max: 100},
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCampaign validates the request, checks name uniqueness and stores
// the campaign.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, creator domain.Identity, req port.CreateCampaignReq) (*domain.Campaign, error) {
	c, err := u.buildCampaign(ctx, creator, req)
	if err != nil {
		return nil, err
	}
	if err = u.ensureNameAvailable(ctx, c.Name); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", saved.ID.String()),
		slog.String("status", string(saved.Status)))
	return &saved, nil
}

// GetCampaign returns a campaign by id.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.load(ctx, id)
}

// GetCampaignByName returns a campaign by name, ignoring case.
func (u *CampaignUseCase) GetCampaignByName(ctx context.Context, name string) (*domain.Campaign, error) {
	c, err := u.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %q: %w", name, domain.ErrNotFound)
	}
	return c, nil
}

// ListCampaigns returns a page of campaigns after clamping the page size.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, req port.PageReq) (port.Page[domain.Campaign], error) {
	return u.repo.FindPage(ctx, u.paging.Normalize(req))
}

// UpdateCampaign merges the provided fields into the stored campaign. The
// name is rechecked for uniqueness only when it changes, and a status
// change must be allowed by the lifecycle.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id uuid.UUID, req port.UpdateCampaignReq) (*domain.Campaign, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := u.validateStruct(req); err != nil {
		return nil, err
	}
	existing, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *existing

	if req.Name != nil {
		if !domain.SameName(*req.Name, existing.Name) {
			if err = u.ensureNameAvailable(ctx, *req.Name); err != nil {
				return nil, err
			}
		}
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.TargetAudience != nil {
		updated.TargetAudience = *req.TargetAudience
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Budget != nil {
		if req.Budget.IsNegative() {
			return nil, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
		}
		updated.Budget = *req.Budget
	}
	if req.StartDate != nil {
		updated.StartDate = req.StartDate.UTC()
	}
	if req.EndDate != nil {
		updated.EndDate = req.EndDate.UTC()
	}
	if !domain.ValidDateRange(updated.StartDate, updated.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if req.TargetClicks != nil {
		updated.TargetClicks = *req.TargetClicks
	}
	if req.Status != nil && *req.Status != existing.Status {
		if updated, err = domain.Transition(updated, *req.Status); err != nil {
			return nil, err
		}
	}
	if req.TourIDs != nil {
		if updated.Tours, err = u.resolveTours(ctx, req.TourIDs); err != nil {
			return nil, err
		}
	}
	updated.UpdatedAt = u.now()

	saved, err := u.repo.Save(ctx, updated)
	if err != nil {
		return nil, err
	}
	if saved.Status != existing.Status {
		statusTransitionsTotal.WithLabelValues(string(existing.Status), string(saved.Status)).Inc()
	}
	return &saved, nil
}

// DeleteCampaign removes a campaign after checking it exists.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	if err := u.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	u.logger.Info("campaign deleted", slog.String("campaign_id", id.String()))
	return nil
}

// TransitionStatus moves a campaign to the target status.
func (u *CampaignUseCase) TransitionStatus(ctx context.Context, id uuid.UUID, to domain.Status) (*domain.Campaign, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	from := c.Status
	next, err := domain.Transition(*c, to)
	if err != nil {
		u.logger.Debug("status transition rejected",
			slog.String("campaign_id", id.String()),
			slog.String("from", string(from)),
			slog.String("to", string(to)))
		return nil, err
	}
	next.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, next)
	if err != nil {
		return nil, err
	}
	statusTransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
	return &saved, nil
}

// Activate moves a campaign to ACTIVE.
func (u *CampaignUseCase) Activate(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.TransitionStatus(ctx, id, domain.StatusActive)
}

// Pause moves a campaign to PAUSED.
func (u *CampaignUseCase) Pause(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.TransitionStatus(ctx, id, domain.StatusPaused)
}

// Complete moves a campaign to COMPLETED.
func (u *CampaignUseCase) Complete(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.TransitionStatus(ctx, id, domain.StatusCompleted)
}

// Cancel moves a campaign to CANCELLED.
func (u *CampaignUseCase) Cancel(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.TransitionStatus(ctx, id, domain.StatusCancelled)
}

// ValidTransitions lists the statuses reachable from the campaign's
// current status.
func (u *CampaignUseCase) ValidTransitions(ctx context.Context, id uuid.UUID) ([]domain.Status, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.ValidTransitionsFrom(c.Status), nil
}

// IncrementClicks records one click on a campaign.
func (u *CampaignUseCase) IncrementClicks(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	c.ActualClicks++
	c.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, *c)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// load returns a campaign or a wrapped domain.ErrNotFound.
func (u *CampaignUseCase) load(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.CampaignNotFound(id)
	}
	return c, nil
}

// buildCampaign validates req and turns it into an unsaved campaign. The
// name is trimmed before its length is checked. It does not check name
// uniqueness.
func (u *CampaignUseCase) buildCampaign(ctx context.Context, creator domain.Identity, req port.CreateCampaignReq) (domain.Campaign, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := u.validateStruct(req); err != nil {
		return domain.Campaign{}, err
	}
	if req.Budget.IsNegative() {
		return domain.Campaign{}, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	if !domain.ValidDateRange(req.StartDate, req.EndDate) {
		return domain.Campaign{}, domain.ErrInvalidDateRange
	}
	createdBy, err := u.resolveCreator(ctx, creator)
	if err != nil {
		return domain.Campaign{}, err
	}
	tours, err := u.resolveTours(ctx, req.TourIDs)
	if err != nil {
		return domain.Campaign{}, err
	}
	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}
	var targetClicks int64
	if req.TargetClicks != nil {
		targetClicks = *req.TargetClicks
	}
	now := u.now()
	return domain.Campaign{
		Name:           req.Name,
		Description:    req.Description,
		TargetAudience: req.TargetAudience,
		Type:           req.Type,
		Status:         status,
		Budget:         req.Budget,
		StartDate:      req.StartDate.UTC(),
		EndDate:        req.EndDate.UTC(),
		TargetClicks:   targetClicks,
		CreatedBy:      createdBy,
		Tours:          tours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (u *CampaignUseCase) ensureNameAvailable(ctx context.Context, name string) error {
	exists, err := u.repo.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return domain.DuplicateName(name)
	}
	return nil
}

// resolveCreator checks that a named caller exists. The zero identity
// stands for an anonymous caller and is stored as no creator.
func (u *CampaignUseCase) resolveCreator(ctx context.Context, creator domain.Identity) (uuid.UUID, error) {
	if creator.ID == uuid.Nil {
		return uuid.Nil, nil
	}
	user, err := u.users.FindUser(ctx, creator.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, fmt.Errorf("user %s: %w", creator.ID, domain.ErrNotFound)
	}
	return user.ID, nil
}

// resolveTours keeps the ids that resolve to a tour, in input order and
// without duplicates. Unknown ids are dropped rather than rejected so a
// stale tour reference never blocks a campaign from being saved.
func (u *CampaignUseCase) resolveTours(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	tours := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		tour, err := u.tours.FindTour(ctx, id)
		if err != nil {
			return nil, err
		}
		if tour == nil {
			u.logger.Debug("dropping unknown tour reference", slog.String("tour_id", id.String()))
			continue
		}
		tours = append(tours, tour.ID)
	}
	return tours, nil
}
