package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

// Bulk operations validate every item before the single batch write is
// issued, so a failure on any item leaves the store untouched.

// BulkCreate validates every request, including name uniqueness within
// the batch, and stores all campaigns in one batch.
func (u *CampaignUseCase) BulkCreate(ctx context.Context, creator domain.Identity, reqs []port.CreateCampaignReq) (_ []domain.Campaign, err error) {
	defer func() { observeBulk("create", len(reqs), err) }()

	campaigns := make([]domain.Campaign, 0, len(reqs))
	names := make(map[string]struct{}, len(reqs))
	for i, req := range reqs {
		c, err := u.buildCampaign(ctx, creator, req)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		key := strings.ToLower(c.Name)
		if _, dup := names[key]; dup {
			return nil, fmt.Errorf("item %d: %w", i, domain.DuplicateName(c.Name))
		}
		if err = u.ensureNameAvailable(ctx, c.Name); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		names[key] = struct{}{}
		campaigns = append(campaigns, c)
	}
	if len(campaigns) == 0 {
		return []domain.Campaign{}, nil
	}
	saved, err := u.repo.SaveAll(ctx, campaigns)
	if err != nil {
		return nil, err
	}
	u.logger.Info("campaigns created in bulk", slog.Int("count", len(saved)))
	return saved, nil
}

// BulkUpdate always fails: the items carry no id, so there is no way to
// tell which stored campaign each one targets.
func (u *CampaignUseCase) BulkUpdate(_ context.Context, _ []port.UpdateCampaignReq) ([]domain.Campaign, error) {
	observeBulk("update", 0, domain.ErrUnsupportedOperation)
	return nil, fmt.Errorf("%w: bulk update requires campaign ids", domain.ErrUnsupportedOperation)
}

// BulkUpdateStatus moves every listed campaign to status. All transitions
// are checked first; the batch is written only if every one is allowed.
// Repeated ids are applied once.
func (u *CampaignUseCase) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status domain.Status) (_ []domain.Campaign, err error) {
	defer func() { observeBulk("status", len(ids), err) }()

	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	loaded, err := u.loadAll(ctx, dedupe(ids))
	if err != nil {
		return nil, err
	}

	// phase 1: validate everything without touching the loaded campaigns
	for _, c := range loaded {
		if !domain.IsTransitionAllowed(c.Status, status) {
			u.logger.Warn("bulk status update rejected",
				slog.String("campaign_id", c.ID.String()),
				slog.String("from", string(c.Status)),
				slog.String("to", string(status)))
			return nil, &domain.TransitionError{CampaignID: c.ID, From: c.Status, To: status}
		}
	}

	// phase 2: apply and write once
	now := u.now()
	from := make([]domain.Status, len(loaded))
	for i := range loaded {
		from[i] = loaded[i].Status
		loaded[i].Status = status
		loaded[i].UpdatedAt = now
	}
	if len(loaded) == 0 {
		return []domain.Campaign{}, nil
	}
	saved, err := u.repo.SaveAll(ctx, loaded)
	if err != nil {
		return nil, err
	}
	for _, f := range from {
		statusTransitionsTotal.WithLabelValues(string(f), string(status)).Inc()
	}
	return saved, nil
}

// BulkIncrementClicks adds one click per occurrence of each id, so an id
// listed twice gains two clicks.
func (u *CampaignUseCase) BulkIncrementClicks(ctx context.Context, ids []uuid.UUID) (_ []domain.Campaign, err error) {
	defer func() { observeBulk("clicks", len(ids), err) }()

	counts := make(map[uuid.UUID]int64, len(ids))
	for _, id := range ids {
		counts[id]++
	}
	loaded, err := u.loadAll(ctx, dedupe(ids))
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		return []domain.Campaign{}, nil
	}
	now := u.now()
	for i := range loaded {
		loaded[i].ActualClicks += counts[loaded[i].ID]
		loaded[i].UpdatedAt = now
	}
	return u.repo.SaveAll(ctx, loaded)
}

// BulkDelete removes the listed campaigns after checking that every one
// exists.
func (u *CampaignUseCase) BulkDelete(ctx context.Context, ids []uuid.UUID) (err error) {
	defer func() { observeBulk("delete", len(ids), err) }()

	unique := dedupe(ids)
	if _, err = u.loadAll(ctx, unique); err != nil {
		return err
	}
	if len(unique) == 0 {
		return nil
	}
	if err = u.repo.DeleteAllByID(ctx, unique); err != nil {
		return err
	}
	u.logger.Info("campaigns deleted in bulk", slog.Int("count", len(unique)))
	return nil
}

// CleanupExpired deletes COMPLETED and CANCELLED campaigns whose end date
// is older than the retention window.
func (u *CampaignUseCase) CleanupExpired(ctx context.Context, retentionDays int) (n int, err error) {
	defer func() { observeBulk("cleanup", n, err) }()

	if retentionDays < 0 {
		return 0, fmt.Errorf("%w: retention days must not be negative", domain.ErrValidation)
	}
	cutoff := u.now().AddDate(0, 0, -retentionDays)
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	var purge []domain.Campaign
	for _, c := range all {
		if domain.Purgeable(c, cutoff) {
			purge = append(purge, c)
		}
	}
	if len(purge) == 0 {
		return 0, nil
	}
	if err = u.repo.DeleteAll(ctx, purge); err != nil {
		return 0, err
	}
	u.logger.Info("expired campaigns cleaned up",
		slog.Int("count", len(purge)),
		slog.Int("retention_days", retentionDays),
		slog.Time("cutoff", cutoff))
	return len(purge), nil
}

// RecalculateStatuses completes every active campaign whose end date has
// passed. ACTIVE to COMPLETED is always legal, so the lifecycle check is
// skipped.
func (u *CampaignUseCase) RecalculateStatuses(ctx context.Context) (_ []domain.Campaign, err error) {
	var updated []domain.Campaign
	defer func() { observeBulk("recalculate", len(updated), err) }()

	active, err := u.repo.FindByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	now := u.now()
	for _, c := range active {
		if domain.Overdue(c, now) {
			c.Status = domain.StatusCompleted
			c.UpdatedAt = now
			updated = append(updated, c)
		}
	}
	if len(updated) == 0 {
		return []domain.Campaign{}, nil
	}
	saved, err := u.repo.SaveAll(ctx, updated)
	if err != nil {
		return nil, err
	}
	statusTransitionsTotal.WithLabelValues(string(domain.StatusActive), string(domain.StatusCompleted)).Add(float64(len(saved)))
	u.logger.Info("overdue campaigns completed", slog.Int("count", len(saved)))
	return saved, nil
}

// SyncClicks hands the active campaigns to the configured ClickSyncer. It
// does nothing when none is configured.
func (u *CampaignUseCase) SyncClicks(ctx context.Context) error {
	if u.clicks == nil {
		u.logger.Debug("click sync skipped: no click source configured")
		return nil
	}
	active, err := u.repo.FindByStatus(ctx, domain.StatusActive)
	if err != nil {
		return err
	}
	return u.clicks.SyncClicks(ctx, active)
}

// loadAll loads every id in order, failing on the first missing one.
func (u *CampaignUseCase) loadAll(ctx context.Context, ids []uuid.UUID) ([]domain.Campaign, error) {
	out := make([]domain.Campaign, 0, len(ids))
	for _, id := range ids {
		c, err := u.load(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// dedupe drops repeated ids, keeping first occurrences in order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
