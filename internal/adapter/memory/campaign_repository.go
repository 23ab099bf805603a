package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository in process memory.
// A single mutex serialises access, which also makes batch writes atomic.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns map[uuid.UUID]domain.Campaign
	now       func() time.Time
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		campaigns: make(map[uuid.UUID]domain.Campaign),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Insert stores campaigns as given, bypassing version checks. Campaigns
// without an id get a fresh one; a zero version becomes 1. It is meant
// for seeding.
func (r *CampaignRepository) Insert(cs ...domain.Campaign) []domain.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Campaign, 0, len(cs))
	for _, c := range cs {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = r.now()
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = c.CreatedAt
		}
		if c.Version == 0 {
			c.Version = 1
		}
		r.campaigns[c.ID] = clone(c)
		out = append(out, clone(c))
	}
	return out
}

// FindByID returns a campaign by id.
func (r *CampaignRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	c = clone(c)
	return &c, nil
}

// FindByName returns the campaign with the given name, ignoring case.
func (r *CampaignRepository) FindByName(_ context.Context, name string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.campaigns {
		if domain.SameName(c.Name, name) {
			c = clone(c)
			return &c, nil
		}
	}
	return nil, nil
}

// ExistsByName reports whether a campaign with the name exists.
func (r *CampaignRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	c, err := r.FindByName(ctx, name)
	return c != nil, err
}

// FindAll returns every campaign ordered by creation time.
func (r *CampaignRepository) FindAll(_ context.Context) ([]domain.Campaign, error) {
	return r.selectWhere(func(domain.Campaign) bool { return true }), nil
}

// FindPage returns one page ordered by creation time.
func (r *CampaignRepository) FindPage(_ context.Context, req port.PageReq) (port.Page[domain.Campaign], error) {
	all := r.selectWhere(func(domain.Campaign) bool { return true })
	total := int64(len(all))
	start := min(req.Offset(), len(all))
	end := min(start+req.Size, len(all))
	return port.NewPage(all[start:end], req, total), nil
}

// FindByCreator returns campaigns created by creator.
func (r *CampaignRepository) FindByCreator(_ context.Context, creator uuid.UUID) ([]domain.Campaign, error) {
	return r.selectWhere(func(c domain.Campaign) bool { return c.CreatedBy == creator }), nil
}

// FindByStatus returns campaigns in status.
func (r *CampaignRepository) FindByStatus(_ context.Context, status domain.Status) ([]domain.Campaign, error) {
	return r.selectWhere(func(c domain.Campaign) bool { return c.Status == status }), nil
}

// FindActiveByAudience returns active campaigns for audience.
func (r *CampaignRepository) FindActiveByAudience(_ context.Context, audience string) ([]domain.Campaign, error) {
	return r.selectWhere(func(c domain.Campaign) bool {
		return c.Status == domain.StatusActive && strings.EqualFold(c.TargetAudience, audience)
	}), nil
}

// FindTopByClicks returns at most n campaigns with the most clicks.
func (r *CampaignRepository) FindTopByClicks(_ context.Context, n int) ([]domain.Campaign, error) {
	all := r.selectWhere(func(domain.Campaign) bool { return true })
	return domain.TopByClicks(all, n), nil
}

// Count returns the number of campaigns.
func (r *CampaignRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.campaigns)), nil
}

// Save inserts or updates a single campaign.
func (r *CampaignRepository) Save(_ context.Context, c domain.Campaign) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(c); err != nil {
		return domain.Campaign{}, err
	}
	if err := r.checkName(c, nil, nil); err != nil {
		return domain.Campaign{}, err
	}
	return r.put(c), nil
}

// SaveAll checks every campaign before writing any of them.
func (r *CampaignRepository) SaveAll(_ context.Context, cs []domain.Campaign) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[uuid.UUID]struct{}, len(cs))
	for _, c := range cs {
		if err := r.check(c); err != nil {
			return nil, err
		}
		if c.ID != uuid.Nil {
			// a second write of the same id in one batch would be stale
			if _, dup := seen[c.ID]; dup {
				return nil, domain.ErrConcurrentModification
			}
			seen[c.ID] = struct{}{}
		}
	}
	for i, c := range cs {
		if err := r.checkName(c, cs[:i], seen); err != nil {
			return nil, err
		}
	}
	out := make([]domain.Campaign, 0, len(cs))
	for _, c := range cs {
		out = append(out, r.put(c))
	}
	return out, nil
}

// DeleteByID removes a campaign.
func (r *CampaignRepository) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[id]; !ok {
		return domain.CampaignNotFound(id)
	}
	delete(r.campaigns, id)
	return nil
}

// DeleteAllByID removes every listed campaign, or none if one is missing.
func (r *CampaignRepository) DeleteAllByID(_ context.Context, ids []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if _, ok := r.campaigns[id]; !ok {
			return domain.CampaignNotFound(id)
		}
	}
	for _, id := range ids {
		delete(r.campaigns, id)
	}
	return nil
}

// DeleteAll removes the given campaigns.
func (r *CampaignRepository) DeleteAll(ctx context.Context, cs []domain.Campaign) error {
	ids := make([]uuid.UUID, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}
	return r.DeleteAllByID(ctx, ids)
}

// check validates a pending write. Callers must hold the write lock.
func (r *CampaignRepository) check(c domain.Campaign) error {
	if c.ID == uuid.Nil {
		return nil
	}
	stored, ok := r.campaigns[c.ID]
	if !ok {
		return domain.CampaignNotFound(c.ID)
	}
	if stored.Version != c.Version {
		return domain.ErrConcurrentModification
	}
	return nil
}

// checkName rejects a name already used, ignoring case, by another stored
// campaign or by an earlier write of the same batch. Stored campaigns listed
// in rewritten are judged by their pending write instead. Callers must hold
// the write lock.
func (r *CampaignRepository) checkName(c domain.Campaign, earlier []domain.Campaign, rewritten map[uuid.UUID]struct{}) error {
	for id, stored := range r.campaigns {
		if _, ok := rewritten[id]; ok || id == c.ID {
			continue
		}
		if domain.SameName(stored.Name, c.Name) {
			return domain.DuplicateName(c.Name)
		}
	}
	for _, e := range earlier {
		if domain.SameName(e.Name, c.Name) {
			return domain.DuplicateName(c.Name)
		}
	}
	return nil
}

// put stores c, assigning an id on insert and bumping the version.
// Callers must hold the write lock and have called check.
func (r *CampaignRepository) put(c domain.Campaign) domain.Campaign {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
		if c.CreatedAt.IsZero() {
			c.CreatedAt = r.now()
		}
		c.Version = 0
	} else {
		c.CreatedAt = r.campaigns[c.ID].CreatedAt
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	c.Version++
	c = clone(c)
	r.campaigns[c.ID] = c
	return clone(c)
}

func (r *CampaignRepository) selectWhere(keep func(domain.Campaign) bool) []domain.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if keep(c) {
			out = append(out, clone(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func clone(c domain.Campaign) domain.Campaign {
	if c.Tours != nil {
		c.Tours = append([]uuid.UUID(nil), c.Tours...)
	}
	return c
}
