package port

import (
	"context"

	"github.com/google/uuid"

	"tour-campaigns/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Lookups return (nil, nil) when
// nothing matches. Batch writes must be atomic: either every item is
// persisted or none is.
type CampaignRepository interface {
	// FindByID returns a campaign by id.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// FindByName returns the campaign whose name equals name ignoring case.
	FindByName(ctx context.Context, name string) (*domain.Campaign, error)
	// ExistsByName reports whether a campaign with the name exists,
	// ignoring case.
	ExistsByName(ctx context.Context, name string) (bool, error)
	// FindAll returns every campaign ordered by creation time.
	FindAll(ctx context.Context) ([]domain.Campaign, error)
	// FindPage returns one page of campaigns ordered by creation time.
	FindPage(ctx context.Context, req PageReq) (Page[domain.Campaign], error)
	// FindByCreator returns campaigns created by the given identity.
	FindByCreator(ctx context.Context, creator uuid.UUID) ([]domain.Campaign, error)
	// FindByStatus returns campaigns in the given status.
	FindByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error)
	// FindActiveByAudience returns active campaigns for an audience,
	// compared ignoring case.
	FindActiveByAudience(ctx context.Context, audience string) ([]domain.Campaign, error)
	// FindTopByClicks returns at most n campaigns with the most clicks.
	FindTopByClicks(ctx context.Context, n int) ([]domain.Campaign, error)
	// Count returns the number of stored campaigns.
	Count(ctx context.Context) (int64, error)

	// Save inserts a campaign with a nil id, assigning a new id, or updates
	// an existing one. Updates must carry the version that was loaded;
	// a stale version yields domain.ErrConcurrentModification. A name
	// equal, ignoring case, to that of another campaign yields
	// domain.ErrDuplicateName.
	Save(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	// SaveAll applies Save to every campaign in a single transaction. Names
	// must also be unique within the batch.
	SaveAll(ctx context.Context, cs []domain.Campaign) ([]domain.Campaign, error)
	// DeleteByID removes one campaign.
	DeleteByID(ctx context.Context, id uuid.UUID) error
	// DeleteAllByID removes every listed campaign in a single transaction.
	DeleteAllByID(ctx context.Context, ids []uuid.UUID) error
	// DeleteAll removes the given campaigns in a single transaction.
	DeleteAll(ctx context.Context, cs []domain.Campaign) error
}

// TourRepository resolves tour plan references.
type TourRepository interface {
	// FindTour returns a tour by id, or nil when it does not exist.
	FindTour(ctx context.Context, id uuid.UUID) (*domain.TourRef, error)
}

// UserRepository resolves caller identities.
type UserRepository interface {
	// FindUser returns an identity by id, or nil when it does not exist.
	FindUser(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
}

// ClickSyncer is an extension point for pulling click counts from an
// external tracker. The service never calls it unless one is configured.
type ClickSyncer interface {
	SyncClicks(ctx context.Context, campaigns []domain.Campaign) error
}
