package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

func TestSaveAssignsIDAndVersion(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	c, err := repo.Save(ctx, domain.Campaign{Name: "First", Status: domain.StatusDraft})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, int64(1), c.Version)
	assert.False(t, c.CreatedAt.IsZero())

	created := c.CreatedAt
	c.Status = domain.StatusActive
	c.CreatedAt = time.Time{}
	c, err = repo.Save(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.Version)
	assert.Equal(t, created, c.CreatedAt, "creation time is immutable")
}

func TestSaveRejectsStaleVersion(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	c := repo.Insert(domain.Campaign{Name: "Racy"})[0]

	first := c
	first.ActualClicks = 1
	_, err := repo.Save(ctx, first)
	require.NoError(t, err)

	second := c
	second.ActualClicks = 7
	_, err = repo.Save(ctx, second)
	require.ErrorIs(t, err, domain.ErrConcurrentModification)

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ActualClicks)
}

func TestSaveUnknownID(t *testing.T) {
	repo := NewCampaignRepository()
	_, err := repo.Save(context.Background(), domain.Campaign{ID: uuid.New(), Version: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveAllIsAtomic(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	cs := repo.Insert(domain.Campaign{Name: "a"}, domain.Campaign{Name: "b"})

	stale := cs[1]
	stale.Version = 99
	fresh := cs[0]
	fresh.Status = domain.StatusActive

	_, err := repo.SaveAll(ctx, []domain.Campaign{fresh, stale})
	require.ErrorIs(t, err, domain.ErrConcurrentModification)
	got, _ := repo.FindByID(ctx, fresh.ID)
	assert.Equal(t, domain.Status(""), got.Status)

	_, err = repo.SaveAll(ctx, []domain.Campaign{fresh, fresh})
	require.ErrorIs(t, err, domain.ErrConcurrentModification)

	saved, err := repo.SaveAll(ctx, []domain.Campaign{fresh, {Name: "c"}})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, int64(2), saved[0].Version)
	assert.Equal(t, int64(1), saved[1].Version)

	n, _ := repo.Count(ctx)
	assert.Equal(t, int64(3), n)
}

func TestSaveEnforcesUniqueNames(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	summer, err := repo.Save(ctx, domain.Campaign{Name: "Summer"})
	require.NoError(t, err)

	_, err = repo.SaveAll(ctx, []domain.Campaign{{Name: "SUMMER"}, {Name: "summer"}})
	require.ErrorIs(t, err, domain.ErrDuplicateName)
	_, err = repo.Save(ctx, domain.Campaign{Name: "sUmMeR"})
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = repo.SaveAll(ctx, []domain.Campaign{{Name: "Winter"}, {Name: "WINTER"}})
	require.ErrorIs(t, err, domain.ErrDuplicateName, "names collide within one batch")

	n, _ := repo.Count(ctx)
	assert.Equal(t, int64(1), n)

	summer.Name = "SUMMER"
	summer, err = repo.Save(ctx, summer)
	require.NoError(t, err, "a campaign may keep its own name")
	assert.Equal(t, "SUMMER", summer.Name)
}

func TestDeleteAllByIDIsAtomic(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	cs := repo.Insert(domain.Campaign{Name: "a"}, domain.Campaign{Name: "b"})

	err := repo.DeleteAllByID(ctx, []uuid.UUID{cs[0].ID, uuid.New()})
	require.ErrorIs(t, err, domain.ErrNotFound)
	n, _ := repo.Count(ctx)
	assert.Equal(t, int64(2), n)

	require.NoError(t, repo.DeleteAll(ctx, cs))
	n, _ = repo.Count(ctx)
	assert.Zero(t, n)
}

func TestLookups(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	creator := uuid.New()
	repo.Insert(
		domain.Campaign{Name: "Spring", Status: domain.StatusActive, TargetAudience: "Families", CreatedBy: creator, ActualClicks: 3, CreatedAt: base},
		domain.Campaign{Name: "Summer", Status: domain.StatusPaused, TargetAudience: "families", ActualClicks: 9, CreatedAt: base.Add(time.Hour)},
		domain.Campaign{Name: "Autumn", Status: domain.StatusActive, TargetAudience: "seniors", CreatedBy: creator, ActualClicks: 5, CreatedAt: base.Add(2 * time.Hour)},
	)

	c, err := repo.FindByName(ctx, "SPRING")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Spring", c.Name)

	ok, err := repo.ExistsByName(ctx, "winter")
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Spring", all[0].Name)
	assert.Equal(t, "Autumn", all[2].Name)

	mine, _ := repo.FindByCreator(ctx, creator)
	assert.Len(t, mine, 2)

	fam, _ := repo.FindActiveByAudience(ctx, "FAMILIES")
	require.Len(t, fam, 1)
	assert.Equal(t, "Spring", fam[0].Name)

	top, _ := repo.FindTopByClicks(ctx, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "Summer", top[0].Name)

	page, err := repo.FindPage(ctx, port.PageReq{Page: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Autumn", page.Items[0].Name)
	assert.Equal(t, 2, page.TotalPages)
}

func TestReturnedCampaignsAreCopies(t *testing.T) {
	repo := NewCampaignRepository()
	tour := uuid.New()
	c := repo.Insert(domain.Campaign{Name: "Copy", Tours: []uuid.UUID{tour}})[0]

	got, _ := repo.FindByID(context.Background(), c.ID)
	got.Tours[0] = uuid.New()

	again, _ := repo.FindByID(context.Background(), c.ID)
	assert.Equal(t, tour, again.Tours[0])
}
