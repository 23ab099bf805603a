package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port/mocks"
)

func withBudget(f *fixture, name, budget string) domain.Campaign {
	return f.repo.Insert(domain.Campaign{
		Name:   name,
		Status: domain.StatusActive,
		Budget: decimal.RequireFromString(budget),
	})[0]
}

func TestSearchByBudget(t *testing.T) {
	f := newFixture(t)
	want := withBudget(f, "near", "950.00")
	withBudget(f, "above", "1200.00")
	withBudget(f, "below", "800.00")

	got, err := f.svc.SearchByBudget(context.Background(), decimal.RequireFromString("1000.00"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want.ID, got[0].ID)

	_, err = f.svc.SearchByBudget(context.Background(), decimal.NewFromInt(-1))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampaignsInBudgetRange(t *testing.T) {
	f := newFixture(t)
	withBudget(f, "a", "100")
	withBudget(f, "b", "200")
	withBudget(f, "c", "300")

	got, err := f.svc.CampaignsInBudgetRange(context.Background(), decimal.NewFromInt(100), decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = f.svc.CampaignsInBudgetRange(context.Background(), decimal.NewFromInt(300), decimal.NewFromInt(200))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestHighBudgetAndOverview(t *testing.T) {
	f := newFixture(t)
	withBudget(f, "a", "1000.00")
	high := withBudget(f, "b", "2000.00")
	withBudget(f, "c", "500.00")

	got, err := f.svc.HighBudgetCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, high.ID, got[0].ID)

	s, err := f.svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "1166.67", s.AverageBudget.StringFixed(2))
	assert.True(t, s.HighBudgetThreshold.Equal(decimal.RequireFromString("1750.005")))
	assert.Equal(t, 3, s.CountByStatus[domain.StatusActive])
}

func TestUpcomingAndExpired(t *testing.T) {
	f := newFixture(t)
	day := 24 * time.Hour
	insert := func(name string, start, end time.Time) domain.Campaign {
		return f.repo.Insert(domain.Campaign{Name: name, StartDate: start, EndDate: end})[0]
	}
	later := insert("later", testNow.Add(5*day), testNow.Add(9*day))
	sooner := insert("sooner", testNow.Add(day), testNow.Add(9*day))
	insert("now", testNow.Add(-day), testNow.Add(day))
	ended := insert("ended", testNow.Add(-9*day), testNow.Add(-day))

	up, err := f.svc.UpcomingCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, up, 2)
	assert.Equal(t, sooner.ID, up[0].ID)
	assert.Equal(t, later.ID, up[1].ID)

	exp, err := f.svc.ExpiredCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, exp, 1)
	assert.Equal(t, ended.ID, exp[0].ID)
}

func TestCampaignsWithinDateRange(t *testing.T) {
	f := newFixture(t)
	from := testNow
	to := testNow.AddDate(0, 1, 0)

	_, err := f.svc.CampaignsWithinDateRange(context.Background(), to, from)
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)

	inside := f.repo.Insert(domain.Campaign{Name: "inside", StartDate: from, EndDate: to})[0]
	f.repo.Insert(domain.Campaign{Name: "outside", StartDate: from, EndDate: to.Add(time.Second)})

	got, err := f.svc.CampaignsWithinDateRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)
}

func TestTopCampaignsByClicks(t *testing.T) {
	f := newFixture(t)
	for i, clicks := range []int64{5, 40, 12} {
		f.repo.Insert(domain.Campaign{Name: string(rune('a' + i)), ActualClicks: clicks})
	}

	got, err := f.svc.TopCampaignsByClicks(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(40), got[0].ActualClicks)
	assert.Equal(t, int64(12), got[1].ActualClicks)

	_, err = f.svc.TopCampaignsByClicks(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampaignsNeedingClickUpdatesAndAudience(t *testing.T) {
	f := newFixture(t)
	behind := f.seed("behind", domain.StatusActive)
	reached := f.seed("reached", domain.StatusActive)
	f.seed("paused", domain.StatusPaused)

	_, err := f.svc.BulkIncrementClicks(context.Background(), repeat(reached.ID, 100))
	require.NoError(t, err)

	got, err := f.svc.CampaignsNeedingClickUpdates(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, behind.ID, got[0].ID)

	got, err = f.svc.ActiveCampaignsForAudience(context.Background(), "FAMILIES")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCampaignsByCreator(t *testing.T) {
	f := newFixture(t)
	mine := f.seed("mine", domain.StatusDraft)
	f.repo.Insert(domain.Campaign{Name: "theirs", CreatedBy: uuid.New()})

	got, err := f.svc.CampaignsByCreator(context.Background(), f.user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)

	_, err = f.svc.CampaignsByCreator(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignsByCreatorSkipsStoreForUnknownUser(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	users := mocks.NewMockUserRepository(t)
	id := uuid.New()
	users.EXPECT().FindUser(mock.Anything, id).Return(nil, nil)

	svc := NewCampaignUseCase(repo, mocks.NewMockTourRepository(t), users, discardLogger())
	_, err := svc.CampaignsByCreator(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignsByStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CampaignsByStatus(context.Background(), domain.Status("ARCHIVED"))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func repeat(id uuid.UUID, n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = id
	}
	return out
}
