package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
	"tour-campaigns/internal/core/port/mocks"
)

func TestBulkUpdateStatusIsAllOrNothing(t *testing.T) {
	f := newFixture(t)
	draft := f.seed("Draft", domain.StatusDraft)
	done := f.seed("Done", domain.StatusCompleted)

	_, err := f.svc.BulkUpdateStatus(context.Background(), []uuid.UUID{draft.ID, done.ID}, domain.StatusActive)
	require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	var terr *domain.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, done.ID, terr.CampaignID)

	assert.Equal(t, domain.StatusDraft, f.reload(t, draft.ID).Status)
	assert.Equal(t, domain.StatusCompleted, f.reload(t, done.ID).Status)
}

func TestBulkUpdateStatusNeverWritesOnRejection(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	tours := mocks.NewMockTourRepository(t)
	users := mocks.NewMockUserRepository(t)

	draft := domain.Campaign{ID: uuid.New(), Status: domain.StatusDraft, Version: 1}
	cancelled := domain.Campaign{ID: uuid.New(), Status: domain.StatusCancelled, Version: 1}

	repo.EXPECT().FindByID(mock.Anything, draft.ID).Return(&draft, nil)
	repo.EXPECT().FindByID(mock.Anything, cancelled.ID).Return(&cancelled, nil)
	// no SaveAll expectation: any write fails the test

	svc := NewCampaignUseCase(repo, tours, users, discardLogger())
	_, err := svc.BulkUpdateStatus(context.Background(), []uuid.UUID{draft.ID, cancelled.ID}, domain.StatusActive)
	require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	assert.Equal(t, domain.StatusDraft, draft.Status)
}

func TestBulkUpdateStatus(t *testing.T) {
	f := newFixture(t)
	a := f.seed("A", domain.StatusActive)
	b := f.seed("B", domain.StatusPaused)

	got, err := f.svc.BulkUpdateStatus(context.Background(), []uuid.UUID{a.ID, b.ID, a.ID}, domain.StatusCancelled)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, domain.StatusCancelled, c.Status)
	}
	assert.Equal(t, domain.StatusCancelled, f.reload(t, b.ID).Status)
}

func TestBulkUpdateStatusMissingID(t *testing.T) {
	f := newFixture(t)
	a := f.seed("A", domain.StatusDraft)

	_, err := f.svc.BulkUpdateStatus(context.Background(), []uuid.UUID{a.ID, uuid.New()}, domain.StatusActive)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.StatusDraft, f.reload(t, a.ID).Status)
}

func TestBulkIncrementClicks(t *testing.T) {
	f := newFixture(t)
	a := f.seed("A", domain.StatusActive)
	b := f.seed("B", domain.StatusActive)
	ctx := context.Background()

	const k = 4
	for i := 0; i < k; i++ {
		_, err := f.svc.BulkIncrementClicks(ctx, []uuid.UUID{a.ID})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(k), f.reload(t, a.ID).ActualClicks)

	_, err := f.svc.BulkIncrementClicks(ctx, []uuid.UUID{b.ID, b.ID, a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.reload(t, b.ID).ActualClicks)
	assert.Equal(t, int64(k+1), f.reload(t, a.ID).ActualClicks)

	_, err = f.svc.BulkIncrementClicks(ctx, []uuid.UUID{a.ID, uuid.New()})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(k+1), f.reload(t, a.ID).ActualClicks)
}

func TestBulkCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.svc.BulkCreate(ctx, f.user, []port.CreateCampaignReq{createReq("First"), createReq("Second")})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, f.user.ID, c.CreatedBy)
	}

	_, err = f.svc.BulkCreate(ctx, f.user, []port.CreateCampaignReq{createReq("Third"), createReq("THIRD")})
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	bad := createReq("Fourth")
	bad.EndDate = bad.StartDate
	_, err = f.svc.BulkCreate(ctx, f.user, []port.CreateCampaignReq{createReq("Fifth"), bad})
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)

	n, err := f.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestBulkUpdateIsUnsupported(t *testing.T) {
	f := newFixture(t)
	name := "whatever"
	_, err := f.svc.BulkUpdate(context.Background(), []port.UpdateCampaignReq{{Name: &name}})
	require.ErrorIs(t, err, domain.ErrUnsupportedOperation)
}

func TestBulkDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.seed("A", domain.StatusDraft)
	b := f.seed("B", domain.StatusDraft)

	err := f.svc.BulkDelete(ctx, []uuid.UUID{a.ID, uuid.New()})
	require.ErrorIs(t, err, domain.ErrNotFound)
	n, _ := f.repo.Count(ctx)
	assert.Equal(t, int64(2), n)

	require.NoError(t, f.svc.BulkDelete(ctx, []uuid.UUID{a.ID, b.ID, a.ID}))
	n, _ = f.repo.Count(ctx)
	assert.Zero(t, n)
}

func TestCleanupExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	old := func(name string, status domain.Status, daysAgo int) domain.Campaign {
		return f.repo.Insert(domain.Campaign{
			Name:      name,
			Status:    status,
			StartDate: testNow.AddDate(0, 0, -daysAgo-10),
			EndDate:   testNow.AddDate(0, 0, -daysAgo),
		})[0]
	}
	purged := old("old completed", domain.StatusCompleted, 100)
	old("old cancelled", domain.StatusCancelled, 91)
	kept := old("recent completed", domain.StatusCompleted, 30)
	active := old("old active", domain.StatusActive, 200)

	n, err := f.svc.CleanupExpired(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	c, err := f.repo.FindByID(ctx, purged.ID)
	require.NoError(t, err)
	assert.Nil(t, c)
	f.reload(t, kept.ID)
	f.reload(t, active.ID)

	_, err = f.svc.CleanupExpired(ctx, -1)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecalculateStatuses(t *testing.T) {
	f := newFixture(t)
	overdue := f.repo.Insert(domain.Campaign{
		Name:      "overdue",
		Status:    domain.StatusActive,
		StartDate: testNow.AddDate(0, 0, -20),
		EndDate:   testNow.AddDate(0, 0, -1),
	})[0]
	running := f.seed("running", domain.StatusActive)
	paused := f.repo.Insert(domain.Campaign{
		Name:      "paused",
		Status:    domain.StatusPaused,
		StartDate: testNow.AddDate(0, 0, -20),
		EndDate:   testNow.AddDate(0, 0, -1),
	})[0]

	got, err := f.svc.RecalculateStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, overdue.ID, got[0].ID)

	assert.Equal(t, domain.StatusCompleted, f.reload(t, overdue.ID).Status)
	assert.Equal(t, domain.StatusActive, f.reload(t, running.ID).Status)
	assert.Equal(t, domain.StatusPaused, f.reload(t, paused.ID).Status)
}

func TestSyncClicks(t *testing.T) {
	t.Run("no click source", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SyncClicks(context.Background()))
	})

	t.Run("hands active campaigns to the click source", func(t *testing.T) {
		syncer := mocks.NewMockClickSyncer(t)
		f := newFixture(t, WithClickSyncer(syncer))
		active := f.seed("active", domain.StatusActive)
		f.seed("draft", domain.StatusDraft)

		syncer.EXPECT().
			SyncClicks(mock.Anything, mock.MatchedBy(func(cs []domain.Campaign) bool {
				return len(cs) == 1 && cs[0].ID == active.ID
			})).
			Return(nil)
		require.NoError(t, f.svc.SyncClicks(context.Background()))
	})

	t.Run("click source failure", func(t *testing.T) {
		syncer := mocks.NewMockClickSyncer(t)
		f := newFixture(t, WithClickSyncer(syncer))
		boom := errors.New("tracker unavailable")
		syncer.EXPECT().SyncClicks(mock.Anything, mock.Anything).Return(boom)
		require.ErrorIs(t, f.svc.SyncClicks(context.Background()), boom)
	})
}
