package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(cs []Campaign) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func TestBudgetNear(t *testing.T) {
	cs := []Campaign{
		{Name: "950", Budget: dec("950.00")},
		{Name: "1200", Budget: dec("1200.00")},
		{Name: "800", Budget: dec("800.00")},
	}
	assert.Equal(t, []string{"950"}, names(BudgetNear(cs, dec("1000.00"))))
}

func TestBudgetBetweenIsInclusive(t *testing.T) {
	cs := []Campaign{
		{Name: "lo", Budget: dec("100")},
		{Name: "mid", Budget: dec("150")},
		{Name: "hi", Budget: dec("200")},
		{Name: "out", Budget: dec("200.01")},
	}
	assert.Equal(t, []string{"lo", "mid", "hi"}, names(BudgetBetween(cs, dec("100"), dec("200"))))
}

func TestUpcomingAndExpiredOrdering(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	cs := []Campaign{
		{Name: "later", StartDate: now.Add(10 * day), EndDate: now.Add(20 * day)},
		{Name: "soon", StartDate: now.Add(day), EndDate: now.Add(5 * day)},
		{Name: "running", StartDate: now.Add(-day), EndDate: now.Add(day)},
		{Name: "long-ago", StartDate: now.Add(-30 * day), EndDate: now.Add(-20 * day)},
		{Name: "recent", StartDate: now.Add(-10 * day), EndDate: now.Add(-2 * day)},
	}

	assert.Equal(t, []string{"soon", "later"}, names(Upcoming(cs, now)))
	assert.Equal(t, []string{"recent", "long-ago"}, names(Expired(cs, now)))
}

func TestWithinDateRange(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	cs := []Campaign{
		{Name: "exact", StartDate: from, EndDate: to},
		{Name: "inside", StartDate: from.AddDate(0, 0, 5), EndDate: to.AddDate(0, 0, -5)},
		{Name: "overlap", StartDate: from.AddDate(0, 0, -1), EndDate: to},
	}
	assert.Equal(t, []string{"exact", "inside"}, names(WithinDateRange(cs, from, to)))
}

func TestTopByClicks(t *testing.T) {
	cs := []Campaign{
		{Name: "a", ActualClicks: 5},
		{Name: "b", ActualClicks: 50},
		{Name: "c", ActualClicks: 20},
	}
	assert.Equal(t, []string{"b", "c"}, names(TopByClicks(cs, 2)))
	assert.Equal(t, []string{"b", "c", "a"}, names(TopByClicks(cs, 10)))
	assert.Empty(t, TopByClicks(cs, 0))
	assert.Equal(t, "a", cs[0].Name, "input order must be kept")
}

func TestAudienceCreatorAndClickFilters(t *testing.T) {
	alice := uuid.New()
	cs := []Campaign{
		{Name: "a", Status: StatusActive, TargetAudience: "Families", CreatedBy: alice, TargetClicks: 10, ActualClicks: 3},
		{Name: "b", Status: StatusPaused, TargetAudience: "families", TargetClicks: 10},
		{Name: "c", Status: StatusActive, TargetAudience: "seniors", CreatedBy: alice, TargetClicks: 10, ActualClicks: 10},
	}

	assert.Equal(t, []string{"a"}, names(ActiveForAudience(cs, "FAMILIES")))
	assert.Equal(t, []string{"a", "c"}, names(CreatedBy(cs, alice)))
	assert.Equal(t, []string{"a"}, names(NeedingClickUpdates(cs)))
	assert.Equal(t, []string{"b"}, names(WithStatus(cs, StatusPaused)))
}

func TestOverdueAndPurgeable(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)

	assert.True(t, Overdue(Campaign{Status: StatusActive, EndDate: past}, now))
	assert.False(t, Overdue(Campaign{Status: StatusPaused, EndDate: past}, now))

	require.True(t, Purgeable(Campaign{Status: StatusCancelled, EndDate: past}, now))
	assert.False(t, Purgeable(Campaign{Status: StatusActive, EndDate: past}, now))
	assert.False(t, Purgeable(Campaign{Status: StatusCompleted, EndDate: now}, now))
}
