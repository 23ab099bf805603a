package db

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-campaigns/internal/core/domain"
)

func TestDemoData(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d := DemoData(now)
	require.NotEmpty(t, d.Campaigns)

	users := make(map[uuid.UUID]bool)
	for _, u := range d.Users {
		users[u.ID] = true
	}
	tours := make(map[uuid.UUID]bool)
	for _, tr := range d.Tours {
		tours[tr.ID] = true
	}

	names := make(map[string]bool)
	for _, c := range d.Campaigns {
		key := strings.ToLower(c.Name)
		assert.False(t, names[key], "duplicate name %q", c.Name)
		names[key] = true

		assert.True(t, domain.ValidDateRange(c.StartDate, c.EndDate), c.Name)
		assert.True(t, c.Status.Valid(), c.Name)
		assert.True(t, c.Type.Valid(), c.Name)
		assert.False(t, c.Budget.IsNegative(), c.Name)
		assert.True(t, users[c.CreatedBy], c.Name)
		for _, id := range c.Tours {
			assert.True(t, tours[id], c.Name)
		}
		if c.Status == domain.StatusDraft {
			assert.Zero(t, c.ActualClicks, c.Name)
		}
	}
}

func TestDemoDataIDsAreStable(t *testing.T) {
	a := DemoData(time.Now())
	b := DemoData(time.Now().Add(time.Hour))
	require.Equal(t, len(a.Campaigns), len(b.Campaigns))
	for i := range a.Campaigns {
		assert.Equal(t, a.Campaigns[i].ID, b.Campaigns[i].ID)
	}
	assert.Equal(t, a.Users[0].ID, b.Users[0].ID)
}
