package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransitionAllowed(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusDraft, StatusActive}:     true,
		{StatusDraft, StatusCancelled}:  true,
		{StatusActive, StatusPaused}:    true,
		{StatusActive, StatusCompleted}: true,
		{StatusActive, StatusCancelled}: true,
		{StatusPaused, StatusActive}:    true,
		{StatusPaused, StatusCancelled}: true,
	}
	for _, from := range Statuses {
		for _, to := range Statuses {
			assert.Equal(t, allowed[[2]Status{from, to}], IsTransitionAllowed(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		assert.True(t, s.Terminal())
		assert.Empty(t, ValidTransitionsFrom(s))
	}
	assert.Empty(t, ValidTransitionsFrom(Status("ARCHIVED")))
}

func TestTransition(t *testing.T) {
	c := Campaign{ID: uuid.New(), Status: StatusDraft}

	moved, err := Transition(c, StatusActive)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, moved.Status)
	assert.Equal(t, StatusDraft, c.Status, "input must not be mutated")

	c.Status = StatusCompleted
	_, err = Transition(c, StatusActive)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatusTransition))

	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, c.ID, terr.CampaignID)
	assert.Equal(t, StatusCompleted, terr.From)
	assert.Equal(t, StatusActive, terr.To)
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus(" paused ")
	assert.True(t, ok)
	assert.Equal(t, StatusPaused, s)

	_, ok = ParseStatus("archived")
	assert.False(t, ok)
}
