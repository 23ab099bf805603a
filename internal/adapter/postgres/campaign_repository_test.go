package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-campaigns/internal/core/domain"
)

func TestQueueRowWriteInsert(t *testing.T) {
	batch := &pgx.Batch{}
	tour := uuid.New()
	c := queueRowWrite(batch, domain.Campaign{
		Name:   "New",
		Status: domain.StatusDraft,
		Budget: decimal.RequireFromString("10.50"),
		Tours:  []uuid.UUID{tour},
	})

	require.Equal(t, 1, batch.Len(), "tour links are written separately")
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, int64(1), c.Version)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)

	insert := batch.QueuedQueries[0]
	assert.True(t, strings.HasPrefix(insert.SQL, "INSERT INTO campaigns"))
	assert.Equal(t, "10.5", insert.Arguments[6])
	assert.Equal(t, uuid.NullUUID{}, insert.Arguments[11], "a missing creator is stored as NULL")
	assert.Equal(t, []uuid.UUID{tour}, c.Tours)
}

func TestQueueRowWriteUpdateIsVersionGuarded(t *testing.T) {
	batch := &pgx.Batch{}
	id := uuid.New()
	c := queueRowWrite(batch, domain.Campaign{ID: id, Name: "Existing", Version: 4})

	require.Equal(t, 1, batch.Len())
	assert.Equal(t, id, c.ID)
	assert.Equal(t, int64(5), c.Version)

	update := batch.QueuedQueries[0]
	assert.Contains(t, update.SQL, "WHERE id = $1 AND version = $13")
	assert.Equal(t, int64(4), update.Arguments[12])
}

func TestQueueToursReplacesLinks(t *testing.T) {
	batch := &pgx.Batch{}
	id, tour := uuid.New(), uuid.New()
	queueTours(batch, domain.Campaign{ID: id, Tours: []uuid.UUID{tour}})
	queueTours(batch, domain.Campaign{ID: uuid.New()})

	require.Equal(t, 2*tourStatements, batch.Len())
	assert.True(t, strings.HasPrefix(batch.QueuedQueries[0].SQL, "DELETE FROM campaign_tours"))
	assert.Equal(t, id, batch.QueuedQueries[0].Arguments[0])
	assert.Equal(t, []string{tour.String()}, batch.QueuedQueries[1].Arguments[1])
	assert.Equal(t, []string{}, batch.QueuedQueries[3].Arguments[1])
}

func TestMapWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: nameUniqueIndex}
	err := mapWriteError(fmt.Errorf("exec: %w", dup), "Summer")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	other := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "campaign_tours_pkey"}
	assert.Same(t, other, mapWriteError(other, "Summer"))

	plain := errors.New("boom")
	assert.Equal(t, plain, mapWriteError(plain, "Summer"))
}
