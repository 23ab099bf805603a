package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

// TourRepository resolves tour references from the tours table.
type TourRepository struct {
	pool *pgxpool.Pool
}

var _ port.TourRepository = (*TourRepository)(nil)

// NewTourRepository returns a new repository instance.
func NewTourRepository(pool *pgxpool.Pool) *TourRepository {
	return &TourRepository{pool: pool}
}

// FindTour returns a tour by id.
func (r *TourRepository) FindTour(ctx context.Context, id uuid.UUID) (*domain.TourRef, error) {
	var t domain.TourRef
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM tours WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UserRepository resolves identities from the users table.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ port.UserRepository = (*UserRepository)(nil)

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindUser returns a user by id.
func (r *UserRepository) FindUser(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	var u domain.Identity
	err := r.pool.QueryRow(ctx, `SELECT id, username FROM users WHERE id = $1`, id).Scan(&u.ID, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
