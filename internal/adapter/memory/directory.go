package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

// Directory holds tours and users for the in-memory store. It implements
// both port.TourRepository and port.UserRepository.
type Directory struct {
	mu    sync.RWMutex
	tours map[uuid.UUID]domain.TourRef
	users map[uuid.UUID]domain.Identity
}

var (
	_ port.TourRepository = (*Directory)(nil)
	_ port.UserRepository = (*Directory)(nil)
)

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		tours: make(map[uuid.UUID]domain.TourRef),
		users: make(map[uuid.UUID]domain.Identity),
	}
}

// AddTour registers a tour.
func (d *Directory) AddTour(t domain.TourRef) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tours[t.ID] = t
}

// AddUser registers a user.
func (d *Directory) AddUser(u domain.Identity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[u.ID] = u
}

// FindTour returns a tour by id.
func (d *Directory) FindTour(_ context.Context, id uuid.UUID) (*domain.TourRef, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.tours[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// FindUser returns a user by id.
func (d *Directory) FindUser(_ context.Context, id uuid.UUID) (*domain.Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
