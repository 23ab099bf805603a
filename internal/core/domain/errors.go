package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrDuplicateName           = errors.New("campaign name already exists")
	ErrInvalidDateRange        = errors.New("end date must be after start date")
	ErrInvalidStatusTransition = errors.New("campaign status transition is not allowed")
	ErrUnsupportedOperation    = errors.New("unsupported operation")
	ErrValidation              = errors.New("validation failed")
	ErrConcurrentModification  = errors.New("campaign was modified concurrently")
)

// TransitionError carries the offending campaign and status pair of a
// rejected transition. It matches ErrInvalidStatusTransition.
type TransitionError struct {
	CampaignID uuid.UUID
	From       Status
	To         Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("campaign %s: status transition not allowed: %s -> %s", e.CampaignID, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidStatusTransition
}

// CampaignNotFound wraps ErrNotFound with the missing campaign id.
func CampaignNotFound(id uuid.UUID) error {
	return fmt.Errorf("campaign %s: %w", id, ErrNotFound)
}

// DuplicateName wraps ErrDuplicateName with the conflicting name.
func DuplicateName(name string) error {
	return fmt.Errorf("%q: %w", name, ErrDuplicateName)
}
