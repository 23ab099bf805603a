package domain

import "strings"

// Status describes where a campaign is in its lifecycle.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusCancelled}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseStatus normalises a textual status label.
func ParseStatus(value string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(value)))
	return s, s.Valid()
}

// ValidTransitionsFrom returns the statuses reachable from s in one step.
// Terminal and unknown statuses yield an empty slice.
func ValidTransitionsFrom(s Status) []Status {
	switch s {
	case StatusDraft:
		return []Status{StatusActive, StatusCancelled}
	case StatusActive:
		return []Status{StatusPaused, StatusCompleted, StatusCancelled}
	case StatusPaused:
		return []Status{StatusActive, StatusCancelled}
	default:
		return []Status{}
	}
}

// IsTransitionAllowed enforces the campaign lifecycle.
func IsTransitionAllowed(from, to Status) bool {
	for _, s := range ValidTransitionsFrom(from) {
		if s == to {
			return true
		}
	}
	return false
}

// Transition returns a copy of c moved to the target status, or a
// *TransitionError when the lifecycle forbids the move.
func Transition(c Campaign, to Status) (Campaign, error) {
	if !IsTransitionAllowed(c.Status, to) {
		return Campaign{}, &TransitionError{CampaignID: c.ID, From: c.Status, To: to}
	}
	c.Status = to
	return c, nil
}
