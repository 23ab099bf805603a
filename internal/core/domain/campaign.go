package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign represents a marketing campaign promoting one or more tour plans.
// Budget is an arbitrary-precision amount; click counters are plain integers.
type Campaign struct {
	ID             uuid.UUID
	Name           string
	Description    string
	TargetAudience string
	Type           CampaignType
	Status         Status
	Budget         decimal.Decimal
	StartDate      time.Time
	EndDate        time.Time
	TargetClicks   int64
	ActualClicks   int64
	CreatedBy      uuid.UUID
	Tours          []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Version is bumped by the store on every write. A write carrying a
	// stale version is rejected with ErrConcurrentModification.
	Version int64
}

// CampaignType is the marketing channel of a campaign. It has no
// lifecycle of its own.
type CampaignType string

const (
	TypeEmail        CampaignType = "EMAIL"
	TypeSocialMedia  CampaignType = "SOCIAL_MEDIA"
	TypeSearchEngine CampaignType = "SEARCH_ENGINE"
	TypeDisplay      CampaignType = "DISPLAY"
	TypeAffiliate    CampaignType = "AFFILIATE"
	TypeContent      CampaignType = "CONTENT"
)

// Valid reports whether t is one of the known campaign types.
func (t CampaignType) Valid() bool {
	switch t {
	case TypeEmail, TypeSocialMedia, TypeSearchEngine, TypeDisplay, TypeAffiliate, TypeContent:
		return true
	default:
		return false
	}
}

// ParseCampaignType normalises a textual type label.
func ParseCampaignType(value string) (CampaignType, bool) {
	t := CampaignType(strings.ToUpper(strings.TrimSpace(value)))
	return t, t.Valid()
}

// ValidDateRange reports whether end is strictly after start.
func ValidDateRange(start, end time.Time) bool {
	return end.After(start)
}

// SameName compares campaign names the way uniqueness is enforced.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Identity is the caller on whose behalf a campaign is created.
type Identity struct {
	ID       uuid.UUID
	Username string
}

// TourRef is a reference to a tour plan a campaign promotes.
type TourRef struct {
	ID   uuid.UUID
	Name string
}
