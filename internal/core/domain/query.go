package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	budgetToleranceLow  = decimal.RequireFromString("0.9")
	budgetToleranceHigh = decimal.RequireFromString("1.1")
)

func filter(campaigns []Campaign, keep func(Campaign) bool) []Campaign {
	out := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// WithStatus returns campaigns whose status equals status.
func WithStatus(campaigns []Campaign, status Status) []Campaign {
	return filter(campaigns, func(c Campaign) bool { return c.Status == status })
}

// Upcoming returns campaigns starting strictly after now, earliest first.
func Upcoming(campaigns []Campaign, now time.Time) []Campaign {
	out := filter(campaigns, func(c Campaign) bool { return c.StartDate.After(now) })
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out
}

// Expired returns campaigns that ended strictly before now, most recent
// first.
func Expired(campaigns []Campaign, now time.Time) []Campaign {
	out := filter(campaigns, func(c Campaign) bool { return c.EndDate.Before(now) })
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndDate.After(out[j].EndDate) })
	return out
}

// BudgetBetween returns campaigns with min <= budget <= max.
func BudgetBetween(campaigns []Campaign, min, max decimal.Decimal) []Campaign {
	return filter(campaigns, func(c Campaign) bool {
		return c.Budget.GreaterThanOrEqual(min) && c.Budget.LessThanOrEqual(max)
	})
}

// BudgetNear returns campaigns whose budget lies within ±10% of target.
func BudgetNear(campaigns []Campaign, target decimal.Decimal) []Campaign {
	return BudgetBetween(campaigns, target.Mul(budgetToleranceLow), target.Mul(budgetToleranceHigh))
}

// TopByClicks returns at most n campaigns ordered by actual clicks,
// highest first.
func TopByClicks(campaigns []Campaign, n int) []Campaign {
	if n <= 0 {
		return []Campaign{}
	}
	out := make([]Campaign, len(campaigns))
	copy(out, campaigns)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ActualClicks > out[j].ActualClicks })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// NeedsClickUpdate reports whether c is active and below its click target.
func NeedsClickUpdate(c Campaign) bool {
	return c.Status == StatusActive && c.TargetClicks > 0 && c.ActualClicks < c.TargetClicks
}

// NeedingClickUpdates returns active campaigns still short of their click
// target.
func NeedingClickUpdates(campaigns []Campaign) []Campaign {
	return filter(campaigns, NeedsClickUpdate)
}

// CreatedBy returns campaigns created by the given identity.
func CreatedBy(campaigns []Campaign, creator uuid.UUID) []Campaign {
	return filter(campaigns, func(c Campaign) bool { return c.CreatedBy == creator })
}

// WithinDateRange returns campaigns whose whole run lies inside
// [from, to], bounds inclusive.
func WithinDateRange(campaigns []Campaign, from, to time.Time) []Campaign {
	return filter(campaigns, func(c Campaign) bool {
		return !c.StartDate.Before(from) && !c.EndDate.After(to)
	})
}

// ActiveForAudience returns active campaigns targeting audience,
// compared case-insensitively.
func ActiveForAudience(campaigns []Campaign, audience string) []Campaign {
	return filter(campaigns, func(c Campaign) bool {
		return c.Status == StatusActive && strings.EqualFold(c.TargetAudience, audience)
	})
}

// Overdue reports whether an active campaign has passed its end date.
func Overdue(c Campaign, now time.Time) bool {
	return c.Status == StatusActive && c.EndDate.Before(now)
}

// Purgeable reports whether a terminal campaign ended before cutoff.
func Purgeable(c Campaign, cutoff time.Time) bool {
	return c.Status.Terminal() && c.EndDate.Before(cutoff)
}
