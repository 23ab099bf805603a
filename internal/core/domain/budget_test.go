package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSpentAndRemainingBudget(t *testing.T) {
	c := Campaign{Status: StatusActive, Budget: dec("2000.00"), TargetClicks: 200, ActualClicks: 150}

	assert.True(t, ClickRatio(c).Equal(dec("0.75")))
	assert.True(t, SpentBudget(c).Equal(dec("1500.00")))
	assert.True(t, RemainingBudget(c).Equal(dec("500.00")))
}

func TestSpentBudgetRoundsToCents(t *testing.T) {
	c := Campaign{Status: StatusActive, Budget: dec("100"), TargetClicks: 3, ActualClicks: 1}
	assert.Equal(t, "33.33", SpentBudget(c).StringFixed(2))
	assert.Equal(t, "66.67", RemainingBudget(c).StringFixed(2))

	assert.True(t, SpentBudget(c).Equal(dec("33.33")), "spend is stored at cent precision")
	assert.True(t, RemainingBudget(c).Equal(dec("66.67")))
	assert.True(t, SpentBudget(c).Add(RemainingBudget(c)).Equal(c.Budget))

	c.ActualClicks = 2
	assert.True(t, SpentBudget(c).Equal(dec("66.67")), "half a cent rounds up")
}

func TestClickRatioIsClamped(t *testing.T) {
	for target := int64(0); target <= 20; target++ {
		for actual := int64(0); actual <= 40; actual++ {
			for _, status := range Statuses {
				c := Campaign{Status: status, Budget: dec("123.45"), TargetClicks: target, ActualClicks: actual}
				r := ClickRatio(c)
				assert.False(t, r.IsNegative(), "ratio %s for %d/%d", r, actual, target)
				assert.True(t, r.LessThanOrEqual(decimal.NewFromInt(1)), "ratio %s for %d/%d", r, actual, target)
				assert.False(t, RemainingBudget(c).IsNegative())
			}
		}
	}
}

func TestClickRatioWithoutTarget(t *testing.T) {
	assert.True(t, ClickRatio(Campaign{Status: StatusCompleted}).Equal(decimal.NewFromInt(1)))
	assert.True(t, ClickRatio(Campaign{Status: StatusActive, ActualClicks: 10}).IsZero())
}

func TestAverageAndHighBudget(t *testing.T) {
	cs := []Campaign{
		{Name: "a", Budget: dec("1000.00")},
		{Name: "b", Budget: dec("2000.00")},
		{Name: "c", Budget: dec("500.00")},
	}
	assert.Equal(t, "1166.67", AverageBudget(cs).StringFixed(2))
	assert.True(t, HighBudgetThreshold(cs).Equal(dec("1750.005")))

	high := HighBudgetCampaigns(cs)
	if assert.Len(t, high, 1) {
		assert.Equal(t, "b", high[0].Name)
	}

	assert.True(t, AverageBudget(nil).IsZero())
	assert.Empty(t, HighBudgetCampaigns(nil))
}

func TestTotalsAndSummary(t *testing.T) {
	cs := []Campaign{
		{Status: StatusActive, Budget: dec("1000"), TargetClicks: 100, ActualClicks: 50},
		{Status: StatusCompleted, Budget: dec("400"), TargetClicks: 10, ActualClicks: 10},
		{Status: StatusPaused, Budget: dec("300"), TargetClicks: 10, ActualClicks: 5},
		{Status: StatusDraft, Budget: dec("300")},
	}

	assert.True(t, TotalBudget(cs).Equal(dec("2000")))
	// paused spend is excluded
	assert.True(t, TotalBudgetSpent(cs).Equal(dec("900")))
	assert.True(t, TotalBudgetByStatus(cs, StatusDraft).Equal(dec("300")))
	assert.InDelta(t, 25.0, SuccessRate(cs), 1e-9)

	s := Summarize(cs)
	assert.Equal(t, 4, s.Count)
	assert.True(t, s.TotalRemaining.Equal(dec("1100")))
	assert.Equal(t, 1, s.CountByStatus[StatusPaused])
	assert.Equal(t, 0, s.CountByStatus[StatusCancelled])
	assert.True(t, s.BudgetByStatus[StatusCancelled].IsZero())
}
