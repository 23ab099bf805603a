package domain

import "github.com/shopspring/decimal"

var (
	one  = decimal.NewFromInt(1)
	zero = decimal.Zero

	// highBudgetFactor scales the average budget into the high-budget threshold.
	highBudgetFactor = decimal.RequireFromString("1.5")
)

// moneyPlaces is the precision of derived monetary amounts.
const moneyPlaces = 2

// ClickRatio is the fraction of the budget considered spent, always in
// [0, 1]. A campaign without a click target counts as fully spent once
// completed and unspent otherwise.
func ClickRatio(c Campaign) decimal.Decimal {
	if c.TargetClicks <= 0 {
		if c.Status == StatusCompleted {
			return one
		}
		return zero
	}
	if c.ActualClicks <= 0 {
		return zero
	}
	if c.ActualClicks >= c.TargetClicks {
		return one
	}
	return decimal.NewFromInt(c.ActualClicks).Div(decimal.NewFromInt(c.TargetClicks))
}

// SpentBudget returns the prorated spend of c, budget * actual / target.
// A partial spend is rounded half away from zero to moneyPlaces (cents), so
// it can differ from the exact ratio by up to half a cent. It never exceeds
// the budget.
func SpentBudget(c Campaign) decimal.Decimal {
	if c.Budget.Sign() <= 0 {
		return zero
	}
	if c.TargetClicks > 0 && c.ActualClicks > 0 && c.ActualClicks < c.TargetClicks {
		// multiply before dividing so ratios like 1/3 do not lose precision
		spent := c.Budget.Mul(decimal.NewFromInt(c.ActualClicks)).
			Div(decimal.NewFromInt(c.TargetClicks)).
			Round(moneyPlaces)
		return decimal.Min(spent, c.Budget)
	}
	return c.Budget.Mul(ClickRatio(c))
}

// RemainingBudget returns budget minus SpentBudget. It inherits the cent
// rounding of the spend, so spent plus remaining always equals the budget.
// Never negative.
func RemainingBudget(c Campaign) decimal.Decimal {
	return c.Budget.Sub(SpentBudget(c))
}

// TotalBudgetSpent sums the spend of ACTIVE and COMPLETED campaigns only.
func TotalBudgetSpent(campaigns []Campaign) decimal.Decimal {
	total := zero
	for _, c := range campaigns {
		if c.Status == StatusActive || c.Status == StatusCompleted {
			total = total.Add(SpentBudget(c))
		}
	}
	return total
}

// TotalBudget sums every campaign budget regardless of status.
func TotalBudget(campaigns []Campaign) decimal.Decimal {
	total := zero
	for _, c := range campaigns {
		total = total.Add(c.Budget)
	}
	return total
}

// TotalBudgetByStatus sums the budgets of campaigns in the given status.
func TotalBudgetByStatus(campaigns []Campaign, status Status) decimal.Decimal {
	total := zero
	for _, c := range campaigns {
		if c.Status == status {
			total = total.Add(c.Budget)
		}
	}
	return total
}

// AverageBudget is the arithmetic mean rounded half-up to cents, zero for
// an empty set.
func AverageBudget(campaigns []Campaign) decimal.Decimal {
	if len(campaigns) == 0 {
		return zero
	}
	return TotalBudget(campaigns).DivRound(decimal.NewFromInt(int64(len(campaigns))), moneyPlaces)
}

// HighBudgetThreshold is 1.5 times the rounded average budget.
func HighBudgetThreshold(campaigns []Campaign) decimal.Decimal {
	return AverageBudget(campaigns).Mul(highBudgetFactor)
}

// HighBudgetCampaigns returns campaigns whose budget strictly exceeds the
// high-budget threshold of the set.
func HighBudgetCampaigns(campaigns []Campaign) []Campaign {
	threshold := HighBudgetThreshold(campaigns)
	return filter(campaigns, func(c Campaign) bool {
		return c.Budget.GreaterThan(threshold)
	})
}

// Succeeded reports whether c completed having reached its click target.
func Succeeded(c Campaign) bool {
	return c.Status == StatusCompleted && c.TargetClicks > 0 && c.ActualClicks >= c.TargetClicks
}

// SuccessRate is the percentage of campaigns that succeeded, out of all
// campaigns. Zero when the set is empty.
func SuccessRate(campaigns []Campaign) float64 {
	if len(campaigns) == 0 {
		return 0
	}
	var succeeded int
	for _, c := range campaigns {
		if Succeeded(c) {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(campaigns)) * 100
}

// BudgetSummary aggregates portfolio level figures.
type BudgetSummary struct {
	TotalBudget         decimal.Decimal
	TotalSpent          decimal.Decimal
	TotalRemaining      decimal.Decimal
	AverageBudget       decimal.Decimal
	HighBudgetThreshold decimal.Decimal
	BudgetByStatus      map[Status]decimal.Decimal
	CountByStatus       map[Status]int
	SuccessRate         float64
	Count               int
}

// Summarize computes a BudgetSummary over campaigns. TotalRemaining is
// TotalBudget minus TotalSpent.
func Summarize(campaigns []Campaign) BudgetSummary {
	s := BudgetSummary{
		TotalBudget:         TotalBudget(campaigns),
		TotalSpent:          TotalBudgetSpent(campaigns),
		AverageBudget:       AverageBudget(campaigns),
		HighBudgetThreshold: HighBudgetThreshold(campaigns),
		BudgetByStatus:      make(map[Status]decimal.Decimal, len(Statuses)),
		CountByStatus:       make(map[Status]int, len(Statuses)),
		SuccessRate:         SuccessRate(campaigns),
		Count:               len(campaigns),
	}
	s.TotalRemaining = s.TotalBudget.Sub(s.TotalSpent)
	for _, status := range Statuses {
		s.BudgetByStatus[status] = TotalBudgetByStatus(campaigns, status)
		s.CountByStatus[status] = 0
	}
	for _, c := range campaigns {
		s.CountByStatus[c.Status]++
	}
	return s
}
