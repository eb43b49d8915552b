package budget

import (
	"github.com/theirongolddev/fliptrack/internal/model"
)

var overBudgetAdvice = []string{
	"Projected spending exceeds the total budget",
	"Review planned expenses or increase the budget before committing",
	"Prioritize essential work and defer cosmetic upgrades",
}

var withinBudgetAdvice = []string{
	"Projected spending stays within the total budget",
	"Keep the contingency reserve for unexpected costs",
}

// Project answers a what-if question: would the given additional expenses,
// on top of everything already spent and committed, exceed the total budget?
// The computation only reads current totals; per-category detail is ignored
// and the tracking is never mutated.
func Project(t *model.BudgetTracking, additional map[model.ExpenseCategory]float64) model.Projection {
	var extra float64
	for _, amount := range additional {
		extra += amount
	}

	used := t.TotalSpent + t.TotalCommitted
	p := model.Projection{
		CurrentRemaining:   t.TotalBudget - used,
		ProjectedRemaining: t.TotalBudget - used - extra,
	}
	p.WillExceedBudget = p.ProjectedRemaining < 0

	if p.WillExceedBudget {
		p.Recommendations = overBudgetAdvice
	} else {
		p.Recommendations = withinBudgetAdvice
	}

	return p
}
