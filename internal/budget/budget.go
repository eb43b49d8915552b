// Package budget implements the budget tracking engine: category allocation,
// the expense ledger, aggregate recalculation, threshold alerting, and
// forward projection.
//
// All mutators work in place on the passed-in aggregate and restore full
// consistency before returning. The engine does no locking; callers must
// serialize mutations against a given project's tracking (the cmd layer runs
// one mutation per process, and the store writes inside one transaction).
package budget

import (
	"github.com/theirongolddev/fliptrack/internal/model"
)

// Initialize creates a fresh tracking aggregate for a project. Only entries
// with a positive amount produce a category; zero, negative, and unknown
// entries are silently dropped. Categories are fixed from this point on, in
// canonical category order.
func Initialize(projectID, projectName string, budgets map[model.ExpenseCategory]float64) *model.BudgetTracking {
	t := &model.BudgetTracking{
		ProjectID:   projectID,
		ProjectName: projectName,
	}

	for _, tag := range model.AllCategories {
		amount, ok := budgets[tag]
		if !ok || amount <= 0 {
			continue
		}
		t.Categories = append(t.Categories, &model.BudgetCategory{
			Category: tag,
			Name:     tag.DisplayName(),
			Budgeted: amount,
			Status:   model.StatusUnderBudget,
		})
		t.TotalBudget += amount
	}

	return t
}
