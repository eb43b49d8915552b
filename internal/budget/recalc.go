package budget

import (
	"fmt"

	"github.com/theirongolddev/fliptrack/internal/model"
)

// Utilization thresholds, in percent of budget, inclusive. A category at or
// above the warning threshold carries the over_budget status even before
// true overage; the alert severity tells the two bands apart.
const (
	criticalThresholdPct = 100
	warningThresholdPct  = 90
	onTrackThresholdPct  = 75
)

// Recalculate re-derives every aggregate figure from the immutable inputs:
// each category's budgeted amount and each expense's amount and payment
// status. The alert list is rebuilt from scratch, project-level alerts
// first, so stale alerts never linger across calls.
func Recalculate(t *model.BudgetTracking) {
	t.TotalSpent = 0
	t.TotalCommitted = 0

	var categoryAlerts []model.BudgetAlert

	for _, c := range t.Categories {
		used := c.Spent + c.Committed
		c.Remaining = c.Budgeted - used
		if c.Budgeted > 0 {
			c.PercentUsed = 100 * used / c.Budgeted
		} else {
			c.PercentUsed = 0
		}

		switch {
		case c.PercentUsed >= criticalThresholdPct:
			c.Status = model.StatusOverBudget
			categoryAlerts = append(categoryAlerts, model.BudgetAlert{
				Severity: model.SeverityCritical,
				Category: c.Category,
				Message:  fmt.Sprintf("%s has exceeded budget by %.1f%%", c.Name, c.PercentUsed-100),
			})
		case c.PercentUsed >= warningThresholdPct:
			c.Status = model.StatusOverBudget
			categoryAlerts = append(categoryAlerts, model.BudgetAlert{
				Severity: model.SeverityWarning,
				Category: c.Category,
				Message:  fmt.Sprintf("%s is at %.1f%% of budget", c.Name, c.PercentUsed),
			})
		case c.PercentUsed >= onTrackThresholdPct:
			c.Status = model.StatusOnTrack
		default:
			c.Status = model.StatusUnderBudget
		}

		t.TotalSpent += c.Spent
		t.TotalCommitted += c.Committed
	}

	totalUsed := t.TotalSpent + t.TotalCommitted
	t.TotalRemaining = t.TotalBudget - totalUsed
	if t.TotalBudget > 0 {
		t.PercentUsed = 100 * totalUsed / t.TotalBudget
	} else {
		t.PercentUsed = 0
	}

	var alerts []model.BudgetAlert
	switch {
	case t.PercentUsed >= criticalThresholdPct:
		alerts = append(alerts, model.BudgetAlert{
			Severity: model.SeverityCritical,
			Message:  fmt.Sprintf("TOTAL BUDGET EXCEEDED by %.1f%%", t.PercentUsed-100),
		})
	case t.PercentUsed >= warningThresholdPct:
		alerts = append(alerts, model.BudgetAlert{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Total budget at %.1f%%", t.PercentUsed),
		})
	}

	t.Alerts = append(alerts, categoryAlerts...)
}
