package model

// BudgetStatus classifies a category's (or the whole project's) utilization.
// OverBudget covers both true overage (>100%) and the 90-100% warning band;
// the alert severity distinguishes the two.
type BudgetStatus string

const (
	StatusUnderBudget BudgetStatus = "under_budget"
	StatusOnTrack     BudgetStatus = "on_track"
	StatusOverBudget  BudgetStatus = "over_budget"
)

// AlertSeverity grades a budget alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// BudgetAlert is a transient diagnostic regenerated from scratch on every
// recalculation. Category is empty for project-level alerts.
type BudgetAlert struct {
	Severity AlertSeverity
	Category ExpenseCategory
	Message  string
}

// BudgetCategory is one cost bucket with its fixed allocation and its
// append-only expense ledger. Spent, Committed, Remaining, PercentUsed, and
// Status are derived; only the engine writes them.
type BudgetCategory struct {
	Category ExpenseCategory
	Name     string
	Budgeted float64

	Spent       float64
	Committed   float64
	Remaining   float64
	PercentUsed float64
	Status      BudgetStatus

	Expenses []Expense
}

// BudgetTracking is the aggregate root for one project's budget. Categories
// are fixed at initialization and kept in canonical category order so that
// iteration, alert ordering, and expense lookup are deterministic.
type BudgetTracking struct {
	ProjectID   string
	ProjectName string
	TotalBudget float64

	TotalSpent     float64
	TotalCommitted float64
	TotalRemaining float64
	PercentUsed    float64

	Categories []*BudgetCategory
	Alerts     []BudgetAlert
}

// Category returns the budget category with the given tag, or nil if the
// project was initialized without it.
func (t *BudgetTracking) Category(tag ExpenseCategory) *BudgetCategory {
	for _, c := range t.Categories {
		if c.Category == tag {
			return c
		}
	}
	return nil
}

// ExpenseCount returns the total number of recorded expenses across all
// categories.
func (t *BudgetTracking) ExpenseCount() int {
	n := 0
	for _, c := range t.Categories {
		n += len(c.Expenses)
	}
	return n
}

// Projection is the result of a what-if computation over hypothetical future
// expenses. It is detached from the live aggregate; producing one never
// mutates tracking state.
type Projection struct {
	CurrentRemaining   float64
	ProjectedRemaining float64
	WillExceedBudget   bool
	Recommendations    []string
}
