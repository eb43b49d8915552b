package budget

import (
	"fmt"

	"github.com/theirongolddev/fliptrack/internal/model"
)

// CategoryNotFoundError is returned by AddExpense when the expense names a
// category that was not part of the budget at initialization.
type CategoryNotFoundError struct {
	Category model.ExpenseCategory
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %q is not part of the project budget", e.Category)
}

// AddExpense appends an expense to its category's ledger and recalculates
// the aggregate. On an unknown category it returns *CategoryNotFoundError
// and leaves the tracking untouched. Amount validation is the caller's
// responsibility; duplicate expense IDs are not detected and simply produce
// two ledger entries.
func AddExpense(t *model.BudgetTracking, e model.Expense) error {
	c := t.Category(e.Category)
	if c == nil {
		return &CategoryNotFoundError{Category: e.Category}
	}

	c.Expenses = append(c.Expenses, e)
	if e.Paid() {
		c.Spent += e.Amount
	} else {
		c.Committed += e.Amount
	}

	Recalculate(t)
	return nil
}

// MarkExpensePaid moves the first expense matching expenseID (category order,
// then insertion order) from committed to spent. Already-paid expenses and
// unknown IDs are no-ops. The aggregate is recalculated in every case and
// returned for chaining.
func MarkExpensePaid(t *model.BudgetTracking, expenseID string) *model.BudgetTracking {
	c, e := FindExpense(t, expenseID)
	if e != nil && !e.Paid() {
		c.Committed -= e.Amount
		c.Spent += e.Amount
		e.PaymentStatus = model.PaymentPaid
	}

	Recalculate(t)
	return t
}

// FindExpense locates an expense by ID, scanning categories in canonical
// order and each ledger in insertion order. Returns nils when absent.
func FindExpense(t *model.BudgetTracking, expenseID string) (*model.BudgetCategory, *model.Expense) {
	for _, c := range t.Categories {
		for i := range c.Expenses {
			if c.Expenses[i].ID == expenseID {
				return c, &c.Expenses[i]
			}
		}
	}
	return nil, nil
}
