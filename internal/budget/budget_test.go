package budget

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/fliptrack/internal/model"
)

// newFlipTracking builds the two-category fixture used across tests:
// electrical 1000, labor 2000.
func newFlipTracking(t *testing.T) *model.BudgetTracking {
	t.Helper()
	return Initialize("p1", "Flip A", map[model.ExpenseCategory]float64{
		model.CategoryElectrical: 1000,
		model.CategoryLabor:      2000,
	})
}

func testExpense(id string, cat model.ExpenseCategory, amount float64, status model.PaymentStatus) model.Expense {
	return model.Expense{
		ID:            id,
		Category:      cat,
		Description:   "test expense",
		Amount:        amount,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		PaymentStatus: status,
	}
}

// checkConservation asserts spent + committed + remaining == budgeted for
// every category, and that the aggregate totals are the category sums.
func checkConservation(t *testing.T, tr *model.BudgetTracking) {
	t.Helper()

	var sumBudgeted, sumSpent, sumCommitted float64
	for _, c := range tr.Categories {
		if got := c.Spent + c.Committed + c.Remaining; got != c.Budgeted {
			t.Errorf("%s: spent+committed+remaining = %.2f, want budgeted %.2f",
				c.Category, got, c.Budgeted)
		}
		sumBudgeted += c.Budgeted
		sumSpent += c.Spent
		sumCommitted += c.Committed
	}

	if tr.TotalBudget != sumBudgeted {
		t.Errorf("TotalBudget = %.2f, want %.2f", tr.TotalBudget, sumBudgeted)
	}
	if tr.TotalSpent != sumSpent {
		t.Errorf("TotalSpent = %.2f, want %.2f", tr.TotalSpent, sumSpent)
	}
	if tr.TotalCommitted != sumCommitted {
		t.Errorf("TotalCommitted = %.2f, want %.2f", tr.TotalCommitted, sumCommitted)
	}
	if want := tr.TotalBudget - tr.TotalSpent - tr.TotalCommitted; tr.TotalRemaining != want {
		t.Errorf("TotalRemaining = %.2f, want %.2f", tr.TotalRemaining, want)
	}
}

func TestInitialize_Basics(t *testing.T) {
	tr := newFlipTracking(t)

	if tr.TotalBudget != 3000 {
		t.Errorf("TotalBudget = %.2f, want 3000", tr.TotalBudget)
	}
	if len(tr.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(tr.Categories))
	}
	if len(tr.Alerts) != 0 {
		t.Errorf("alerts at init = %d, want 0", len(tr.Alerts))
	}

	// Canonical order: electrical before labor.
	if tr.Categories[0].Category != model.CategoryElectrical {
		t.Errorf("first category = %s, want electrical", tr.Categories[0].Category)
	}
	if tr.Categories[1].Category != model.CategoryLabor {
		t.Errorf("second category = %s, want labor", tr.Categories[1].Category)
	}

	for _, c := range tr.Categories {
		if c.Spent != 0 || c.Committed != 0 || len(c.Expenses) != 0 {
			t.Errorf("%s not zeroed at init: spent=%.2f committed=%.2f expenses=%d",
				c.Category, c.Spent, c.Committed, len(c.Expenses))
		}
		if c.Status != model.StatusUnderBudget {
			t.Errorf("%s status = %s, want under_budget", c.Category, c.Status)
		}
	}
}

func TestInitialize_SkipsNonPositiveAndUnknown(t *testing.T) {
	tr := Initialize("p2", "Flip B", map[model.ExpenseCategory]float64{
		model.CategoryPlumbing:        5000,
		model.CategoryPainting:        0,
		model.CategoryLandscaping:     -100,
		model.ExpenseCategory("roof"): 800, // not a known bucket
	})

	if len(tr.Categories) != 1 {
		t.Fatalf("categories = %d, want 1 (zero/negative/unknown dropped)", len(tr.Categories))
	}
	if tr.Categories[0].Category != model.CategoryPlumbing {
		t.Errorf("category = %s, want plumbing", tr.Categories[0].Category)
	}
	if tr.TotalBudget != 5000 {
		t.Errorf("TotalBudget = %.2f, want 5000", tr.TotalBudget)
	}
	if len(tr.Alerts) != 0 {
		t.Errorf("alerts = %d, want 0 (dropped entries are never flagged)", len(tr.Alerts))
	}
}

func TestAddExpense_PaidOverage(t *testing.T) {
	tr := newFlipTracking(t)

	err := AddExpense(tr, testExpense("e1", model.CategoryElectrical, 1100, model.PaymentPaid))
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	el := tr.Category(model.CategoryElectrical)
	if el.Spent != 1100 {
		t.Errorf("electrical spent = %.2f, want 1100", el.Spent)
	}
	if el.PercentUsed != 110 {
		t.Errorf("electrical percentUsed = %.2f, want 110", el.PercentUsed)
	}
	if el.Status != model.StatusOverBudget {
		t.Errorf("electrical status = %s, want over_budget", el.Status)
	}
	if tr.TotalRemaining != 1900 {
		t.Errorf("TotalRemaining = %.2f, want 1900", tr.TotalRemaining)
	}

	if len(tr.Alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(tr.Alerts))
	}
	a := tr.Alerts[0]
	if a.Severity != model.SeverityCritical {
		t.Errorf("alert severity = %s, want critical", a.Severity)
	}
	if a.Category != model.CategoryElectrical {
		t.Errorf("alert category = %s, want electrical", a.Category)
	}
	if want := "Electrical has exceeded budget by 10.0%"; a.Message != want {
		t.Errorf("alert message = %q, want %q", a.Message, want)
	}

	checkConservation(t, tr)
}

func TestAddExpense_PendingThenPaid(t *testing.T) {
	tr := newFlipTracking(t)

	if err := AddExpense(tr, testExpense("e1", model.CategoryLabor, 1850, model.PaymentPending)); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	lb := tr.Category(model.CategoryLabor)
	if lb.Committed != 1850 {
		t.Errorf("labor committed = %.2f, want 1850", lb.Committed)
	}
	if lb.PercentUsed != 92.5 {
		t.Errorf("labor percentUsed = %.2f, want 92.5", lb.PercentUsed)
	}
	if lb.Status != model.StatusOverBudget {
		t.Errorf("labor status = %s, want over_budget (warning band)", lb.Status)
	}
	if len(tr.Alerts) != 1 || tr.Alerts[0].Severity != model.SeverityWarning {
		t.Fatalf("alerts = %+v, want one warning", tr.Alerts)
	}
	if want := "Labor is at 92.5% of budget"; tr.Alerts[0].Message != want {
		t.Errorf("alert message = %q, want %q", tr.Alerts[0].Message, want)
	}

	// Paying the expense moves the amount but leaves utilization unchanged.
	MarkExpensePaid(tr, "e1")
	if lb.Spent != 1850 || lb.Committed != 0 {
		t.Errorf("after pay: spent=%.2f committed=%.2f, want 1850/0", lb.Spent, lb.Committed)
	}
	if lb.PercentUsed != 92.5 {
		t.Errorf("after pay: percentUsed = %.2f, want 92.5", lb.PercentUsed)
	}
	if lb.Status != model.StatusOverBudget {
		t.Errorf("after pay: status = %s, want over_budget", lb.Status)
	}

	checkConservation(t, tr)
}

func TestAddExpense_UnknownCategory(t *testing.T) {
	tr := newFlipTracking(t)

	err := AddExpense(tr, testExpense("e1", model.CategoryKitchen, 500, model.PaymentPending))
	if err == nil {
		t.Fatal("AddExpense with unknown category: want error, got nil")
	}

	var notFound *CategoryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *CategoryNotFoundError", err)
	}
	if notFound.Category != model.CategoryKitchen {
		t.Errorf("error category = %s, want kitchen", notFound.Category)
	}

	// Tracking must be completely unmodified.
	if tr.ExpenseCount() != 0 {
		t.Errorf("expenses = %d, want 0", tr.ExpenseCount())
	}
	if tr.TotalSpent != 0 || tr.TotalCommitted != 0 {
		t.Errorf("totals mutated: spent=%.2f committed=%.2f", tr.TotalSpent, tr.TotalCommitted)
	}
	if len(tr.Alerts) != 0 {
		t.Errorf("alerts = %d, want 0", len(tr.Alerts))
	}
}

func TestAddExpense_DuplicateIDAppendsBoth(t *testing.T) {
	tr := newFlipTracking(t)

	for i := 0; i < 2; i++ {
		if err := AddExpense(tr, testExpense("dup", model.CategoryElectrical, 100, model.PaymentPaid)); err != nil {
			t.Fatalf("AddExpense #%d: %v", i+1, err)
		}
	}

	el := tr.Category(model.CategoryElectrical)
	if len(el.Expenses) != 2 {
		t.Errorf("ledger entries = %d, want 2 (no dedup by id)", len(el.Expenses))
	}
	if el.Spent != 200 {
		t.Errorf("spent = %.2f, want 200", el.Spent)
	}
	checkConservation(t, tr)
}

func TestMarkExpensePaid_Idempotent(t *testing.T) {
	tr := newFlipTracking(t)
	if err := AddExpense(tr, testExpense("e1", model.CategoryLabor, 500, model.PaymentPending)); err != nil {
		t.Fatal(err)
	}

	MarkExpensePaid(tr, "e1")
	lb := tr.Category(model.CategoryLabor)
	spent, committed := lb.Spent, lb.Committed

	MarkExpensePaid(tr, "e1")
	if lb.Spent != spent || lb.Committed != committed {
		t.Errorf("second pay changed state: spent %.2f->%.2f committed %.2f->%.2f",
			spent, lb.Spent, committed, lb.Committed)
	}

	_, e := FindExpense(tr, "e1")
	if e == nil || e.PaymentStatus != model.PaymentPaid {
		t.Errorf("expense status = %v, want paid", e)
	}
	checkConservation(t, tr)
}

func TestMarkExpensePaid_UnknownIDIsNoOp(t *testing.T) {
	tr := newFlipTracking(t)
	if err := AddExpense(tr, testExpense("e1", model.CategoryLabor, 500, model.PaymentPending)); err != nil {
		t.Fatal(err)
	}

	got := MarkExpensePaid(tr, "nope")
	if got != tr {
		t.Error("MarkExpensePaid did not return the same aggregate")
	}

	lb := tr.Category(model.CategoryLabor)
	if lb.Committed != 500 || lb.Spent != 0 {
		t.Errorf("unknown id mutated state: spent=%.2f committed=%.2f", lb.Spent, lb.Committed)
	}
	checkConservation(t, tr)
}

func TestMarkExpensePaid_FirstMatchWins(t *testing.T) {
	// Same ID in two categories: the one in the earlier canonical category
	// is paid, the other untouched.
	tr := newFlipTracking(t)
	if err := AddExpense(tr, testExpense("shared", model.CategoryElectrical, 100, model.PaymentPending)); err != nil {
		t.Fatal(err)
	}
	if err := AddExpense(tr, testExpense("shared", model.CategoryLabor, 200, model.PaymentPending)); err != nil {
		t.Fatal(err)
	}

	MarkExpensePaid(tr, "shared")

	if got := tr.Category(model.CategoryElectrical).Spent; got != 100 {
		t.Errorf("electrical spent = %.2f, want 100", got)
	}
	if got := tr.Category(model.CategoryLabor).Committed; got != 200 {
		t.Errorf("labor committed = %.2f, want 200 (second match untouched)", got)
	}
	checkConservation(t, tr)
}

func TestLedgerPreservesInsertionOrder(t *testing.T) {
	tr := newFlipTracking(t)
	ids := []string{"a", "b", "c"}
	for _, id := range ids {
		if err := AddExpense(tr, testExpense(id, model.CategoryLabor, 10, model.PaymentPending)); err != nil {
			t.Fatal(err)
		}
	}

	lb := tr.Category(model.CategoryLabor)
	for i, id := range ids {
		if lb.Expenses[i].ID != id {
			t.Errorf("expense[%d].ID = %q, want %q", i, lb.Expenses[i].ID, id)
		}
	}
}
