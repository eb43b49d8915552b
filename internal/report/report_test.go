package report

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/fliptrack/internal/budget"
	"github.com/theirongolddev/fliptrack/internal/model"
)

func buildTracking(t *testing.T) *model.BudgetTracking {
	t.Helper()
	tr := budget.Initialize("p1", "Flip A", map[model.ExpenseCategory]float64{
		model.CategoryElectrical: 1000,
		model.CategoryLabor:      2000,
	})
	err := budget.AddExpense(tr, model.Expense{
		ID:            "e1",
		Category:      model.CategoryElectrical,
		Description:   "panel upgrade",
		Amount:        1100,
		Date:          time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Vendor:        "Volt Bros",
		PaymentStatus: model.PaymentPaid,
	})
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestGenerate_Summary(t *testing.T) {
	out := Generate(buildTracking(t))

	for _, want := range []string{
		"BUDGET REPORT: Flip A (p1)",
		"Total Budget:   $3,000.00",
		"Spent:          $1,100.00",
		"Remaining:      $1,900.00",
		"Budget Used:    36.7%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestGenerate_AlertsAndExpenses(t *testing.T) {
	out := Generate(buildTracking(t))

	if !strings.Contains(out, "[CRITICAL] Electrical has exceeded budget by 10.0%") {
		t.Errorf("report missing critical alert\n%s", out)
	}
	if !strings.Contains(out, "2026-02-01  $1,100.00  panel upgrade  [paid]  Volt Bros") {
		t.Errorf("report missing expense line\n%s", out)
	}
}

func TestGenerate_NoAlertsSentinel(t *testing.T) {
	tr := budget.Initialize("p2", "Quiet", map[model.ExpenseCategory]float64{
		model.CategoryPainting: 500,
	})

	out := Generate(tr)
	if !strings.Contains(out, "No active alerts") {
		t.Errorf("report missing no-alerts sentinel\n%s", out)
	}
}

func TestGenerate_ExpensesInInsertionOrder(t *testing.T) {
	tr := budget.Initialize("p3", "Order", map[model.ExpenseCategory]float64{
		model.CategoryLabor: 10000,
	})
	for _, desc := range []string{"framing", "drywall", "trim"} {
		err := budget.AddExpense(tr, model.Expense{
			ID:            desc,
			Category:      model.CategoryLabor,
			Description:   desc,
			Amount:        100,
			PaymentStatus: model.PaymentPending,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	out := Generate(tr)
	first := strings.Index(out, "framing")
	second := strings.Index(out, "drywall")
	third := strings.Index(out, "trim")
	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("expense lines missing\n%s", out)
	}
	if !(first < second && second < third) {
		t.Errorf("expenses out of order: framing=%d drywall=%d trim=%d", first, second, third)
	}
}
