package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/fliptrack/internal/budget"
	"github.com/theirongolddev/fliptrack/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func loadedApp(t *testing.T) App {
	t.Helper()
	tr := budget.Initialize("p1", "Flip A", map[model.ExpenseCategory]float64{
		model.CategoryElectrical: 1000,
	})
	if err := budget.AddExpense(tr, model.Expense{
		ID:            "e1",
		Category:      model.CategoryElectrical,
		Description:   "panel",
		Amount:        950,
		PaymentStatus: model.PaymentPending,
	}); err != nil {
		t.Fatal(err)
	}

	a := New("unused.db", "p1")
	updated, _ := a.Update(loadedMsg{tracking: tr})
	return updated.(App)
}

func TestUpdate_QuitKey(t *testing.T) {
	a := loadedApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q: want quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %T, want tea.QuitMsg", cmd())
	}
}

func TestView_ShowsCategoriesAndAlerts(t *testing.T) {
	a := loadedApp(t)
	out := a.View()

	for _, want := range []string{"Flip A", "Electrical", "95.0%", "WARNING"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q\n%s", want, out)
		}
	}
}

func TestView_ErrorState(t *testing.T) {
	a := New("unused.db", "p1")
	updated, _ := a.Update(loadErrMsg{err: errTest})
	out := updated.(App).View()

	if !strings.Contains(out, "boom") {
		t.Errorf("view missing error text\n%s", out)
	}
}

var errTest = errOf("boom")

type errOf string

func (e errOf) Error() string { return string(e) }
