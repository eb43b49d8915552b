// Package report renders a budget tracking aggregate to plain text.
package report

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fliptrack/internal/cli"
	"github.com/theirongolddev/fliptrack/internal/model"
)

// Generate renders the current state of the aggregate: global summary,
// alerts, then per-category breakdown with each ledger in insertion order.
// Pure formatting; every figure comes from the last recalculation.
func Generate(t *model.BudgetTracking) string {
	var b strings.Builder

	header := fmt.Sprintf("BUDGET REPORT: %s (%s)", t.ProjectName, t.ProjectID)
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(header)))
	b.WriteString("\n\n")

	writeSummary(&b, t)
	writeAlerts(&b, t.Alerts)
	writeCategories(&b, t.Categories)

	return b.String()
}

func writeSummary(b *strings.Builder, t *model.BudgetTracking) {
	fmt.Fprintf(b, "  Total Budget:   %s\n", cli.FormatMoney(t.TotalBudget))
	fmt.Fprintf(b, "  Spent:          %s\n", cli.FormatMoney(t.TotalSpent))
	fmt.Fprintf(b, "  Committed:      %s\n", cli.FormatMoney(t.TotalCommitted))
	fmt.Fprintf(b, "  Remaining:      %s\n", cli.FormatMoney(t.TotalRemaining))
	fmt.Fprintf(b, "  Budget Used:    %s\n\n", cli.FormatPercent(t.PercentUsed))
}

func writeAlerts(b *strings.Builder, alerts []model.BudgetAlert) {
	b.WriteString("ALERTS\n")
	if len(alerts) == 0 {
		b.WriteString("  No active alerts\n\n")
		return
	}
	for _, a := range alerts {
		fmt.Fprintf(b, "  [%s] %s\n", strings.ToUpper(string(a.Severity)), a.Message)
	}
	b.WriteString("\n")
}

func writeCategories(b *strings.Builder, categories []*model.BudgetCategory) {
	b.WriteString("CATEGORY BREAKDOWN\n")
	for _, c := range categories {
		fmt.Fprintf(b, "\n  %s (%s)\n", c.Name, c.Status)
		fmt.Fprintf(b, "    Budgeted:  %s\n", cli.FormatMoney(c.Budgeted))
		fmt.Fprintf(b, "    Spent:     %s\n", cli.FormatMoney(c.Spent))
		fmt.Fprintf(b, "    Committed: %s\n", cli.FormatMoney(c.Committed))
		fmt.Fprintf(b, "    Remaining: %s  (%s used)\n",
			cli.FormatMoney(c.Remaining), cli.FormatPercent(c.PercentUsed))

		if len(c.Expenses) == 0 {
			continue
		}
		b.WriteString("    Expenses:\n")
		for _, e := range c.Expenses {
			line := fmt.Sprintf("      %s  %s  %s  [%s]",
				cli.FormatDate(e.Date), cli.FormatMoney(e.Amount), e.Description, e.PaymentStatus)
			if e.Vendor != "" {
				line += "  " + e.Vendor
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
}
