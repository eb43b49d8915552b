package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fliptrack/internal/cli"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Styled budget overview with utilization bars",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	projectID, err := resolveProject()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	tr, err := s.LoadTracking(projectID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s", tr.ProjectName)))
	fmt.Println()

	rows := [][]string{
		{"Total Budget", cli.FormatMoney(tr.TotalBudget)},
		{"Spent", cli.FormatMoney(tr.TotalSpent)},
		{"Committed", cli.FormatMoney(tr.TotalCommitted)},
		{"Remaining", cli.FormatMoney(tr.TotalRemaining)},
		{"Used", cli.FormatPercent(tr.PercentUsed)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	for _, c := range tr.Categories {
		bar := cli.RenderUtilizationBar(c.PercentUsed, c.Status, 24)
		fmt.Printf("  %-18s %s  %7s of %s\n",
			c.Name, bar, cli.FormatPercent(c.PercentUsed), cli.FormatMoney(c.Budgeted))
	}

	if len(tr.Alerts) > 0 {
		fmt.Println()
		for _, a := range tr.Alerts {
			style := lipgloss.NewStyle().Foreground(cli.SeverityColor(a.Severity))
			fmt.Printf("  %s\n", style.Render(fmt.Sprintf("[%s] %s", strings.ToUpper(string(a.Severity)), a.Message)))
		}
	}
	fmt.Println()

	return nil
}
