package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/fliptrack/internal/budget"
	"github.com/theirongolddev/fliptrack/internal/cli"

	"github.com/spf13/cobra"
)

var flagForecastAdd []string

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project whether planned expenses would exceed the budget",
	Long: `Answer a what-if question: given additional planned expenses on top of
everything already spent and committed, would the total budget be exceeded?
The stored budget is never modified.`,
	RunE: runForecast,
}

func init() {
	forecastCmd.Flags().StringArrayVar(&flagForecastAdd, "add", nil, "Planned expense as category=amount (repeatable)")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	if len(flagForecastAdd) == 0 {
		return errors.New("nothing to project: pass --add category=amount at least once")
	}

	additional, err := parseCategoryAmounts(flagForecastAdd)
	if err != nil {
		return err
	}

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

	p := budget.Project(tr, additional)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %s", tr.ProjectName)))
	fmt.Println()

	rows := [][]string{
		{"Current Remaining", cli.FormatMoney(p.CurrentRemaining)},
		{"Projected Remaining", cli.FormatMoney(p.ProjectedRemaining)},
	}
	verdict := "within budget"
	if p.WillExceedBudget {
		verdict = "EXCEEDS BUDGET"
	}
	rows = append(rows, []string{"Verdict", verdict})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, r := range p.Recommendations {
		fmt.Printf("  - %s\n", r)
	}
	fmt.Println()

	return nil
}
