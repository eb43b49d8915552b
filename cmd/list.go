package cmd

import (
	"fmt"

	"github.com/theirongolddev/fliptrack/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked projects",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	projects, err := s.ListProjects()
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("\n  No projects yet. Start one with `fliptrack init <project-id>`.")
		return nil
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		pct := 0.0
		if p.TotalBudget > 0 {
			pct = 100 * p.TotalUsed / p.TotalBudget
		}
		rows = append(rows, []string{
			p.ProjectID,
			p.ProjectName,
			cli.FormatMoney(p.TotalBudget),
			cli.FormatMoney(p.TotalUsed),
			cli.FormatPercent(pct),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Projects",
		Headers: []string{"ID", "Name", "Budget", "Used", "Pct"},
		Rows:    rows,
	}))

	return nil
}
