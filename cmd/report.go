package cmd

import (
	"fmt"

	"github.com/theirongolddev/fliptrack/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full budget report for a project",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
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
	fmt.Print(report.Generate(tr))
	return nil
}
