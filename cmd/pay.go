package cmd

import (
	"fmt"

	"github.com/theirongolddev/fliptrack/internal/budget"
	"github.com/theirongolddev/fliptrack/internal/cli"
	"github.com/theirongolddev/fliptrack/internal/model"

	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay <expense-id>",
	Short: "Mark a recorded expense as paid",
	Args:  cobra.ExactArgs(1),
	RunE:  runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)
}

func runPay(_ *cobra.Command, args []string) error {
	expenseID := args[0]

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

	// The engine treats an unknown ID as a silent no-op; check up front so
	// the user learns about a typo.
	c, e := budget.FindExpense(tr, expenseID)
	if e == nil {
		return fmt.Errorf("no expense %q in project %s", expenseID, projectID)
	}
	alreadyPaid := e.PaymentStatus == model.PaymentPaid

	budget.MarkExpensePaid(tr, expenseID)

	if err := s.SaveTracking(tr); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	fmt.Println()
	if alreadyPaid {
		fmt.Printf("  %s was already paid; nothing to do\n", expenseID)
	} else {
		fmt.Printf("  Paid %s (%s): %s spent, %s committed in %s\n",
			e.Description, cli.FormatMoney(e.Amount),
			cli.FormatMoney(c.Spent), cli.FormatMoney(c.Committed), c.Name)
	}
	printAlerts(tr)
	fmt.Println()

	return nil
}
