package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/fliptrack/internal/budget"
	"github.com/theirongolddev/fliptrack/internal/cli"
	"github.com/theirongolddev/fliptrack/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagAddID       string
	flagAddCategory string
	flagAddAmount   float64
	flagAddDesc     string
	flagAddDate     string
	flagAddVendor   string
	flagAddInvoice  string
	flagAddNotes    string
	flagAddPaid     bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense against a category",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddID, "id", "", "Expense ID (generated when omitted)")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Cost category (required)")
	addCmd.Flags().Float64VarP(&flagAddAmount, "amount", "a", 0, "Expense amount in USD (required)")
	addCmd.Flags().StringVar(&flagAddDesc, "desc", "", "Description (required)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Expense date as 2006-01-02 (defaults to today)")
	addCmd.Flags().StringVar(&flagAddVendor, "vendor", "", "Vendor name")
	addCmd.Flags().StringVar(&flagAddInvoice, "invoice", "", "Invoice number")
	addCmd.Flags().StringVar(&flagAddNotes, "notes", "", "Free-form notes")
	addCmd.Flags().BoolVar(&flagAddPaid, "paid", false, "Record as already paid instead of pending")
	rootCmd.AddCommand(addCmd)
}

// runAdd validates input before handing it to the engine: the engine trusts
// amount and description, so the CLI is where bad input must stop.
func runAdd(_ *cobra.Command, _ []string) error {
	projectID, err := resolveProject()
	if err != nil {
		return err
	}

	cat, ok := model.ParseCategory(flagAddCategory)
	if flagAddCategory == "" || !ok {
		return fmt.Errorf("unknown category %q (see `fliptrack categories`)", flagAddCategory)
	}
	if flagAddAmount <= 0 {
		return errors.New("--amount must be positive")
	}
	if strings.TrimSpace(flagAddDesc) == "" {
		return errors.New("--desc is required")
	}

	date := time.Now()
	if flagAddDate != "" {
		date, err = time.Parse("2006-01-02", flagAddDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q, want 2006-01-02", flagAddDate)
		}
	}

	id := flagAddID
	if id == "" {
		id = uuid.NewString()
	}

	status := model.PaymentPending
	if flagAddPaid {
		status = model.PaymentPaid
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

	expense := model.Expense{
		ID:            id,
		Category:      cat,
		Description:   strings.TrimSpace(flagAddDesc),
		Amount:        flagAddAmount,
		Date:          date,
		Vendor:        flagAddVendor,
		InvoiceNumber: flagAddInvoice,
		PaymentStatus: status,
		Notes:         flagAddNotes,
	}

	if err := budget.AddExpense(tr, expense); err != nil {
		var notFound *budget.CategoryNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%s has no budget in project %s; budgeted categories are fixed at init", notFound.Category, projectID)
		}
		return err
	}

	if err := s.SaveTracking(tr); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	c := tr.Category(cat)
	fmt.Println()
	fmt.Printf("  Recorded %s against %s (%s)\n", cli.FormatMoney(expense.Amount), c.Name, id)
	fmt.Printf("  %s now at %s of %s (%s used)\n",
		c.Name, cli.FormatMoney(c.Spent+c.Committed), cli.FormatMoney(c.Budgeted),
		cli.FormatPercent(c.PercentUsed))
	printAlerts(tr)
	fmt.Println()

	return nil
}

// printAlerts writes any active alerts after a mutation.
func printAlerts(tr *model.BudgetTracking) {
	for _, a := range tr.Alerts {
		fmt.Printf("  [%s] %s\n", strings.ToUpper(string(a.Severity)), a.Message)
	}
}
