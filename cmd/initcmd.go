package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/fliptrack/internal/budget"
	"github.com/theirongolddev/fliptrack/internal/cli"
	"github.com/theirongolddev/fliptrack/internal/model"
	"github.com/theirongolddev/fliptrack/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagInitName        string
	flagInitBudgets     []string
	flagInitInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init <project-id>",
	Short: "Create a budget for a new project",
	Long: `Create a budget for a new project with per-category allocations.

Categories are fixed at creation: expenses can only be recorded against
buckets budgeted here. Zero and negative allocations are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&flagInitName, "name", "", "Project display name (defaults to the ID)")
	initCmd.Flags().StringArrayVarP(&flagInitBudgets, "budget", "b", nil, "Category allocation as category=amount (repeatable)")
	initCmd.Flags().BoolVarP(&flagInitInteractive, "interactive", "i", false, "Pick categories and amounts interactively")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	projectID := args[0]
	name := flagInitName
	if name == "" {
		name = projectID
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.LoadTracking(projectID); err == nil {
		return fmt.Errorf("project %q already has a budget; categories are fixed at initialization", projectID)
	} else if !errors.Is(err, store.ErrProjectNotFound) {
		return err
	}

	var budgets map[model.ExpenseCategory]float64
	if flagInitInteractive {
		budgets, err = promptBudgets()
	} else {
		budgets, err = parseCategoryAmounts(flagInitBudgets)
	}
	if err != nil {
		return err
	}
	if len(budgets) == 0 {
		return errors.New("no allocations given: use --budget category=amount or --interactive")
	}

	tr := budget.Initialize(projectID, name, budgets)

	// The engine drops non-positive allocations silently; surface them here
	// so a typo doesn't go unnoticed.
	for tag, amount := range budgets {
		if amount <= 0 {
			progressf("  Skipped %s: allocation must be positive (got %s)\n", tag, cli.FormatMoney(amount))
		}
	}
	if len(tr.Categories) == 0 {
		return errors.New("all allocations were zero or negative; nothing to track")
	}

	if err := s.SaveTracking(tr); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Created budget for %s: %s across %d categories\n",
		name, cli.FormatMoney(tr.TotalBudget), len(tr.Categories))
	for _, c := range tr.Categories {
		fmt.Printf("    %-18s %s\n", c.Name, cli.FormatMoney(c.Budgeted))
	}
	fmt.Println()

	return nil
}

// promptBudgets walks the user through category selection and amounts with a
// huh form.
func promptBudgets() (map[model.ExpenseCategory]float64, error) {
	options := make([]huh.Option[string], 0, len(model.AllCategories))
	for _, tag := range model.AllCategories {
		options = append(options, huh.NewOption(tag.DisplayName(), string(tag)))
	}

	var selected []string
	pick := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Which categories does this project budget for?").
			Options(options...).
			Value(&selected),
	))
	if err := pick.Run(); err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, errors.New("no categories selected")
	}

	amounts := make(map[string]*string, len(selected))
	fields := make([]huh.Field, 0, len(selected))
	for _, tag := range selected {
		val := new(string)
		amounts[tag] = val
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Budget for %s", model.ExpenseCategory(tag).DisplayName())).
			Placeholder("5000").
			Validate(validateAmount).
			Value(val))
	}

	enter := huh.NewForm(huh.NewGroup(fields...))
	if err := enter.Run(); err != nil {
		return nil, err
	}

	budgets := make(map[model.ExpenseCategory]float64, len(selected))
	for tag, val := range amounts {
		amount, err := strconv.ParseFloat(strings.TrimSpace(*val), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q for %s", *val, tag)
		}
		budgets[model.ExpenseCategory(tag)] = amount
	}
	return budgets, nil
}

func validateAmount(s string) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if amount <= 0 {
		return errors.New("must be positive")
	}
	return nil
}
