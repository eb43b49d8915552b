package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/fliptrack/internal/config"
	"github.com/theirongolddev/fliptrack/internal/model"
	"github.com/theirongolddev/fliptrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagProject string
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "fliptrack",
	Short: "Renovation budget tracking CLI",
	Long:  "Track renovation budgets per cost category: expenses, thresholds, alerts, and what-if projections.",
	RunE:  runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "Project ID")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override data directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openStore opens the budget database, honoring --data-dir over the config.
func openStore() (*store.Store, error) {
	cfg, _ := config.Load()
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return store.Open(config.DataPath(cfg))
}

// resolveProject returns the project ID from --project or the configured
// default.
func resolveProject() (string, error) {
	if flagProject != "" {
		return flagProject, nil
	}
	cfg, _ := config.Load()
	if cfg.General.DefaultProject != "" {
		return cfg.General.DefaultProject, nil
	}
	return "", fmt.Errorf("no project selected: pass --project or set default_project in %s", config.ConfigPath())
}

// parseCategoryAmounts parses repeated category=amount pairs into a budget
// map, rejecting unknown categories and unparseable amounts up front.
func parseCategoryAmounts(pairs []string) (map[model.ExpenseCategory]float64, error) {
	result := make(map[model.ExpenseCategory]float64, len(pairs))
	for _, pair := range pairs {
		tag, amountStr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q, want category=amount", pair)
		}

		cat, known := model.ParseCategory(strings.TrimSpace(tag))
		if !known {
			return nil, fmt.Errorf("unknown category %q (see `fliptrack categories`)", tag)
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q for %s", amountStr, cat)
		}

		result[cat] += amount
	}
	return result, nil
}

func progressf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
