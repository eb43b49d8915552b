package cmd

import (
	"fmt"

	"github.com/theirongolddev/fliptrack/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	RunE:  runConfigShow,
}

var configSetProjectCmd = &cobra.Command{
	Use:   "set-default-project <project-id>",
	Short: "Set the project used when --project is omitted",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetProject,
}

func init() {
	configCmd.AddCommand(configSetProjectCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Config file:     %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print("  (not written yet, showing defaults)")
	}
	fmt.Println()
	fmt.Printf("  Default project: %s\n", orNone(cfg.General.DefaultProject))
	fmt.Printf("  Data dir:        %s\n", orNone(cfg.General.DataDir))
	fmt.Printf("  Database:        %s\n", config.DataPath(cfg))
	fmt.Printf("  Theme:           %s\n", cfg.Appearance.Theme)
	fmt.Println()
	return nil
}

func runConfigSetProject(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.General.DefaultProject = args[0]
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Default project set to %s\n", args[0])
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
