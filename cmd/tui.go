package cmd

import (
	"github.com/theirongolddev/fliptrack/internal/config"
	"github.com/theirongolddev/fliptrack/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive budget dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	projectID, err := resolveProject()
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	return tui.Run(config.DataPath(cfg), projectID)
}
