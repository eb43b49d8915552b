package cmd

import (
	"fmt"

	"github.com/theirongolddev/fliptrack/internal/model"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available cost categories",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println()
		for _, tag := range model.AllCategories {
			fmt.Printf("  %-18s %s\n", tag, tag.DisplayName())
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
