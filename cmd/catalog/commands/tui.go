package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mytheresa/product-categories/app/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the catalog interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, repo, err := setup()
		if err != nil {
			return err
		}

		products, _ := repo.GetAllProducts()
		users, _ := repo.GetAllUsers()
		categories, _ := repo.GetAllCategories()

		logger.Debug("Starting terminal UI")
		return tui.Run(tui.NewModel(products, users, categories), tea.WithAltScreen())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
