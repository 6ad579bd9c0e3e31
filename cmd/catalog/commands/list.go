package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mytheresa/product-categories/app/tui"
	"github.com/mytheresa/product-categories/models"
)

var (
	listUser       string
	listQuery      string
	listCategories []string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered catalog once",
	Example: `  catalog list --user Roma --query e
  catalog list --category Grocery --category Drinks --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, repo, err := setup()
		if err != nil {
			return err
		}

		state := listState(listUser, listQuery, listCategories)

		visible, err := repo.GetFilteredProducts(state.Filters())
		if err != nil {
			return err
		}
		return printProducts(cmd.OutOrStdout(), visible, listJSON)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listUser, "user", "u", "", "Only products whose category owner has this exact name")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only products whose name contains this text (case-insensitive)")
	listCmd.Flags().StringArrayVarP(&listCategories, "category", "c", nil, "Only products in this category (repeatable)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}

// listState builds the view state from flags. Empty and repeated category
// titles are skipped, as they are for the page query.
func listState(user, query string, categories []string) models.ViewState {
	state := models.ViewState{Owner: user, Search: query}
	for _, title := range categories {
		if title == "" || state.IsCategorySelected(title) {
			continue
		}
		state = state.ToggleCategory(title)
	}
	return state
}

func printProducts(w io.Writer, products []models.EnrichedProduct, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if products == nil {
			products = []models.EnrichedProduct{}
		}
		return enc.Encode(products)
	}

	_, err := fmt.Fprintln(w, tui.RenderTable(products))
	return err
}
