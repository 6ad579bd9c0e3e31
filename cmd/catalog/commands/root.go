package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/models"
)

var (
	// Global flags
	envFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Product Categories - filter a product catalog by owner, name and category",
	Long: `Product Categories shows a fixed catalog of products joined with their
category and the user owning that category.

The same filters are available on every surface:
  - owner: exact, case-sensitive match on the category owner name
  - search: case-insensitive substring match on the product name
  - categories: any of the selected category titles`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load, must exist (defaults to ./.env when present)")
}

// setup loads the configuration and the catalog. A catalog that fails
// validation or the join stops the command before anything is rendered.
func setup() (config.Config, *slog.Logger, *models.CatalogRepository, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	logger := cfg.NewLogger(os.Stderr)

	repo, err := models.NewCatalogRepository(models.SampleCatalog())
	if err != nil {
		logger.Error("Catalog failed to load", slog.String("error", err.Error()))
		return config.Config{}, nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	return cfg, logger, repo, nil
}
