package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"rental-server/config"
)

var (
	envFlag     string
	catalogFlag string
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rental-server",
	Short: "Property rental listing server",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if envFlag != "" {
			loaded.Env = envFlag
		}
		if catalogFlag != "" {
			loaded.CatalogPath = catalogFlag
			loaded.CatalogURL = ""
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(mapCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("[Main] %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "Environment (prod or dev), overrides APP_ENV")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog JSON file, overrides CATALOG_PATH and CATALOG_URL")
}
