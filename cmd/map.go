package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rental-server/models"
	"rental-server/util"
)

func mapCmd() *cobra.Command {
	var flags searchFlags
	var out string

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render the filtered listings as an HTML map",
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, _, err := flags.run(cmd.Context())
			if err != nil {
				return err
			}

			file, err := os.Create(out)
			if err != nil {
				return err
			}
			defer file.Close()

			err = util.RenderListingsMap(file, listings, util.MapOptions{
				Title:    cfg.Region.Name,
				Center:   models.Coordinates(cfg.Region.MapCenter),
				Currency: cfg.Region.Currency,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %d listings to %s\n", len(listings), out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "listings_map.html", "Output HTML file")
	return cmd
}
