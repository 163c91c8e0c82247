package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rental-server/di"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the catalog and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.HTTPAddress = addr
			}
			container, err := di.NewContainer(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Println("[Main] Refreshing catalog")
			if err := container.StartRefresher(ctx); err != nil {
				return err
			}
			defer container.CatalogRefresherService.Stop()

			log.Printf("[Main] Starting server on %s", cfg.HTTPAddress)
			return container.RentalHttpServer.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	return cmd
}
