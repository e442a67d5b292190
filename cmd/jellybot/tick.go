package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/JellyBot_Go/internal/bootstrap"
)

func newTickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Run one market tick and print the summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logFile, err := loadConfig()
			if err != nil {
				return err
			}
			defer closeLog(logFile)

			app, err := bootstrap.Initialize(cmd.Context(), cfg, bootstrap.Options{SeedMarket: true})
			if err != nil {
				return err
			}
			defer app.Close()

			summary, err := app.Tick(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "items=%d seeded=%d stocks=%d\n",
				summary.ItemsUpdated, summary.ItemsSeeded, summary.StocksUpdated)
			return err
		},
	}
}
