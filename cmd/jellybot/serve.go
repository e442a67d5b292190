package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/JellyBot_Go/internal/bootstrap"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the market scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logFile, err := loadConfig()
			if err != nil {
				return err
			}
			defer closeLog(logFile)

			app, err := bootstrap.Initialize(cmd.Context(), cfg, bootstrap.Options{
				Migrate:    migrate,
				SeedMarket: true,
			})
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Serve(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before serving")
	return cmd
}
