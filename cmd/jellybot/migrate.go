package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/JellyBot_Go/internal/bootstrap"
	"github.com/osse101/JellyBot_Go/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{database.DirectionUp, database.DirectionDown, database.DirectionStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.DirectionUp
			if len(args) == 1 {
				direction = args[0]
			}

			cfg, logFile, err := loadConfig()
			if err != nil {
				return err
			}
			defer closeLog(logFile)

			pool, err := bootstrap.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			return database.Migrate(cmd.Context(), pool, direction)
		},
	}
}
