package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"journal_backend/internal/config"
	"journal_backend/internal/logger"
	"journal_backend/internal/models"
	"journal_backend/internal/storage"
)

func newMigrateCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations to POSTGRES_DSN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cfg.PostgresDSN == "" {
				return fmt.Errorf("%w: missing required environment variables: POSTGRES_DSN", models.ErrConfiguration)
			}

			log := logger.New(serviceName, cfg.LogLevel, cfg.LogFormat)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			applied, err := storage.Migrate(ctx, cfg.PostgresDSN)
			if err != nil {
				log.Error().Err(err).Msg("migration failed")
				return err
			}

			if len(applied) == 0 {
				log.Info().Msg("schema is up to date")
				return nil
			}
			log.Info().Ints64("versions", applied).Msg("migrations applied")
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall migration timeout")
	return cmd
}
