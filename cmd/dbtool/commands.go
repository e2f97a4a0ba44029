package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/database"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/logging"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Database maintenance for the daily tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd(), newPurgeLogsCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB, _ *config.Config) error {
				if err := database.Migrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				slog.Info("migration complete")
				return nil
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	var sub string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a test user with one completed day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB, cfg *config.Config) error {
				if err := database.Migrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				return seed(cmd.Context(), db, cfg.Location(), sub)
			})
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "123456", "subject of the seeded user")
	return cmd
}

func newPurgeLogsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "purge-logs",
		Short: "Delete system logs older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB, cfg *config.Config) error {
				if days <= 0 {
					days = cfg.LogRetentionDays
				}
				_, err := logging.PurgeOlderThan(db, time.Now().AddDate(0, 0, -days))
				return err
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "retention in days (defaults to LOG_RETENTION_DAYS)")
	return cmd
}

func withDB(fn func(db *gorm.DB, cfg *config.Config) error) error {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("database close error", "error", err)
		}
	}()
	return fn(db, cfg)
}

