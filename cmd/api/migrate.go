package main

import (
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return migrateUp(cfg.DatabaseURL())
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		migrator, err := database.NewMigrator(cfg.DatabaseURL())
		if err != nil {
			return fmt.Errorf("init migrator failed: %w", err)
		}
		defer migrator.Close()

		if err := migrator.Down(); err != nil {
			return fmt.Errorf("migrate down failed: %w", err)
		}
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		migrator, err := database.NewMigrator(cfg.DatabaseURL())
		if err != nil {
			return fmt.Errorf("init migrator failed: %w", err)
		}
		defer migrator.Close()

		version, dirty, err := migrator.Version()
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
		return nil
	},
}

func migrateUp(dsn string) error {
	migrator, err := database.NewMigrator(dsn)
	if err != nil {
		return fmt.Errorf("init migrator failed: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("migrate up failed: %w", err)
	}
	slog.Info("Migrations applied")
	return nil
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}
