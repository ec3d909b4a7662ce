package main

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	userService "github.com/cmlabs-hris/attendance-backend-go/internal/service/user"
	"github.com/spf13/cobra"
)

var (
	superuserEmail    string
	superuserPassword string
	superuserName     string
)

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create a staff superuser account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		svc := userService.NewUserService(postgresql.NewUserRepository(db))
		created, err := svc.CreateSuperuser(cmd.Context(), user.CreateUserRequest{
			Email:    superuserEmail,
			Password: superuserPassword,
			Name:     superuserName,
		})
		if err != nil {
			return fmt.Errorf("create superuser: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Superuser %s created with id %d\n", created.Email, created.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createSuperuserCmd)
	createSuperuserCmd.Flags().StringVar(&superuserEmail, "email", "", "superuser email address")
	createSuperuserCmd.Flags().StringVar(&superuserPassword, "password", "", "superuser password")
	createSuperuserCmd.Flags().StringVar(&superuserName, "name", "", "display name")
	_ = createSuperuserCmd.MarkFlagRequired("email")
	_ = createSuperuserCmd.MarkFlagRequired("password")
}
