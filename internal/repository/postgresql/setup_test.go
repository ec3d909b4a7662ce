package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// every table. Tests are skipped when no database is configured.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	migrator, err := database.NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	migrator.Close()

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(context.Background(), "TRUNCATE TABLE attendances, refresh_tokens, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *database.DB, email string) user.User {
	t.Helper()

	repo := postgresql.NewUserRepository(db)
	created, err := repo.Create(context.Background(), user.User{
		Email:        email,
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	})
	require.NoError(t, err)
	return created
}
