package user

import (
	"strings"
	"time"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lowercases an email so lookups and the unique
// constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
