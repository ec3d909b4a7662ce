package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Reads take the owner's userID so one user can never load another user's rows.
type AttendanceRepository interface {
	// Create inserts a new attendance record and returns it with its generated ID
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID returns ErrAttendanceNotFound when the row is missing or owned by someone else
	GetByID(ctx context.Context, id int64, userID int64) (Attendance, error)

	// ListByUser returns every record owned by userID, newest ID first
	ListByUser(ctx context.Context, userID int64) ([]Attendance, error)
}
