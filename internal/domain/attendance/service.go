package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// The caller is always the authenticated user carried by ctx.
type AttendanceService interface {
	// CreateAttendance validates the location, derives the status and stores a check-in
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// ListMyAttendance retrieves the caller's attendance records, newest first
	ListMyAttendance(ctx context.Context) ([]AttendanceResponse, error)

	// GetAttendance retrieves one of the caller's attendance records by ID
	GetAttendance(ctx context.Context, id int64) (AttendanceResponse, error)
}
