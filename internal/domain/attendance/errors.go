package attendance

import "errors"

// Attendance domain errors
var (
	ErrOutsideGeofence    = errors.New("latitude and longitude values are outside the valid range")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
