package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	geofence attendance.Geofence
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, geofence attendance.Geofence) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		geofence:             geofence,
	}
}

// CreateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !a.geofence.Contains(req.ParsedLatitude, req.ParsedLongitude) {
		slog.Info("Check-in rejected outside geofence",
			"user_id", userID,
			"latitude", req.ParsedLatitude.String(),
			"longitude", req.ParsedLongitude.String(),
		)
		return attendance.AttendanceResponse{}, attendance.ErrOutsideGeofence
	}

	newAttendance := attendance.Attendance{
		UserID:    userID,
		Date:      req.ParsedDate,
		Time:      req.ParsedTime,
		Status:    attendance.ClassifyStatus(req.ParsedTime),
		Latitude:  decimal.NewNullDecimal(req.ParsedLatitude),
		Longitude: decimal.NewNullDecimal(req.ParsedLongitude),
	}

	created, err := a.AttendanceRepository.Create(ctx, newAttendance)
	if err != nil {
		// token outlived its owner
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.AttendanceResponse{}, auth.ErrUnauthenticated
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.NewAttendanceResponse(created), nil
}

// ListMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMyAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}
	return responses, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id int64) (attendance.AttendanceResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, id, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(record), nil
}
