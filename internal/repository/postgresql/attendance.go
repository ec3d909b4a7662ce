package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const attendanceColumns = `id, user_id, date, time, status, latitude, longitude, created_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// toPgTime converts a wall-clock time to a Postgres TIME value.
func toPgTime(t time.Time) pgtype.Time {
	h, m, s := t.Clock()
	micros := (int64(h)*3600 + int64(m)*60 + int64(s)) * int64(time.Second/time.Microsecond)
	return pgtype.Time{Microseconds: micros, Valid: true}
}

// fromPgTime places a Postgres TIME on the zero date.
func fromPgTime(t pgtype.Time) time.Time {
	return time.Time{}.Add(time.Duration(t.Microseconds) * time.Microsecond)
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var (
		att     attendance.Attendance
		clock   pgtype.Time
		date    time.Time
		created time.Time
	)
	err := row.Scan(
		&att.ID,
		&att.UserID,
		&date,
		&clock,
		&att.Status,
		&att.Latitude,
		&att.Longitude,
		&created,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	att.Date = date
	att.Time = fromPgTime(clock)
	att.CreatedAt = created
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, date, time, status, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.UserID,
		pgtype.Date{Time: newAttendance.Date, Valid: true},
		toPgTime(newAttendance.Time),
		string(newAttendance.Status),
		newAttendance.Latitude,
		newAttendance.Longitude,
	))
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return attendance.Attendance{}, fmt.Errorf("owner %d: %w", newAttendance.UserID, user.ErrUserNotFound)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64, userID int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE id = $1 AND user_id = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, fmt.Errorf("attendance with id %d: %w", id, attendance.ErrAttendanceNotFound)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		ORDER BY id DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}
