package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the Early/Late label of a check-in.
type Status string

const (
	StatusEarly Status = "Early"
	StatusLate  Status = "Late"
)

// EarlyCutoffHour is the first hour of the day that counts as Late.
const EarlyCutoffHour = 8

// ClassifyStatus derives the status from the hour of a check-in time.
func ClassifyStatus(t time.Time) Status {
	if t.Hour() < EarlyCutoffHour {
		return StatusEarly
	}
	return StatusLate
}

// IsValid reports whether s is one of the two known statuses.
func (s Status) IsValid() bool {
	return s == StatusEarly || s == StatusLate
}

type Attendance struct {
	ID        int64
	UserID    int64
	Date      time.Time
	Time      time.Time
	Status    Status
	Latitude  decimal.NullDecimal
	Longitude decimal.NullDecimal
	CreatedAt time.Time
}
