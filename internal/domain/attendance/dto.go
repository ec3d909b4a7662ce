package attendance

import (
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"

	// NUMERIC(9,6) storage for coordinates
	coordinatePrecision = 9
	coordinateScale     = 6
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CreateAttendanceRequest is the check-in payload. Coordinates are kept raw so
// that both JSON numbers and numeric strings are accepted; status is never read
// from the client.
type CreateAttendanceRequest struct {
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Latitude  json.RawMessage `json:"latitude"`
	Longitude json.RawMessage `json:"longitude"`

	// Filled by Validate
	ParsedDate      time.Time       `json:"-"`
	ParsedTime      time.Time       `json:"-"`
	ParsedLatitude  decimal.Decimal `json:"-"`
	ParsedLongitude decimal.Decimal `json:"-"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if date, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedDate = date
	}

	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	} else if t, valid := validator.IsValidClockTime(r.Time); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM:SS format",
		})
	} else {
		r.ParsedTime = t
	}

	if lat, verr := validateCoordinate("latitude", r.Latitude); verr != nil {
		errs = append(errs, *verr)
	} else {
		r.ParsedLatitude = lat
	}

	if lon, verr := validateCoordinate("longitude", r.Longitude); verr != nil {
		errs = append(errs, *verr)
	} else {
		r.ParsedLongitude = lon
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateCoordinate(field string, raw json.RawMessage) (decimal.Decimal, *validator.ValidationError) {
	value, present, ok := validator.ParseDecimal(raw)
	switch {
	case !present:
		return decimal.Decimal{}, &validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		}
	case !ok:
		return decimal.Decimal{}, &validator.ValidationError{
			Field:   field,
			Message: field + " must be a valid number",
		}
	case !validator.FitsNumeric(value, coordinatePrecision, coordinateScale):
		return decimal.Decimal{}, &validator.ValidationError{
			Field:   field,
			Message: field + " must have no more than 9 digits and 6 decimal places",
		}
	}
	return value, nil
}

// AttendanceResponse is used for list, detail and create responses alike.
type AttendanceResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    Status  `json:"status"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

// NewAttendanceResponse maps a stored record for output. Status is recomputed
// from the stored time rather than copied from the row.
func NewAttendanceResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        att.ID,
		Date:      att.Date.Format(DateLayout),
		Time:      att.Time.Format(TimeLayout),
		Status:    ClassifyStatus(att.Time),
		Latitude:  coordinateString(att.Latitude),
		Longitude: coordinateString(att.Longitude),
	}
}

func coordinateString(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(coordinateScale)
	return &s
}
