package shift

import (
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

// Shift is a scheduled work window. Start and end are times-of-day in
// HH:MM:SS form; an end at or before the start means the shift runs past
// midnight.
type Shift struct {
	ShiftCode     string
	ShiftName     *string
	StartTime     string
	EndTime       string
	StandardHours *float64
}

type CreateShiftRequest struct {
	ShiftCode     string   `json:"shift_code"`
	ShiftName     *string  `json:"shift_name"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	StandardHours *float64 `json:"standard_hours"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftCode) {
		errs = append(errs, validator.ValidationError{Field: "shift_code", Message: "shift_code is required"})
	} else if !validator.IsValidIdentifier(r.ShiftCode) {
		errs = append(errs, validator.ValidationError{Field: "shift_code", Message: "shift_code contains invalid characters"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM:SS format"})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM:SS format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ShiftCode     string   `json:"-"`
	ShiftName     *string  `json:"shift_name"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`
	StandardHours *float64 `json:"standard_hours"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftCode) {
		errs = append(errs, validator.ValidationError{Field: "shift_code", Message: "shift_code is required"})
	}
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM:SS format"})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM:SS format"})
	}
	if r.ShiftName == nil && r.StartTime == nil && r.EndTime == nil && r.StandardHours == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ShiftCode     string   `json:"shift_code"`
	ShiftName     *string  `json:"shift_name"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	StandardHours *float64 `json:"standard_hours"`
}
