package timerecord

import "errors"

// Time record domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("a time record already exists for this employee and date")
	ErrNotCheckedIn      = errors.New("no check-in found for this employee and date")
	ErrAlreadyCheckedOut = errors.New("this time record has already been checked out")

	// General errors
	ErrRecordNotFound  = errors.New("time record not found")
	ErrInvalidTimeData = errors.New("invalid time data")
)
