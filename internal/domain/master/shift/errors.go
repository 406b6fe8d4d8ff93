package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrShiftExists   = errors.New("shift with this code already exists")
)
