package report

import "errors"

var (
	ErrUnknownPeriod  = errors.New("unknown report period")
	ErrViewNotFound   = errors.New("report view not found")
	ErrTableNotFound  = errors.New("table not found")
	ErrInvalidYear    = errors.New("invalid year filter")
	ErrInvalidMonth   = errors.New("invalid month filter")
	ErrNoReportSource = errors.New("report source not configured")
)
