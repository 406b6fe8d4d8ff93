package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation. Accepts whole numbers and decimals.
var numericRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Time-of-day validation. Accepts H:MM:SS and HH:MM:SS.
func IsValidTimeOfDay(timeStr string) bool {
	if _, err := time.Parse("15:04:05", timeStr); err == nil {
		return true
	}
	_, err := time.Parse("3:04:05", timeStr)
	return err == nil
}

// Month key validation for payroll rows ("YYYY-MM").
var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func IsValidMonthKey(s string) bool {
	return monthKeyRegex.MatchString(s)
}

// Identifier validation for emp_id / dept_id / shift_code style keys and
// browsable view or table names. 63 matches the PostgreSQL identifier cap.
var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,63}$`)

func IsValidIdentifier(code string) bool {
	return identifierRegex.MatchString(code)
}
