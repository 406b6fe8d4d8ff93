package timerecord

import (
	"strings"
	"time"
)

// JobType governs which overtime policy branch applies to a record.
type JobType string

const (
	JobTypeWork     JobType = "W"
	JobTypeHoliday  JobType = "H"
	JobTypeLeave    JobType = "L"
	JobTypeTraining JobType = "T"
)

// NormalizeJobType upper-cases a raw job type code. Codes outside the
// known set are kept as given; they classify as zero overtime.
func NormalizeJobType(raw string) JobType {
	return JobType(strings.ToUpper(strings.TrimSpace(raw)))
}

// FullSpanOT reports whether the whole worked span counts as overtime
// (holiday, leave and training days).
func (j JobType) FullSpanOT() bool {
	return j == JobTypeHoliday || j == JobTypeLeave || j == JobTypeTraining
}

// TimeRecord is one attendance ledger row: at most one per
// (employee, work date). Scheduled times are a snapshot of the shift taken
// at check-in; they are not re-read later. OT fields stay unset until
// check-out completes.
type TimeRecord struct {
	EmpID        string
	WorkDate     time.Time
	ShiftCode    *string
	JobType      JobType
	ScheduledIn  *string
	ScheduledOut *string
	ClockIn      *string
	ClockOut     *string
	Department   *string
	BeforeOT     *string
	AfterOT      *string
	BetweenOT    *string
}

// CheckedOut reports whether the record reached its terminal state.
func (r TimeRecord) CheckedOut() bool {
	return r.ClockOut != nil && *r.ClockOut != ""
}
