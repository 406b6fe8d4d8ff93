package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access for the attendance ledger.
// The store enforces the (emp_id, work_date) composite key; Create must
// surface ErrAlreadyCheckedIn on a duplicate insert.
type TimeRecordRepository interface {
	// Create inserts a new ledger row.
	Create(ctx context.Context, rec TimeRecord) error

	// GetByEmployeeAndDate returns nil when no row exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, empID string, workDate time.Time) (*TimeRecord, error)

	// SetCheckOut records the clock-out time and the three computed OT
	// fields in one statement. This is the only mutation after Create.
	SetCheckOut(ctx context.Context, empID string, workDate time.Time, clockOut string, beforeOT, afterOT, betweenOT string) error

	// List returns ledger rows ordered by work_date descending.
	List(ctx context.Context, filter ListFilter) ([]TimeRecord, error)

	// Delete removes a row by its natural key.
	Delete(ctx context.Context, empID string, workDate time.Time) error
}
