package timerecord

import (
	"context"
)

// TimeRecordService defines business logic for the time clock.
type TimeRecordService interface {
	// CheckIn creates the ledger row for (employee, date), snapshotting the
	// shift schedule and the employee's department.
	CheckIn(ctx context.Context, req CheckInRequest) (TimeRecordResponse, error)

	// CheckOut closes an open row and computes the overtime fields. This is
	// the record's terminal state transition.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// CreateRecord inserts a complete row directly (admin backfill).
	CreateRecord(ctx context.Context, req CreateRecordRequest) (TimeRecordResponse, error)

	// ListRecords returns ledger rows, newest first.
	ListRecords(ctx context.Context, filter ListFilter) ([]TimeRecordResponse, error)

	// DeleteRecord removes a row by (emp_id, work_date).
	DeleteRecord(ctx context.Context, empID, workDate string) error
}
