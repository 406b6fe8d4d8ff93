package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/timerecord"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db}
}

const timeRecordColumns = `emp_id, work_date, shift_code, scheduled_in::text, scheduled_out::text,
	clock_in::text, clock_out::text, job_type, department, bf_ot, af_ot, bt_ot`

func scanTimeRecord(row interface{ Scan(dest ...any) error }) (timerecord.TimeRecord, error) {
	var rec timerecord.TimeRecord
	err := row.Scan(
		&rec.EmpID, &rec.WorkDate, &rec.ShiftCode, &rec.ScheduledIn, &rec.ScheduledOut,
		&rec.ClockIn, &rec.ClockOut, &rec.JobType, &rec.Department,
		&rec.BeforeOT, &rec.AfterOT, &rec.BetweenOT,
	)
	return rec, err
}

// Create implements timerecord.TimeRecordRepository. The composite
// primary key turns a second check-in for the same day into a unique
// violation, which maps to ErrAlreadyCheckedIn.
func (t *timeRecordRepositoryImpl) Create(ctx context.Context, rec timerecord.TimeRecord) error {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_records (
			emp_id, work_date, shift_code, scheduled_in, scheduled_out,
			clock_in, clock_out, job_type, department, bf_ot, af_ot, bt_ot
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := q.Exec(ctx, query,
		rec.EmpID, rec.WorkDate, rec.ShiftCode, rec.ScheduledIn, rec.ScheduledOut,
		rec.ClockIn, rec.ClockOut, rec.JobType, rec.Department,
		rec.BeforeOT, rec.AfterOT, rec.BetweenOT,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fault.Conflict("create time record", rec.EmpID, timerecord.ErrAlreadyCheckedIn)
		}
		return storeError("create time record", rec.EmpID, err)
	}

	return nil
}

// GetByEmployeeAndDate implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, empID string, workDate time.Time) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := fmt.Sprintf(`SELECT %s FROM time_records WHERE emp_id = $1 AND work_date = $2`, timeRecordColumns)

	rows, err := q.Query(ctx, query, empID, workDate)
	if err != nil {
		return nil, storeError("get time record", empID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	rec, err := scanTimeRecord(rows)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// SetCheckOut implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) SetCheckOut(ctx context.Context, empID string, workDate time.Time, clockOut string, beforeOT, afterOT, betweenOT string) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE time_records
		SET clock_out = $1, bf_ot = $2, af_ot = $3, bt_ot = $4
		WHERE emp_id = $5 AND work_date = $6
	`

	tag, err := q.Exec(ctx, query, clockOut, beforeOT, afterOT, betweenOT, empID, workDate)
	if err != nil {
		return storeError("set check-out", empID, err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrRecordNotFound
	}

	return nil
}

// List implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) List(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	args := []any{}
	query := fmt.Sprintf(`SELECT %s FROM time_records`, timeRecordColumns)
	if filter.EmpID != nil {
		query += ` WHERE emp_id = $1`
		args = append(args, *filter.EmpID)
	}
	query += fmt.Sprintf(` ORDER BY work_date DESC, emp_id LIMIT $%d`, len(args)+1)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list time records", "", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) Delete(ctx context.Context, empID string, workDate time.Time) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM time_records WHERE emp_id = $1 AND work_date = $2`, empID, workDate)
	if err != nil {
		return storeError("delete time record", empID, err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrRecordNotFound
	}

	return nil
}
