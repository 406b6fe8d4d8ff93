package timerecord

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/shift"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/payroll"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/timerecord"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
	monthLayout = "2006-01"

	defaultListLimit = 100
	maxListLimit     = 500
)

// Overtime pay: hourly rate is base_salary over 160 working hours,
// multiplied by 1.5.
var (
	monthlyHours = decimal.NewFromInt(160)
	otMultiplier = decimal.NewFromFloat(1.5)
)

type TimeRecordServiceImpl struct {
	logger *slog.Logger
	timerecord.TimeRecordRepository
	employee.EmployeeRepository
	shift.ShiftRepository
	payroll.PayrollRepository

	now func() time.Time
}

func NewTimeRecordService(
	logger *slog.Logger,
	recordRepo timerecord.TimeRecordRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	payrollRepo payroll.PayrollRepository,
) *TimeRecordServiceImpl {
	return &TimeRecordServiceImpl{
		logger:               logger,
		TimeRecordRepository: recordRepo,
		EmployeeRepository:   employeeRepo,
		ShiftRepository:      shiftRepo,
		PayrollRepository:    payrollRepo,
		now:                  time.Now,
	}
}

func toRecordResponse(rec timerecord.TimeRecord) timerecord.TimeRecordResponse {
	return timerecord.TimeRecordResponse{
		EmpID:        rec.EmpID,
		WorkDate:     rec.WorkDate.Format(dateLayout),
		JobType:      string(rec.JobType),
		ShiftCode:    rec.ShiftCode,
		ScheduledIn:  rec.ScheduledIn,
		ScheduledOut: rec.ScheduledOut,
		ClockIn:      rec.ClockIn,
		ClockOut:     rec.ClockOut,
		Department:   rec.Department,
		BeforeOT:     rec.BeforeOT,
		AfterOT:      rec.AfterOT,
		BetweenOT:    rec.BetweenOT,
	}
}

// CheckIn implements timerecord.TimeRecordService. The shift schedule and
// the employee's department are copied onto the new row; later edits to
// either master record leave existing ledger rows untouched.
func (s *TimeRecordServiceImpl) CheckIn(ctx context.Context, req timerecord.CheckInRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	workDate, err := time.Parse(dateLayout, req.WorkDate)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fault.Parse("check in", req.WorkDate, err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmpID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	sh, err := s.ShiftRepository.GetByCode(ctx, req.ShiftCode)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	existing, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, req.EmpID, workDate)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	if existing != nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrAlreadyCheckedIn
	}

	clockIn := s.now().Format(clockLayout)
	rec := timerecord.TimeRecord{
		EmpID:        req.EmpID,
		WorkDate:     workDate,
		ShiftCode:    &sh.ShiftCode,
		JobType:      timerecord.NormalizeJobType(req.JobType),
		ScheduledIn:  &sh.StartTime,
		ScheduledOut: &sh.EndTime,
		ClockIn:      &clockIn,
		Department:   emp.Department,
	}

	if err := s.TimeRecordRepository.Create(ctx, rec); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	return toRecordResponse(rec), nil
}

// CheckOut implements timerecord.TimeRecordService. Overtime is computed
// here, strictly: a scheduled or punch time that fails to parse aborts
// the check-out instead of writing zeros.
func (s *TimeRecordServiceImpl) CheckOut(ctx context.Context, req timerecord.CheckOutRequest) (timerecord.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.CheckOutResponse{}, err
	}

	workDate, err := time.Parse(dateLayout, req.WorkDate)
	if err != nil {
		return timerecord.CheckOutResponse{}, fault.Parse("check out", req.WorkDate, err)
	}

	rec, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, req.EmpID, workDate)
	if err != nil {
		return timerecord.CheckOutResponse{}, err
	}
	if rec == nil || rec.ClockIn == nil || *rec.ClockIn == "" {
		return timerecord.CheckOutResponse{}, timerecord.ErrNotCheckedIn
	}
	if rec.CheckedOut() {
		return timerecord.CheckOutResponse{}, timerecord.ErrAlreadyCheckedOut
	}

	clockOut := s.now().Format(clockLayout)

	actual, err := timerecord.ResolveWindow(*rec.ClockIn, clockOut)
	if err != nil {
		return timerecord.CheckOutResponse{}, fault.Parse("check out", req.EmpID, err)
	}

	var breakdown timerecord.OTBreakdown
	switch {
	case rec.JobType.FullSpanOT():
		breakdown = timerecord.ClassifyOvertime(rec.JobType, timerecord.Window{}, actual)
	case rec.JobType == timerecord.JobTypeWork && rec.ScheduledIn != nil && rec.ScheduledOut != nil:
		scheduled, err := timerecord.ResolveWindow(*rec.ScheduledIn, *rec.ScheduledOut)
		if err != nil {
			return timerecord.CheckOutResponse{}, fault.Parse("check out", req.EmpID, err)
		}
		breakdown = timerecord.ClassifyOvertime(rec.JobType, scheduled, actual)
	}

	beforeOT := breakdown.Before.StringFixed(2)
	afterOT := breakdown.After.StringFixed(2)
	betweenOT := breakdown.Between.StringFixed(2)

	if err := s.TimeRecordRepository.SetCheckOut(ctx, req.EmpID, workDate, clockOut, beforeOT, afterOT, betweenOT); err != nil {
		return timerecord.CheckOutResponse{}, err
	}

	rec.ClockOut = &clockOut
	rec.BeforeOT = &beforeOT
	rec.AfterOT = &afterOT
	rec.BetweenOT = &betweenOT

	s.rollUpPayroll(ctx, req.EmpID, workDate, breakdown.Total())

	return timerecord.CheckOutResponse{
		Record:       toRecordResponse(*rec),
		BeforeOT:     beforeOT,
		AfterOT:      afterOT,
		BetweenOT:    betweenOT,
		TotalOTHours: breakdown.Total().StringFixed(2),
	}, nil
}

// rollUpPayroll adds the day's overtime pay onto the month's payroll row.
// Best effort: a failure here is logged and never fails the check-out
// that triggered it, so the ledger and the payroll table can drift until
// an admin re-upserts the month.
func (s *TimeRecordServiceImpl) rollUpPayroll(ctx context.Context, empID string, workDate time.Time, otHours decimal.Decimal) {
	if otHours.Sign() <= 0 {
		return
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, empID)
	if err != nil {
		s.logger.Error("payroll roll-up skipped: employee lookup failed",
			"emp_id", empID, "error", err)
		return
	}
	if emp.BaseSalary == nil {
		s.logger.Warn("payroll roll-up skipped: employee has no base salary",
			"emp_id", empID)
		return
	}

	hourlyRate := emp.BaseSalary.Div(monthlyHours).Mul(otMultiplier)
	otPay := otHours.Mul(hourlyRate)
	month := workDate.Format(monthLayout)

	if err := s.PayrollRepository.ApplyOvertime(ctx, empID, month, otHours, otPay); err != nil {
		s.logger.Error("payroll roll-up failed",
			"emp_id", empID, "month", month, "error", err)
	}
}

// CreateRecord implements timerecord.TimeRecordService. Admin backfill:
// the row is written exactly as given, no schedule snapshot, no overtime
// computation.
func (s *TimeRecordServiceImpl) CreateRecord(ctx context.Context, req timerecord.CreateRecordRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	workDate, err := time.Parse(dateLayout, req.WorkDate)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fault.Parse("create record", req.WorkDate, err)
	}

	jobType := timerecord.NormalizeJobType(req.JobType)
	if jobType == "" {
		jobType = timerecord.JobTypeWork
	}

	rec := timerecord.TimeRecord{
		EmpID:        req.EmpID,
		WorkDate:     workDate,
		ShiftCode:    req.ShiftCode,
		JobType:      jobType,
		ScheduledIn:  req.ScheduledIn,
		ScheduledOut: req.ScheduledOut,
		ClockIn:      req.ClockIn,
		ClockOut:     req.ClockOut,
		Department:   req.Department,
		BeforeOT:     req.BeforeOT,
		AfterOT:      req.AfterOT,
		BetweenOT:    req.BetweenOT,
	}

	if err := s.TimeRecordRepository.Create(ctx, rec); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	return toRecordResponse(rec), nil
}

// ListRecords implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ListRecords(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecordResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	records, err := s.TimeRecordRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}
	return responses, nil
}

// DeleteRecord implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) DeleteRecord(ctx context.Context, empID, workDate string) error {
	date, err := time.Parse(dateLayout, workDate)
	if err != nil {
		return fault.Parse("delete record", workDate, err)
	}
	return s.TimeRecordRepository.Delete(ctx, empID, date)
}
