package report

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforce-analytics/workforce-backend-go/internal/config"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/report"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

type fakeReportRepo struct {
	otRows       []report.OTRow
	payrollRows  []report.PayrollRow
	burnoutRows  []report.BurnoutRow
	distinctEmps int
}

func (f *fakeReportRepo) FetchOTRows(ctx context.Context, filter report.OTFilter) ([]report.OTRow, error) {
	return f.otRows, nil
}

func (f *fakeReportRepo) FetchPayrollRows(ctx context.Context, view string) ([]report.PayrollRow, error) {
	return f.payrollRows, nil
}

func (f *fakeReportRepo) FetchBurnoutRows(ctx context.Context, view, hoursColumn, dateColumn string, filter report.BurnoutFilter) ([]report.BurnoutRow, error) {
	return f.burnoutRows, nil
}

func (f *fakeReportRepo) CountDistinctEmployees(ctx context.Context, filter report.BurnoutFilter) (int, error) {
	return f.distinctEmps, nil
}

type fakeInspector struct {
	views  []string
	tables []string
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (f *fakeInspector) HasView(ctx context.Context, name string) (bool, error) {
	return contains(f.views, name), nil
}

func (f *fakeInspector) HasTable(ctx context.Context, name string) (bool, error) {
	return contains(f.tables, name), nil
}

func (f *fakeInspector) ListViews(ctx context.Context) ([]string, error)  { return f.views, nil }
func (f *fakeInspector) ListTables(ctx context.Context) ([]string, error) { return f.tables, nil }

type fakeBrowser struct {
	columns []string
	rows    []map[string]any
}

func (f *fakeBrowser) FetchRows(ctx context.Context, name string, limit int) ([]string, []map[string]any, error) {
	if limit < len(f.rows) {
		return f.columns, f.rows[:limit], nil
	}
	return f.columns, f.rows, nil
}

type stubEmployeeRepo struct {
	total int64
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) error { return nil }
func (s *stubEmployeeRepo) GetByID(ctx context.Context, empID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (s *stubEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}
func (s *stubEmployeeRepo) Delete(ctx context.Context, empID string) error { return nil }
func (s *stubEmployeeRepo) Count(ctx context.Context) (int64, error)       { return s.total, nil }

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testCfg = config.ReportConfig{
	PayrollView:       "v_daily_payroll",
	BurnoutView:       "v_weekly_hours_summary",
	BurnoutColumn:     "total_ot_hours",
	BurnoutDateColumn: "week_start",
	BurnoutThreshold:  60,
}

func newTestReportService(repo *fakeReportRepo, inspector *fakeInspector, browser *fakeBrowser, employees *stubEmployeeRepo) report.ReportService {
	if inspector == nil {
		inspector = &fakeInspector{}
	}
	if browser == nil {
		browser = &fakeBrowser{}
	}
	if employees == nil {
		employees = &stubEmployeeRepo{}
	}
	return NewReportService(slog.New(slog.NewTextHandler(io.Discard, nil)), testCfg, repo, inspector, browser, employees)
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"week", "Month", " YEAR "} {
		_, err := report.ParsePeriod(valid)
		assert.NoError(t, err, valid)
	}

	_, err := report.ParsePeriod("quarter")
	assert.ErrorIs(t, err, report.ErrUnknownPeriod)
}

func TestOTSummary_BucketsByWeekDescending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeReportRepo{otRows: []report.OTRow{
		{EmpID: "E001", WorkDate: date(2024, 2, 12), BeforeOT: strPtr("1.00"), AfterOT: strPtr("2.00")},
		{EmpID: "E002", WorkDate: date(2024, 2, 13), BetweenOT: strPtr("1:30:00")},
		{EmpID: "E001", WorkDate: date(2024, 2, 19), AfterOT: strPtr("3.00")},
	}}
	svc := newTestReportService(repo, nil, nil, nil)

	resp, err := svc.OTSummary(ctx, report.PeriodWeek, report.OTFilter{})

	require.NoError(t, err)
	require.Len(t, resp.Buckets, 2)
	assert.Equal(t, "2024-W08", resp.Buckets[0].Bucket)
	assert.Equal(t, "3.00", resp.Buckets[0].TotalOTHours)
	assert.Equal(t, 1, resp.Buckets[0].RecordCount)
	assert.Equal(t, "2024-W07", resp.Buckets[1].Bucket)
	assert.Equal(t, "4.50", resp.Buckets[1].TotalOTHours)
	assert.Equal(t, 2, resp.Buckets[1].RecordCount)
}

func TestOTSummary_RejectsOutOfRangeFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestReportService(&fakeReportRepo{}, nil, nil, nil)

	month := 13
	_, err := svc.OTSummary(ctx, report.PeriodWeek, report.OTFilter{Month: &month})
	assert.ErrorIs(t, err, report.ErrInvalidMonth)
	assert.Equal(t, fault.KindParse, fault.KindOf(err))

	year := 0
	_, err = svc.OTSummary(ctx, report.PeriodWeek, report.OTFilter{Year: &year})
	assert.ErrorIs(t, err, report.ErrInvalidYear)
}

func TestBurnoutSummary_RejectsOutOfRangeYear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestReportService(&fakeReportRepo{}, &fakeInspector{}, nil, nil)

	year := 10000
	_, err := svc.BurnoutSummary(ctx, report.BurnoutFilter{Year: &year})
	assert.ErrorIs(t, err, report.ErrInvalidYear)
	assert.Equal(t, fault.KindParse, fault.KindOf(err))
}

func TestOTSummary_MalformedValueCostsOnlyItsHours(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeReportRepo{otRows: []report.OTRow{
		{EmpID: "E001", WorkDate: date(2024, 2, 12), BeforeOT: strPtr("not-a-number"), AfterOT: strPtr("2.00")},
	}}
	svc := newTestReportService(repo, nil, nil, nil)

	resp, err := svc.OTSummary(ctx, report.PeriodMonth, report.OTFilter{})

	require.NoError(t, err)
	require.Len(t, resp.Buckets, 1)
	assert.Equal(t, "2024-02", resp.Buckets[0].Bucket)
	assert.Equal(t, "2.00", resp.Buckets[0].TotalOTHours)
	assert.Equal(t, 1, resp.Buckets[0].RecordCount)
}

func TestOTSummary_LimitClamp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var rows []report.OTRow
	for d := 1; d <= 5; d++ {
		rows = append(rows, report.OTRow{EmpID: "E001", WorkDate: date(2024, 3, d), AfterOT: strPtr("1.00")})
	}
	svc := newTestReportService(&fakeReportRepo{otRows: rows}, nil, nil, nil)

	resp, err := svc.OTSummary(ctx, report.PeriodWeek, report.OTFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Buckets, 1)
}

func TestDepartmentSummary_GroupsNullAsUnknown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeReportRepo{otRows: []report.OTRow{
		{EmpID: "E001", WorkDate: date(2024, 2, 12), Department: strPtr("Engineering"), AfterOT: strPtr("5.00")},
		{EmpID: "E002", WorkDate: date(2024, 2, 12), AfterOT: strPtr("2.00")},
		{EmpID: "E003", WorkDate: date(2024, 2, 13), Department: strPtr("Engineering"), AfterOT: strPtr("1.00")},
	}}
	svc := newTestReportService(repo, nil, nil, nil)

	resp, err := svc.DepartmentSummary(ctx, report.OTFilter{})

	require.NoError(t, err)
	require.Len(t, resp.Departments, 2)
	assert.Equal(t, "Engineering", resp.Departments[0].Department)
	assert.Equal(t, "6.00", resp.Departments[0].TotalOTHours)
	assert.Equal(t, 2, resp.Departments[0].RecordCount)
	assert.Equal(t, "Unknown", resp.Departments[1].Department)
	assert.Equal(t, "2.00", resp.Departments[1].TotalOTHours)
}

func TestPayrollSummary_MissingViewIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestReportService(&fakeReportRepo{}, &fakeInspector{}, nil, nil)

	_, err := svc.PayrollSummary(ctx, report.PeriodMonth)

	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	assert.ErrorIs(t, err, report.ErrViewNotFound)
}

func TestPayrollSummary_SumsByMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeReportRepo{payrollRows: []report.PayrollRow{
		{EmpID: "E001", WorkDate: date(2024, 1, 10), TotalPay: strPtr("1500.00")},
		{EmpID: "E002", WorkDate: date(2024, 1, 20), TotalPay: strPtr("250.50")},
		{EmpID: "E001", WorkDate: date(2024, 2, 1), TotalPay: strPtr("100.00")},
	}}
	inspector := &fakeInspector{views: []string{"v_daily_payroll"}}
	svc := newTestReportService(repo, inspector, nil, nil)

	resp, err := svc.PayrollSummary(ctx, report.PeriodMonth)

	require.NoError(t, err)
	assert.Equal(t, "v_daily_payroll", resp.Source)
	require.Len(t, resp.Buckets, 2)
	assert.Equal(t, "2024-02", resp.Buckets[0].Bucket)
	assert.Equal(t, "100.00", resp.Buckets[0].TotalPay)
	assert.Equal(t, "2024-01", resp.Buckets[1].Bucket)
	assert.Equal(t, "1750.50", resp.Buckets[1].TotalPay)
}

func TestRevenueByDepartment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeReportRepo{payrollRows: []report.PayrollRow{
		{EmpID: "E001", WorkDate: date(2024, 1, 10), Department: strPtr("Ops"), TotalPay: strPtr("100.00")},
		{EmpID: "E002", WorkDate: date(2024, 1, 11), Department: strPtr("Sales"), TotalPay: strPtr("900.00")},
	}}
	inspector := &fakeInspector{views: []string{"v_daily_payroll"}}
	svc := newTestReportService(repo, inspector, nil, nil)

	resp, err := svc.RevenueByDepartment(ctx, 10)

	require.NoError(t, err)
	require.Len(t, resp.Departments, 2)
	assert.Equal(t, "Sales", resp.Departments[0].Department)
	assert.Equal(t, "Ops", resp.Departments[1].Department)
}

func TestBurnoutSummary_BandsAndExclusions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeReportRepo{
		burnoutRows: []report.BurnoutRow{
			{EmpID: "E001", RefDate: date(2024, 2, 12), OTHours: strPtr("62.00")},
			{EmpID: "E002", RefDate: date(2024, 2, 12), OTHours: strPtr("55.00")},
			{EmpID: "E003", RefDate: date(2024, 2, 12), OTHours: strPtr("48.99")},
			{EmpID: "E004", RefDate: date(2024, 2, 12), OTHours: strPtr("garbage")},
			{EmpID: "E005", RefDate: date(2024, 2, 12), OTHours: nil},
		},
		distinctEmps: 5,
	}
	inspector := &fakeInspector{views: []string{"v_weekly_hours_summary"}}
	svc := newTestReportService(repo, inspector, nil, nil)

	resp, err := svc.BurnoutSummary(ctx, report.BurnoutFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.CriticalCount)
	assert.Equal(t, 1, resp.ElevatedCount)
	assert.Equal(t, 1, resp.ExcludedRows)
	assert.Equal(t, 5, resp.Headcount)
	assert.Equal(t, "60.00", resp.Threshold)
}

func TestBurnoutSummary_HeadcountFallsBackToRegisteredEmployees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeReportRepo{distinctEmps: 0}
	inspector := &fakeInspector{views: []string{"v_weekly_hours_summary"}}
	svc := newTestReportService(repo, inspector, nil, &stubEmployeeRepo{total: 42})

	resp, err := svc.BurnoutSummary(ctx, report.BurnoutFilter{})

	require.NoError(t, err)
	assert.Equal(t, 42, resp.Headcount)
}

func TestBrowseRows_GatedOnSchema(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inspector := &fakeInspector{tables: []string{"employees"}}
	browser := &fakeBrowser{
		columns: []string{"emp_id", "position"},
		rows:    []map[string]any{{"emp_id": "E001", "position": "Analyst"}},
	}
	svc := newTestReportService(&fakeReportRepo{}, inspector, browser, nil)

	resp, err := svc.BrowseRows(ctx, "employees", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"emp_id", "position"}, resp.Columns)
	assert.Len(t, resp.Rows, 1)

	_, err = svc.BrowseRows(ctx, "no_such_table", 10)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))

	_, err = svc.BrowseRows(ctx, "employees; DROP TABLE employees", 10)
	assert.Equal(t, fault.KindParse, fault.KindOf(err))
}

func TestListSchemaObjects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inspector := &fakeInspector{tables: []string{"employees"}, views: []string{"v_daily_payroll"}}
	svc := newTestReportService(&fakeReportRepo{}, inspector, nil, nil)

	resp, err := svc.ListSchemaObjects(ctx)

	require.NoError(t, err)
	require.Len(t, resp.Objects, 2)
	assert.Equal(t, report.SchemaObject{Name: "employees", Kind: "table"}, resp.Objects[0])
	assert.Equal(t, report.SchemaObject{Name: "v_daily_payroll", Kind: "view"}, resp.Objects[1])
}
