package report

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/workforce-analytics/workforce-backend-go/internal/config"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/report"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/hours"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

const (
	maxBucketLimit     = 100
	maxDepartmentLimit = 200
	maxBrowseLimit     = 500
	defaultBrowseLimit = 100

	unknownDepartment = "Unknown"
)

// elevatedFloor is the lower bound of the elevated burnout band. The
// critical bound comes from configuration; this one is fixed.
var elevatedFloor = decimal.NewFromInt(49)

type ReportServiceImpl struct {
	logger *slog.Logger
	cfg    config.ReportConfig
	report.ReportRepository
	report.SchemaInspector
	report.RowBrowser
	employee.EmployeeRepository
}

func NewReportService(
	logger *slog.Logger,
	cfg config.ReportConfig,
	reportRepo report.ReportRepository,
	inspector report.SchemaInspector,
	browser report.RowBrowser,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		logger:             logger,
		cfg:                cfg,
		ReportRepository:   reportRepo,
		SchemaInspector:    inspector,
		RowBrowser:         browser,
		EmployeeRepository: employeeRepo,
	}
}

// validateFilter rejects out-of-range year and month filters before they
// reach a query.
func validateFilter(op string, year, month *int) error {
	if year != nil && (*year < 1 || *year > 9999) {
		return fault.Parse(op, strconv.Itoa(*year), report.ErrInvalidYear)
	}
	if month != nil && (*month < 1 || *month > 12) {
		return fault.Parse(op, strconv.Itoa(*month), report.ErrInvalidMonth)
	}
	return nil
}

func clampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

type accum struct {
	total decimal.Decimal
	count int
}

// OTSummary implements report.ReportService. Rows are bucketed by the
// requested period key and summed with lenient parsing, so a corrupt
// duration value costs one row's hours rather than the whole report.
func (r *ReportServiceImpl) OTSummary(ctx context.Context, period report.Period, filter report.OTFilter) (*report.OTSummaryResponse, error) {
	if err := validateFilter("overtime summary", filter.Year, filter.Month); err != nil {
		return nil, err
	}

	rows, err := r.ReportRepository.FetchOTRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	groups := map[string]*accum{}
	for _, row := range rows {
		total := hours.ParseLenient(row.BeforeOT).
			Add(hours.ParseLenient(row.AfterOT)).
			Add(hours.ParseLenient(row.BetweenOT))

		key := period.BucketKey(row.WorkDate)
		a, ok := groups[key]
		if !ok {
			a = &accum{}
			groups[key] = a
		}
		a.total = a.total.Add(total)
		a.count++
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	limit := clampLimit(filter.Limit, maxBucketLimit, maxBucketLimit)
	if len(keys) > limit {
		keys = keys[:limit]
	}

	buckets := make([]report.OTBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, report.OTBucket{
			Bucket:       key,
			TotalOTHours: groups[key].total.StringFixed(2),
			RecordCount:  groups[key].count,
		})
	}

	return &report.OTSummaryResponse{Period: string(period), Buckets: buckets}, nil
}

// DepartmentSummary implements report.ReportService.
func (r *ReportServiceImpl) DepartmentSummary(ctx context.Context, filter report.OTFilter) (*report.DepartmentSummaryResponse, error) {
	if err := validateFilter("department summary", filter.Year, filter.Month); err != nil {
		return nil, err
	}

	rows, err := r.ReportRepository.FetchOTRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	groups := map[string]*accum{}
	for _, row := range rows {
		total := hours.ParseLenient(row.BeforeOT).
			Add(hours.ParseLenient(row.AfterOT)).
			Add(hours.ParseLenient(row.BetweenOT))

		dept := unknownDepartment
		if row.Department != nil && *row.Department != "" {
			dept = *row.Department
		}
		a, ok := groups[dept]
		if !ok {
			a = &accum{}
			groups[dept] = a
		}
		a.total = a.total.Add(total)
		a.count++
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		cmp := groups[names[i]].total.Cmp(groups[names[j]].total)
		if cmp != 0 {
			return cmp > 0
		}
		return names[i] < names[j]
	})

	limit := clampLimit(filter.Limit, maxDepartmentLimit, maxDepartmentLimit)
	if len(names) > limit {
		names = names[:limit]
	}

	departments := make([]report.DepartmentBucket, 0, len(names))
	for _, name := range names {
		departments = append(departments, report.DepartmentBucket{
			Department:   name,
			TotalOTHours: groups[name].total.StringFixed(2),
			RecordCount:  groups[name].count,
		})
	}

	return &report.DepartmentSummaryResponse{Departments: departments}, nil
}

func lenientDecimal(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// requireView gates a named-view query on the schema inspector, so a
// missing view surfaces as not-found instead of a raw SQL error.
func (r *ReportServiceImpl) requireView(ctx context.Context, op, view string) error {
	if view == "" {
		return fault.Configuration(op, view, report.ErrNoReportSource)
	}
	ok, err := r.SchemaInspector.HasView(ctx, view)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound(op, view, report.ErrViewNotFound)
	}
	return nil
}

// PayrollSummary implements report.ReportService.
func (r *ReportServiceImpl) PayrollSummary(ctx context.Context, period report.Period) (*report.PayrollSummaryResponse, error) {
	view := r.cfg.PayrollView
	if err := r.requireView(ctx, "payroll summary", view); err != nil {
		return nil, err
	}

	rows, err := r.ReportRepository.FetchPayrollRows(ctx, view)
	if err != nil {
		return nil, err
	}

	groups := map[string]*accum{}
	for _, row := range rows {
		key := period.BucketKey(row.WorkDate)
		a, ok := groups[key]
		if !ok {
			a = &accum{}
			groups[key] = a
		}
		a.total = a.total.Add(lenientDecimal(row.TotalPay))
		a.count++
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	buckets := make([]report.PayrollBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, report.PayrollBucket{
			Bucket:      key,
			TotalPay:    groups[key].total.StringFixed(2),
			RecordCount: groups[key].count,
		})
	}

	return &report.PayrollSummaryResponse{
		Source:  view,
		Period:  string(period),
		Buckets: buckets,
	}, nil
}

// RevenueByDepartment implements report.ReportService.
func (r *ReportServiceImpl) RevenueByDepartment(ctx context.Context, limit int) (*report.RevenueByDepartmentResponse, error) {
	view := r.cfg.PayrollView
	if err := r.requireView(ctx, "revenue by department", view); err != nil {
		return nil, err
	}

	rows, err := r.ReportRepository.FetchPayrollRows(ctx, view)
	if err != nil {
		return nil, err
	}

	groups := map[string]*accum{}
	for _, row := range rows {
		dept := unknownDepartment
		if row.Department != nil && *row.Department != "" {
			dept = *row.Department
		}
		a, ok := groups[dept]
		if !ok {
			a = &accum{}
			groups[dept] = a
		}
		a.total = a.total.Add(lenientDecimal(row.TotalPay))
		a.count++
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		cmp := groups[names[i]].total.Cmp(groups[names[j]].total)
		if cmp != 0 {
			return cmp > 0
		}
		return names[i] < names[j]
	})

	limit = clampLimit(limit, maxDepartmentLimit, maxDepartmentLimit)
	if len(names) > limit {
		names = names[:limit]
	}

	departments := make([]report.RevenueBucket, 0, len(names))
	for _, name := range names {
		departments = append(departments, report.RevenueBucket{
			Department:  name,
			TotalPay:    groups[name].total.StringFixed(2),
			RecordCount: groups[name].count,
		})
	}

	return &report.RevenueByDepartmentResponse{Source: view, Departments: departments}, nil
}

// BurnoutSummary implements report.ReportService. A row whose hours
// column fails to parse lands in neither band; it is counted as excluded
// so the caller can see how much data the report ignored.
func (r *ReportServiceImpl) BurnoutSummary(ctx context.Context, filter report.BurnoutFilter) (*report.BurnoutResponse, error) {
	if err := validateFilter("burnout summary", filter.Year, filter.Month); err != nil {
		return nil, err
	}

	view := r.cfg.BurnoutView
	if err := r.requireView(ctx, "burnout summary", view); err != nil {
		return nil, err
	}

	rows, err := r.ReportRepository.FetchBurnoutRows(ctx, view, r.cfg.BurnoutColumn, r.cfg.BurnoutDateColumn, filter)
	if err != nil {
		return nil, err
	}

	threshold := decimal.NewFromFloat(r.cfg.BurnoutThreshold)

	var elevated, critical, excluded int
	for _, row := range rows {
		v, err := hours.ParsePtr(row.OTHours)
		if err != nil {
			excluded++
			continue
		}
		switch {
		case v.Cmp(threshold) >= 0:
			critical++
		case v.Cmp(elevatedFloor) >= 0:
			elevated++
		}
	}

	headcount, err := r.ReportRepository.CountDistinctEmployees(ctx, filter)
	if err != nil {
		return nil, err
	}
	if headcount == 0 {
		total, err := r.EmployeeRepository.Count(ctx)
		if err != nil {
			return nil, err
		}
		headcount = int(total)
	}

	return &report.BurnoutResponse{
		Source:        view,
		Threshold:     threshold.StringFixed(2),
		Headcount:     headcount,
		ElevatedCount: elevated,
		CriticalCount: critical,
		ExcludedRows:  excluded,
	}, nil
}

// ListSchemaObjects implements report.ReportService.
func (r *ReportServiceImpl) ListSchemaObjects(ctx context.Context) (*report.SchemaListResponse, error) {
	tables, err := r.SchemaInspector.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	views, err := r.SchemaInspector.ListViews(ctx)
	if err != nil {
		return nil, err
	}

	objects := make([]report.SchemaObject, 0, len(tables)+len(views))
	for _, name := range tables {
		objects = append(objects, report.SchemaObject{Name: name, Kind: "table"})
	}
	for _, name := range views {
		objects = append(objects, report.SchemaObject{Name: name, Kind: "view"})
	}

	return &report.SchemaListResponse{Objects: objects}, nil
}

// BrowseRows implements report.ReportService. The name must pass the
// identifier check and exist as a view or table before any query touches
// it.
func (r *ReportServiceImpl) BrowseRows(ctx context.Context, name string, limit int) (*report.BrowseResponse, error) {
	if !validator.IsValidIdentifier(name) {
		return nil, fault.Parse("browse rows", name, report.ErrTableNotFound)
	}

	isView, err := r.SchemaInspector.HasView(ctx, name)
	if err != nil {
		return nil, err
	}
	if !isView {
		isTable, err := r.SchemaInspector.HasTable(ctx, name)
		if err != nil {
			return nil, err
		}
		if !isTable {
			return nil, fault.NotFound("browse rows", name, report.ErrTableNotFound)
		}
	}

	limit = clampLimit(limit, defaultBrowseLimit, maxBrowseLimit)

	columns, rows, err := r.RowBrowser.FetchRows(ctx, name, limit)
	if err != nil {
		return nil, err
	}

	return &report.BrowseResponse{Name: name, Columns: columns, Rows: rows}, nil
}
