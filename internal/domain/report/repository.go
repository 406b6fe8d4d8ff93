package report

import "context"

type ReportRepository interface {
	FetchOTRows(ctx context.Context, filter OTFilter) ([]OTRow, error)
	// FetchPayrollRows reads from a named view that SchemaInspector has
	// already confirmed to exist.
	FetchPayrollRows(ctx context.Context, view string) ([]PayrollRow, error)
	FetchBurnoutRows(ctx context.Context, view, hoursColumn, dateColumn string, filter BurnoutFilter) ([]BurnoutRow, error)
	CountDistinctEmployees(ctx context.Context, filter BurnoutFilter) (int, error)
}

// SchemaInspector answers what the connected database actually contains.
// Report queries against named views go through it first, so a missing
// view surfaces as a not-found fault instead of a raw SQL error.
type SchemaInspector interface {
	HasView(ctx context.Context, name string) (bool, error)
	HasTable(ctx context.Context, name string) (bool, error)
	ListViews(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context) ([]string, error)
}

// RowBrowser reads arbitrary rows from a view or table whose existence
// was validated against the inspector. This is the one surface where row
// shape stays dynamic.
type RowBrowser interface {
	FetchRows(ctx context.Context, name string, limit int) (columns []string, rows []map[string]any, err error)
}
