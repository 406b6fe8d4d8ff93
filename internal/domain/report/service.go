package report

import "context"

type ReportService interface {
	OTSummary(ctx context.Context, period Period, filter OTFilter) (*OTSummaryResponse, error)
	DepartmentSummary(ctx context.Context, filter OTFilter) (*DepartmentSummaryResponse, error)
	PayrollSummary(ctx context.Context, period Period) (*PayrollSummaryResponse, error)
	RevenueByDepartment(ctx context.Context, limit int) (*RevenueByDepartmentResponse, error)
	BurnoutSummary(ctx context.Context, filter BurnoutFilter) (*BurnoutResponse, error)
	ListSchemaObjects(ctx context.Context) (*SchemaListResponse, error)
	BrowseRows(ctx context.Context, name string, limit int) (*BrowseResponse, error)
}
