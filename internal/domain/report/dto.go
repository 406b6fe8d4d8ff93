package report

import "time"

// Raw rows come back from the store with their duration columns untouched.
// Parsing is lenient and happens during aggregation, so one corrupt row
// never sinks a whole report.

type OTRow struct {
	EmpID      string
	WorkDate   time.Time
	Department *string
	BeforeOT   *string
	AfterOT    *string
	BetweenOT  *string
}

type PayrollRow struct {
	EmpID      string
	WorkDate   time.Time
	Department *string
	TotalPay   *string
}

type BurnoutRow struct {
	EmpID   string
	RefDate time.Time
	OTHours *string
}

type OTFilter struct {
	Year       *int
	Month      *int
	Department *string
	Limit      int
}

type BurnoutFilter struct {
	Year  *int
	Month *int
}

type OTBucket struct {
	Bucket       string `json:"bucket"`
	TotalOTHours string `json:"total_ot_hours"`
	RecordCount  int    `json:"record_count"`
}

type OTSummaryResponse struct {
	Period  string     `json:"period"`
	Buckets []OTBucket `json:"buckets"`
}

type DepartmentBucket struct {
	Department   string `json:"department"`
	TotalOTHours string `json:"total_ot_hours"`
	RecordCount  int    `json:"record_count"`
}

type DepartmentSummaryResponse struct {
	Departments []DepartmentBucket `json:"departments"`
}

type PayrollBucket struct {
	Bucket      string `json:"bucket"`
	TotalPay    string `json:"total_pay"`
	RecordCount int    `json:"record_count"`
}

type PayrollSummaryResponse struct {
	Source  string          `json:"source"`
	Period  string          `json:"period"`
	Buckets []PayrollBucket `json:"buckets"`
}

type RevenueBucket struct {
	Department  string `json:"department"`
	TotalPay    string `json:"total_pay"`
	RecordCount int    `json:"record_count"`
}

type RevenueByDepartmentResponse struct {
	Source      string          `json:"source"`
	Departments []RevenueBucket `json:"departments"`
}

type BurnoutResponse struct {
	Source        string `json:"source"`
	Threshold     string `json:"threshold"`
	Headcount     int    `json:"headcount"`
	ElevatedCount int    `json:"elevated_count"`
	CriticalCount int    `json:"critical_count"`
	ExcludedRows  int    `json:"excluded_rows"`
}

type SchemaObject struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type SchemaListResponse struct {
	Objects []SchemaObject `json:"objects"`
}

type BrowseResponse struct {
	Name    string           `json:"name"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}
