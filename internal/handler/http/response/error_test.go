package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/report"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "connection fault is unavailable",
			err:    fault.Connection("fetch overtime rows", "", errors.New("connection refused")),
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "wrapped connection fault is unavailable",
			err:    fmt.Errorf("overtime summary: %w", fault.Connection("fetch overtime rows", "", errors.New("connection refused"))),
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "parse fault is bad request",
			err:    fault.Parse("check in", "2024-13-40", errors.New("bad date")),
			status: http.StatusBadRequest,
		},
		{
			name:   "not found fault",
			err:    fault.NotFound("browse rows", "v_gone", report.ErrTableNotFound),
			status: http.StatusNotFound,
		},
		{
			name:   "sentinel wins over fault kind",
			err:    fault.Conflict("create employee", "E001", employee.ErrEmployeeExists),
			status: http.StatusConflict,
		},
		{
			name:   "invalid month filter",
			err:    fault.Parse("overtime summary", "13", report.ErrInvalidMonth),
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid year filter",
			err:    fault.Parse("overtime summary", "0", report.ErrInvalidYear),
			status: http.StatusBadRequest,
		},
		{
			name:   "validation errors are unprocessable",
			err:    validator.ValidationErrors{{Field: "emp_id", Message: "emp_id is required"}},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "unclassified error is internal",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
