package postgresql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

// refusedConn stands in for the dial error pgx surfaces when the
// database is down.
type refusedConn struct{}

func (refusedConn) Error() string   { return "dial tcp 127.0.0.1:5432: connect: connection refused" }
func (refusedConn) Timeout() bool   { return false }
func (refusedConn) Temporary() bool { return true }

func TestStoreError_TagsConnectionFailures(t *testing.T) {
	t.Parallel()

	err := storeError("fetch overtime rows", "", fmt.Errorf("acquire: %w", refusedConn{}))

	assert.Equal(t, fault.KindConnection, fault.KindOf(err))
	var fe *fault.Error
	if assert.ErrorAs(t, err, &fe) {
		assert.Equal(t, "fetch overtime rows", fe.Op)
	}
}

func TestStoreError_PlainFailuresStayUnclassified(t *testing.T) {
	t.Parallel()

	cause := errors.New("column does not exist")
	err := storeError("fetch overtime rows", "", cause)

	assert.Equal(t, fault.KindUnknown, fault.KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to fetch overtime rows: column does not exist", err.Error())

	err = storeError("get employee", "E001", cause)
	assert.Equal(t, "failed to get employee E001: column does not exist", err.Error())
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("insert failed")))
}
