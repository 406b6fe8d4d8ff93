package postgresql

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// storeError wraps a failed statement. Connectivity failures are tagged
// so the handler answers with unavailable instead of a generic failure.
func storeError(op, key string, err error) error {
	if isConnectionError(err) {
		return fault.Connection(op, key, err)
	}
	if key == "" {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return fmt.Errorf("failed to %s %s: %w", op, key, err)
}
