package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/report"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
)

type rowBrowserImpl struct {
	db *database.DB
}

func NewRowBrowser(db *database.DB) report.RowBrowser {
	return &rowBrowserImpl{db: db}
}

// FetchRows implements report.RowBrowser. Column names and row shape come
// from the result's field descriptions, so any view or table the
// inspector has validated can be browsed without a dedicated row type.
func (b *rowBrowserImpl) FetchRows(ctx context.Context, name string, limit int) ([]string, []map[string]any, error) {
	q := GetQuerier(ctx, b.db)

	query := fmt.Sprintf(`SELECT * FROM %s LIMIT $1`, pgx.Identifier{name}.Sanitize())

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, nil, storeError("browse", name, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	result := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return columns, result, nil
}
