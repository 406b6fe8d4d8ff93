package postgresql

import (
	"context"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/report"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
)

type schemaInspectorImpl struct {
	db *database.DB
}

func NewSchemaInspector(db *database.DB) report.SchemaInspector {
	return &schemaInspectorImpl{db: db}
}

// HasView implements report.SchemaInspector.
func (s *schemaInspectorImpl) HasView(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, s.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.views
			WHERE table_schema = current_schema() AND table_name = $1
		)
	`, name).Scan(&exists)
	if err != nil {
		return false, storeError("check view", name, err)
	}

	return exists, nil
}

// HasTable implements report.SchemaInspector.
func (s *schemaInspectorImpl) HasTable(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, s.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema()
			  AND table_name = $1 AND table_type = 'BASE TABLE'
		)
	`, name).Scan(&exists)
	if err != nil {
		return false, storeError("check table", name, err)
	}

	return exists, nil
}

// ListViews implements report.SchemaInspector.
func (s *schemaInspectorImpl) ListViews(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, `
		SELECT table_name FROM information_schema.views
		WHERE table_schema = current_schema()
		ORDER BY table_name
	`)
}

// ListTables implements report.SchemaInspector.
func (s *schemaInspectorImpl) ListTables(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
}

func (s *schemaInspectorImpl) listNames(ctx context.Context, query string) ([]string, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, storeError("list schema objects", "", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
