package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/shift"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Create(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, s.db)

	_, err := q.Exec(ctx,
		`INSERT INTO shift (shift_code, shift_name, start_time, end_time, standard_hours)
		 VALUES ($1, $2, $3, $4, $5)`,
		sh.ShiftCode, sh.ShiftName, sh.StartTime, sh.EndTime, sh.StandardHours,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fault.Conflict("create shift", sh.ShiftCode, shift.ErrShiftExists)
		}
		return storeError("create shift", sh.ShiftCode, err)
	}

	return nil
}

// GetByCode implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByCode(ctx context.Context, shiftCode string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	var sh shift.Shift
	err := q.QueryRow(ctx,
		`SELECT shift_code, shift_name, start_time::text, end_time::text, standard_hours
		 FROM shift WHERE shift_code = $1`, shiftCode,
	).Scan(&sh.ShiftCode, &sh.ShiftName, &sh.StartTime, &sh.EndTime, &sh.StandardHours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, storeError("get shift", shiftCode, err)
	}

	return sh, nil
}

// List implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx,
		`SELECT shift_code, shift_name, start_time::text, end_time::text, standard_hours
		 FROM shift ORDER BY shift_code`)
	if err != nil {
		return nil, storeError("list shifts", "", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(&sh.ShiftCode, &sh.ShiftName, &sh.StartTime, &sh.EndTime, &sh.StandardHours); err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) error {
	q := GetQuerier(ctx, s.db)

	setClauses := []string{}
	args := []any{}
	argIdx := 1

	if req.ShiftName != nil {
		setClauses = append(setClauses, fmt.Sprintf("shift_name = $%d", argIdx))
		args = append(args, *req.ShiftName)
		argIdx++
	}
	if req.StartTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("start_time = $%d", argIdx))
		args = append(args, *req.StartTime)
		argIdx++
	}
	if req.EndTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("end_time = $%d", argIdx))
		args = append(args, *req.EndTime)
		argIdx++
	}
	if req.StandardHours != nil {
		setClauses = append(setClauses, fmt.Sprintf("standard_hours = $%d", argIdx))
		args = append(args, *req.StandardHours)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE shift SET %s WHERE shift_code = $%d",
		strings.Join(setClauses, ", "), argIdx,
	)
	args = append(args, req.ShiftCode)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return storeError("update shift", req.ShiftCode, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Delete(ctx context.Context, shiftCode string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift WHERE shift_code = $1`, shiftCode)
	if err != nil {
		return storeError("delete shift", shiftCode, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
