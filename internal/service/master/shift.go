package master

import (
	"context"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/shift"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(repo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{ShiftRepository: repo}
}

func shiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ShiftCode:     sh.ShiftCode,
		ShiftName:     sh.ShiftName,
		StartTime:     sh.StartTime,
		EndTime:       sh.EndTime,
		StandardHours: sh.StandardHours,
	}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh := shift.Shift{
		ShiftCode:     req.ShiftCode,
		ShiftName:     req.ShiftName,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		StandardHours: req.StandardHours,
	}
	if err := s.ShiftRepository.Create(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return shiftResponse(sh), nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, shiftCode string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByCode(ctx, shiftCode)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shiftResponse(sh), nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shiftResponse(sh))
	}
	return responses, nil
}

// UpdateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.ShiftRepository.Update(ctx, req); err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.GetShift(ctx, req.ShiftCode)
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, shiftCode string) error {
	return s.ShiftRepository.Delete(ctx, shiftCode)
}
