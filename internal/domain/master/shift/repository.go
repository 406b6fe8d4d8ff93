package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) error
	GetByCode(ctx context.Context, shiftCode string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) error
	Delete(ctx context.Context, shiftCode string) error
}
