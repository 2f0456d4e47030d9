package get_availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/pkg/ptr"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

type UseCase struct {
	repo    BookingRepository
	catalog domain.Catalog
	logs    Logger
}

func NewUseCase(repo BookingRepository, catalog domain.Catalog, logs Logger) *UseCase {
	return &UseCase{
		repo:    repo,
		catalog: catalog,
		logs:    logs,
	}
}

// Execute возвращает каталог слотов фотографа на дату с признаком доступности.
// Слот занят только подтверждённым бронированием, pending слоты не блокируют.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	filter := domain.PhotographerBookingsFilter{
		PhotographerID: req.PhotographerID,
		StartDate:      ptr.Ptr(req.Date),
		EndDate:        ptr.Ptr(req.Date),
		Status:         ptr.Ptr(domain.StatusConfirmed),
	}

	bookings, err := uc.repo.GetByPhotographerWithFilter(ctx, filter)
	if err != nil {
		uc.logs.Error("Execute - failed to load confirmed bookings: photographer_id=%s, date=%s, error=%v",
			req.PhotographerID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load bookings", ErrInternal)
	}

	occupied := make(map[types.SlotTime]struct{}, len(bookings))
	for _, booking := range bookings {
		occupied[booking.EventTime] = struct{}{}
	}

	return buildResponse(req.PhotographerID, req.Date, uc.catalog, occupied), nil
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.PhotographerID) == "" {
		return fmt.Errorf("%w: photographer id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
