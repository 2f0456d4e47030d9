package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	profileClient "github.com/m04kA/SMC-PhotographerService/internal/integrations/profileservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	profileClient ProfileServiceClient
	notifier      Notifier
	catalog       domain.Catalog
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	profileClient ProfileServiceClient,
	notifier Notifier,
	catalog domain.Catalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		profileClient: profileClient,
		notifier:      notifier,
		catalog:       catalog,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Заявка всегда создаётся в статусе pending: проверка конфликта здесь
// информационная и не блокирует создание - несколько pending-заявок на один
// слот допустимы, фотограф выберет одну из них при подтверждении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, photographer=%s, date=%s, time=%s",
		req.ClientID, req.PhotographerID, req.EventDate.Format(domain.DateFormat), req.EventTime)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата события не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.EventDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем профили сторон. Недоступность ProfileService не блокирует
	// создание заявки (graceful degradation), отсутствие профиля - блокирует.
	if _, err := uc.profileClient.GetClientWithGracefulDegradation(ctx, req.ClientID); err != nil {
		if errors.Is(err, profileClient.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Warn("CreateBooking: proceeding without client profile: %v", err)
	}

	if _, err := uc.profileClient.GetPhotographerWithGracefulDegradation(ctx, req.PhotographerID); err != nil {
		if errors.Is(err, profileClient.ErrPhotographerNotFound) {
			uc.logger.Warn("CreateBooking: photographer id=%s not found", req.PhotographerID)
			return nil, ErrPhotographerNotFound
		}
		uc.logger.Warn("CreateBooking: proceeding without photographer profile: %v", err)
	}

	// 4. Информационная проверка занятости слота (только confirmed-бронирования)
	slotBusy := false
	if !req.EventTime.IsZero() {
		count, err := uc.bookingRepo.CountConfirmed(ctx, req.PhotographerID, req.EventDate, req.EventTime, "")
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot occupancy: %v", err)
			return nil, fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
		}
		slotBusy = count > 0
		if slotBusy {
			uc.logger.Info("CreateBooking: slot %s on %s is already confirmed for photographer=%s, creating pending request anyway",
				req.EventTime, req.EventDate.Format(domain.DateFormat), req.PhotographerID)
		}
	}

	// 5. Создаем заявку в статусе pending
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		ClientID:       req.ClientID,
		PhotographerID: req.PhotographerID,
		EventType:      req.EventType,
		EventDate:      req.EventDate,
		EventTime:      req.EventTime,
		EventLocation:  req.EventLocation,
		DurationHint:   req.DurationHint,
		TotalAmount:    req.TotalAmount,
		DepositAmount:  req.DepositAmount,
		Status:         domain.StatusPending,
		Notes:          req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	// 6. Уведомляем фотографа о новой заявке (fire-and-forget)
	go uc.notifier.BookingCreated(context.WithoutCancel(ctx), created)

	return &Response{
		ID:             created.ID,
		ClientID:       created.ClientID,
		PhotographerID: created.PhotographerID,
		EventType:      created.EventType,
		EventDate:      created.EventDate,
		EventTime:      created.EventTime,
		EventLocation:  created.EventLocation,
		DurationHint:   created.DurationHint,
		TotalAmount:    created.TotalAmount,
		DepositAmount:  created.DepositAmount,
		Status:         string(created.Status),
		Notes:          created.Notes,
		SlotBusy:       slotBusy,
		CreatedAt:      created.CreatedAt,
		UpdatedAt:      created.UpdatedAt,
	}, nil
}
