package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PhotographerService/internal/infra/storage/booking"
)

// UseCase use case смены статуса бронирования.
// Единственная точка мутации жизненного цикла: создание делает create_booking,
// все остальные изменения статуса проходят здесь.
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет переход статуса.
//
// Переход pending -> confirmed перепроверяет конфликт слота непосредственно
// перед записью: между открытием заявки фотографом и нажатием "подтвердить"
// другой запрос на тот же слот мог быть подтверждён. Сама запись - условный
// UPDATE, так что даже при конкурентных подтверждениях БД пропустит ровно одно.
// Проигравшая заявка остаётся pending и получает ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%s, target=%s, actor=%s(%s)",
		req.BookingID, req.TargetStatus, req.Actor.UserID, req.Actor.Role)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Загружаем бронирование с блокировкой строки
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Проверяем переход по таблице состояний
		if !domain.CanTransition(b.Status, req.TargetStatus) {
			uc.logger.Warn("TransitionBooking: transition %s -> %s rejected for booking id=%s",
				b.Status, req.TargetStatus, b.ID)
			return fmt.Errorf("%w: cannot move booking from %s to %s",
				ErrInvalidTransition, b.Status, req.TargetStatus)
		}

		// Проверяем права актора
		if !req.Actor.CanTransitionBooking(b, req.TargetStatus) {
			uc.logger.Warn("TransitionBooking: actor=%s(%s) is not allowed to set %s on booking id=%s",
				req.Actor.UserID, req.Actor.Role, req.TargetStatus, b.ID)
			return ErrAccessDenied
		}

		switch req.TargetStatus {
		case domain.StatusConfirmed:
			if err := uc.confirm(txCtx, b); err != nil {
				return err
			}

		case domain.StatusDeclined:
			if err := uc.bookingRepo.TransitionStatus(txCtx, b.ID, b.Status, domain.StatusDeclined); err != nil {
				return fmt.Errorf("%w: failed to decline booking: %v", ErrInternal, err)
			}

		case domain.StatusCancelled:
			reason := ""
			if req.CancellationReason != nil {
				reason = *req.CancellationReason
			}
			if err := uc.bookingRepo.Cancel(txCtx, b.ID, reason); err != nil {
				return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
			}
		}

		// Перечитываем запись, чтобы вернуть актуальные статус и метки времени
		updated, err := uc.bookingRepo.GetByID(txCtx, b.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionBooking: booking id=%s moved to %s", result.ID, result.Status)

	// Уведомляем контрагента (fire-and-forget, сбой доставки не откатывает переход)
	uc.notifyTransition(context.WithoutCancel(ctx), result, req.Actor)

	return fromDomain(result), nil
}

// confirm выполняет переход pending -> confirmed с перепроверкой конфликта.
// Предварительный COUNT - быстрый путь для ранней диагностики; гарантию
// единственности даёт условный UPDATE в ConfirmPending и частичный
// уникальный индекс в БД.
func (uc *UseCase) confirm(ctx context.Context, b *domain.Booking) error {
	if !b.EventTime.IsZero() {
		count, err := uc.bookingRepo.CountConfirmed(ctx, b.PhotographerID, b.EventDate, b.EventTime, b.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
		}
		if count > 0 {
			uc.logger.Warn("TransitionBooking: slot %s on %s already confirmed for photographer=%s, booking id=%s stays pending",
				b.EventTime, b.EventDate.Format(domain.DateFormat), b.PhotographerID, b.ID)
			return ErrSlotTaken
		}

		if err := uc.bookingRepo.ConfirmPending(ctx, b.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("TransitionBooking: conditional confirm lost the race for booking id=%s", b.ID)
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
		}
		return nil
	}

	// Без выбранного слота конфликтовать не с чем - обычный условный переход
	if err := uc.bookingRepo.TransitionStatus(ctx, b.ID, b.Status, domain.StatusConfirmed); err != nil {
		return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}
	return nil
}

// notifyTransition отправляет уведомление контрагенту выполненного перехода
func (uc *UseCase) notifyTransition(ctx context.Context, b *domain.Booking, actor domain.Actor) {
	switch b.Status {
	case domain.StatusConfirmed:
		go uc.notifier.BookingConfirmed(ctx, b)
	case domain.StatusDeclined:
		go uc.notifier.BookingDeclined(ctx, b)
	case domain.StatusCancelled:
		// Уведомляем сторону, которая отмену не инициировала
		recipient := domain.RoleClient
		if actor.Role == domain.RoleClient {
			recipient = domain.RolePhotographer
		}
		go uc.notifier.BookingCancelled(ctx, b, recipient)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	if !domain.IsValidStatus(req.TargetStatus) {
		return fmt.Errorf("%w: unknown target status %q", ErrInvalidInput, req.TargetStatus)
	}

	// В pending бронирование попадает только при создании
	if req.TargetStatus == domain.StatusPending {
		return fmt.Errorf("%w: transition to %s is not allowed", ErrInvalidTransition, domain.StatusPending)
	}

	if !domain.IsValidRole(req.Actor.Role) {
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.Actor.Role)
	}
	if req.Actor.UserID == "" {
		return fmt.Errorf("%w: actor userId is required", ErrInvalidInput)
	}

	if req.CancellationReason != nil {
		if req.TargetStatus != domain.StatusCancelled {
			return fmt.Errorf("%w: cancellationReason is only allowed for cancellation", ErrInvalidInput)
		}
		if len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
			return fmt.Errorf("%w: cancellationReason is too long (max %d)",
				ErrInvalidInput, domain.MaxCancellationReasonLength)
		}
	}

	return nil
}
