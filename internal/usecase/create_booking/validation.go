package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Каталог нужен для проверки, что выбранное время совпадает с одним из слотов.
func validateRequest(req *Request, catalog domain.Catalog) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if req.PhotographerID == "" {
		return fmt.Errorf("%w: photographerId is required", ErrInvalidInput)
	}

	if req.EventType == "" {
		return fmt.Errorf("%w: eventType is required", ErrInvalidInput)
	}
	if len(req.EventType) > domain.MaxEventTypeLength {
		return fmt.Errorf("%w: eventType is too long (max %d)", ErrInvalidInput, domain.MaxEventTypeLength)
	}

	if req.EventLocation == "" {
		return fmt.Errorf("%w: eventLocation is required", ErrInvalidInput)
	}
	if len(req.EventLocation) > domain.MaxEventLocationLength {
		return fmt.Errorf("%w: eventLocation is too long (max %d)", ErrInvalidInput, domain.MaxEventLocationLength)
	}

	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}

	if req.TotalAmount <= 0 {
		return fmt.Errorf("%w: totalAmount must be positive", ErrInvalidInput)
	}

	if req.DepositAmount < 0 {
		return fmt.Errorf("%w: depositAmount must not be negative", ErrInvalidInput)
	}
	if req.DepositAmount > req.TotalAmount {
		return fmt.Errorf("%w: depositAmount must not exceed totalAmount", ErrInvalidInput)
	}

	if req.DurationHint != nil {
		if *req.DurationHint < domain.MinDurationHintHours || *req.DurationHint > domain.MaxDurationHintHours {
			return fmt.Errorf("%w: durationHint must be between %d and %d hours",
				ErrInvalidInput, domain.MinDurationHintHours, domain.MaxDurationHintHours)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Время события - опционально, но если указано, должно быть слотом каталога
	if !req.EventTime.IsZero() {
		if err := req.EventTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid eventTime format: %v", ErrInvalidInput, err)
		}
		if !catalog.Contains(req.EventTime) {
			return fmt.Errorf("%w: %s", ErrUnknownSlot, req.EventTime)
		}
	}

	return nil
}

// validateDate проверяет, что дата события не в прошлом
func validateDate(eventDate time.Time, now time.Time) error {
	if isDateInPast(eventDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
