package transition_booking

import (
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID          string               // ID бронирования
	TargetStatus       domain.BookingStatus // Целевой статус
	Actor              domain.Actor         // Кто выполняет переход
	CancellationReason *string              // Причина отмены (только для cancelled)
}

// Response модель ответа с бронированием после перехода
type Response struct {
	ID             string
	ClientID       string
	PhotographerID string
	EventType      string
	EventDate      time.Time
	EventTime      types.SlotTime
	EventLocation  string
	DurationHint   *int
	TotalAmount    float64
	DepositAmount  float64
	Status         string
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		PhotographerID:     b.PhotographerID,
		EventType:          b.EventType,
		EventDate:          b.EventDate,
		EventTime:          b.EventTime,
		EventLocation:      b.EventLocation,
		DurationHint:       b.DurationHint,
		TotalAmount:        b.TotalAmount,
		DepositAmount:      b.DepositAmount,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
