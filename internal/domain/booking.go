package domain

import (
	"time"

	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeclined  BookingStatus = "declined"
	StatusCancelled BookingStatus = "cancelled"
)

// transitions перечисляет допустимые переходы статусов.
// Любой переход, которого здесь нет, отклоняется как недопустимый.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusDeclined, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusDeclined:  {},
	StatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to another.
// Declined and cancelled are terminal; confirmed can only be cancelled.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is one of the four known statuses.
func IsValidStatus(s BookingStatus) bool {
	_, ok := transitions[s]
	return ok
}

// Booking represents a photographer booking request in the system
type Booking struct {
	ID             string
	ClientID       string
	PhotographerID string

	EventType     string
	EventDate     time.Time      // Дата съёмки без времени
	EventTime     types.SlotTime // Слот из каталога, например "10:00 AM"; пустой = время не выбрано
	EventLocation string
	DurationHint  *int // Ожидаемая длительность в часах, справочное поле

	TotalAmount   float64
	DepositAmount float64

	Status BookingStatus
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transition is possible
func (b *Booking) IsTerminal() bool {
	return len(transitions[b.Status]) == 0
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return CanTransition(b.Status, StatusCancelled)
}

// IsConfirmed returns true if the photographer has accepted the booking
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// OccupiesSlot returns true if the booking exclusively holds its slot.
// Only confirmed bookings block availability; pending requests may pile up
// on the same slot until the photographer picks one.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusConfirmed && !b.EventTime.IsZero()
}

// PhotographerBookingsFilter фильтр для получения бронирований фотографа
type PhotographerBookingsFilter struct {
	PhotographerID  string         // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отклонённые и отменённые бронирования
}
