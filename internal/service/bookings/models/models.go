package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID string  `json:"clientId"`
	Actor    domain.Actor
	Status   *string `json:"status,omitempty"`
}

// GetPhotographerBookingsRequest запрос на получение бронирований фотографа
type GetPhotographerBookingsRequest struct {
	PhotographerID  string     `json:"photographerId"`
	Actor           domain.Actor
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отклонённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPhotographerBookingsRequest) ToDomainFilter() (domain.PhotographerBookingsFilter, error) {
	filter := domain.PhotographerBookingsFilter{
		PhotographerID:  r.PhotographerID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Response модели

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID                 string         `json:"id"`
	ClientID           string         `json:"clientId"`
	PhotographerID     string         `json:"photographerId"`
	EventType          string         `json:"eventType"`
	EventDate          string         `json:"eventDate"`
	EventTime          types.SlotTime `json:"eventTime"`
	EventLocation      string         `json:"eventLocation"`
	DurationHint       *int           `json:"durationHint,omitempty"`
	TotalAmount        float64        `json:"totalAmount"`
	DepositAmount      float64        `json:"depositAmount"`
	Status             string         `json:"status"`
	Notes              *string        `json:"notes,omitempty"`
	CancellationReason *string        `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time     `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		PhotographerID:     b.PhotographerID,
		EventType:          b.EventType,
		EventDate:          b.EventDate.Format(domain.DateFormat),
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

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}
}
