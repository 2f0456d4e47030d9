package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	createBooking "github.com/m04kA/SMC-PhotographerService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PhotographerID string  `json:"photographerId"`
	EventType      string  `json:"eventType"`
	EventDate      string  `json:"eventDate"` // "2026-10-15"
	EventTime      string  `json:"eventTime"` // "10:00 AM", пустая строка - слот не выбран
	EventLocation  string  `json:"eventLocation"`
	DurationHint   *int    `json:"durationHint,omitempty"`
	TotalAmount    float64 `json:"totalAmount"`
	DepositAmount  float64 `json:"depositAmount"`
	Notes          *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	ClientID       string  `json:"clientId"`
	PhotographerID string  `json:"photographerId"`
	EventType      string  `json:"eventType"`
	EventDate      string  `json:"eventDate"`
	EventTime      string  `json:"eventTime,omitempty"`
	EventLocation  string  `json:"eventLocation"`
	DurationHint   *int    `json:"durationHint,omitempty"`
	TotalAmount    float64 `json:"totalAmount"`
	DepositAmount  float64 `json:"depositAmount"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	SlotBusy       bool    `json:"slotBusy"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID string) (*createBooking.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	var eventTime types.SlotTime
	if r.EventTime != "" {
		eventTime, err = types.NewSlotTimeFromString(r.EventTime)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		ClientID:       clientID,
		PhotographerID: r.PhotographerID,
		EventType:      r.EventType,
		EventDate:      eventDate,
		EventTime:      eventTime,
		EventLocation:  r.EventLocation,
		DurationHint:   r.DurationHint,
		TotalAmount:    r.TotalAmount,
		DepositAmount:  r.DepositAmount,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		ClientID:       resp.ClientID,
		PhotographerID: resp.PhotographerID,
		EventType:      resp.EventType,
		EventDate:      resp.EventDate.Format(domain.DateFormat),
		EventTime:      string(resp.EventTime),
		EventLocation:  resp.EventLocation,
		DurationHint:   resp.DurationHint,
		TotalAmount:    resp.TotalAmount,
		DepositAmount:  resp.DepositAmount,
		Status:         resp.Status,
		Notes:          resp.Notes,
		SlotBusy:       resp.SlotBusy,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
