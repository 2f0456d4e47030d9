package transition_booking

import (
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	transitionBooking "github.com/m04kA/SMC-PhotographerService/internal/usecase/transition_booking"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "confirmed" или "declined"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 string  `json:"id"`
	ClientID           string  `json:"clientId"`
	PhotographerID     string  `json:"photographerId"`
	EventType          string  `json:"eventType"`
	EventDate          string  `json:"eventDate"`
	EventTime          string  `json:"eventTime,omitempty"`
	EventLocation      string  `json:"eventLocation"`
	DurationHint       *int    `json:"durationHint,omitempty"`
	TotalAmount        float64 `json:"totalAmount"`
	DepositAmount      float64 `json:"depositAmount"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionBooking.Response) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:                 resp.ID,
		ClientID:           resp.ClientID,
		PhotographerID:     resp.PhotographerID,
		EventType:          resp.EventType,
		EventDate:          resp.EventDate.Format(domain.DateFormat),
		EventTime:          string(resp.EventTime),
		EventLocation:      resp.EventLocation,
		DurationHint:       resp.DurationHint,
		TotalAmount:        resp.TotalAmount,
		DepositAmount:      resp.DepositAmount,
		Status:             resp.Status,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
