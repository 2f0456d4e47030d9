package notify

// EventKind тип события уведомления
type EventKind string

const (
	KindBookingCreated   EventKind = "booking_created"
	KindBookingConfirmed EventKind = "booking_confirmed"
	KindBookingDeclined  EventKind = "booking_declined"
	KindBookingCancelled EventKind = "booking_cancelled"
)

// BookingEvent сообщение для сервиса рассылки уведомлений.
// Содержит достаточно данных, чтобы консьюмер собрал письмо
// без обращения к основной БД.
type BookingEvent struct {
	BookingID      string  `json:"booking_id"`
	Kind           string  `json:"kind"`
	RecipientRole  string  `json:"recipient_role"` // client | photographer
	ClientID       string  `json:"client_id"`
	PhotographerID string  `json:"photographer_id"`
	EventType      string  `json:"event_type"`
	EventDate      string  `json:"event_date"` // YYYY-MM-DD
	EventTime      string  `json:"event_time,omitempty"`
	EventLocation  string  `json:"event_location"`
	TotalAmount    float64 `json:"total_amount"`
	OccurredAt     string  `json:"occurred_at"` // RFC 3339
}
