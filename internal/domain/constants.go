package domain

// Default slot catalog prices per tier
const (
	MorningSlotPrice   = 150.0
	AfternoonSlotPrice = 175.0
	EveningSlotPrice   = 200.0
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxEventTypeLength          = 100
	MaxEventLocationLength      = 300
	MinDurationHintHours        = 1
	MaxDurationHintHours        = 24
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не участвующих в проверке конфликтов
// и скрываемых из выдачи по умолчанию
var InactiveStatuses = []BookingStatus{
	StatusDeclined,
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
