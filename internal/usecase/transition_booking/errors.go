package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrInvalidTransition возвращается, когда запрошенный переход отсутствует
	// в таблице переходов. Сообщение всегда содержит текущий и запрошенный статусы.
	ErrInvalidTransition = errors.New("transition_booking: invalid status transition")

	// ErrSlotTaken возвращается, когда при подтверждении обнаружено другое
	// confirmed-бронирование на тот же слот; заявка остаётся pending
	ErrSlotTaken = errors.New("transition_booking: slot is already booked")

	// ErrAccessDenied возвращается, когда актор не вправе выполнить переход
	ErrAccessDenied = errors.New("transition_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_booking: internal error")
)
