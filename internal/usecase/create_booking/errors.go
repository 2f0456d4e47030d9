package create_booking

import "errors"

var (
	// ErrClientNotFound возвращается, когда профиль клиента не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrPhotographerNotFound возвращается, когда профиль фотографа не найден
	ErrPhotographerNotFound = errors.New("create_booking: photographer not found")

	// ErrInvalidDate возвращается при некорректной дате события
	ErrInvalidDate = errors.New("create_booking: invalid event date")

	// ErrUnknownSlot возвращается, когда время события не совпадает ни с одним слотом каталога
	ErrUnknownSlot = errors.New("create_booking: event time does not match any catalog slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
