package profileservice

import "errors"

var (
	// ErrClientNotFound возвращается, когда профиль клиента не найден
	ErrClientNotFound = errors.New("client profile not found")

	// ErrPhotographerNotFound возвращается, когда профиль фотографа не найден
	ErrPhotographerNotFound = errors.New("photographer profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что ProfileService недоступен; бронирование может быть
	// создано без обогащения профильными данными.
	ErrServiceDegraded = errors.New("profileservice unavailable: graceful degradation applied")
)
