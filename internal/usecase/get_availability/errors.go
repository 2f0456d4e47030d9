package get_availability

import "errors"

var (
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("usecase.get_availability: invalid input")

	// ErrInternal - внутренняя ошибка
	ErrInternal = errors.New("usecase.get_availability: internal error")
)
