package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID       string         // ID клиента (владелец заявки)
	PhotographerID string         // ID фотографа
	EventType      string         // Тип события (свадьба, портрет и т.д.)
	EventDate      time.Time      // Дата события (без времени)
	EventTime      types.SlotTime // Слот каталога (опционально)
	EventLocation  string         // Место проведения
	DurationHint   *int           // Ожидаемая длительность в часах (справочно)
	TotalAmount    float64        // Полная стоимость
	DepositAmount  float64        // Предоплата (по умолчанию 0)
	Notes          *string        // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string         // ID созданного бронирования
	ClientID       string         // ID клиента
	PhotographerID string         // ID фотографа
	EventType      string         // Тип события
	EventDate      time.Time      // Дата события
	EventTime      types.SlotTime // Слот (пустой, если не выбран)
	EventLocation  string         // Место проведения
	DurationHint   *int           // Ожидаемая длительность
	TotalAmount    float64        // Полная стоимость
	DepositAmount  float64        // Предоплата
	Status         string         // Статус бронирования (всегда pending)
	Notes          *string        // Заметки

	// SlotBusy информационный флаг: на момент создания слот уже занят
	// подтверждённым бронированием. Заявка всё равно создаётся - другое
	// бронирование может быть отменено раньше, чем фотограф примет решение.
	SlotBusy bool

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
