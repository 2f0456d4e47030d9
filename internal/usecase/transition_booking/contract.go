package transition_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	CountConfirmed(ctx context.Context, photographerID string, date time.Time, slot types.SlotTime, excludeID string) (int, error)
	ConfirmPending(ctx context.Context, id string) error
	TransitionStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	Cancel(ctx context.Context, id string, reason string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений о смене статуса.
// Реализация fire-and-forget: ошибки доставки не возвращаются.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b *domain.Booking)
	BookingDeclined(ctx context.Context, b *domain.Booking)
	BookingCancelled(ctx context.Context, b *domain.Booking, recipient domain.Role)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
