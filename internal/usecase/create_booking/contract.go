package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountConfirmed(ctx context.Context, photographerID string, date time.Time, slot types.SlotTime, excludeID string) (int, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID string) (*profileservice.ClientProfile, error)
	GetPhotographerWithGracefulDegradation(ctx context.Context, photographerID string) (*profileservice.PhotographerProfile, error)
}

// Notifier интерфейс отправки уведомлений.
// Реализация fire-and-forget: ошибки доставки не возвращаются.
type Notifier interface {
	BookingCreated(ctx context.Context, b *domain.Booking)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
