package delete_booking

import (
	"context"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
)

type BookingService interface {
	Delete(ctx context.Context, id string, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
