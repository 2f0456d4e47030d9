package get_photographer_bookings

import (
	"context"

	"github.com/m04kA/SMC-PhotographerService/internal/service/bookings/models"
)

type BookingService interface {
	GetPhotographerBookings(ctx context.Context, req *models.GetPhotographerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
