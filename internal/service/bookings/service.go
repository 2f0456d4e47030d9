package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PhotographerService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PhotographerService/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - бронирование видят его клиент, его фотограф и админ
func (s *Service) GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s role=%s", id, actor.UserID, actor.Role)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanViewBooking(booking) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента
// Клиент видит только свою историю, админ - любую
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%s, status=%v", req.ClientID, req.Status)

	if req.Actor.Role != domain.RoleAdmin && req.Actor.UserID != req.ClientID {
		s.logger.Warn("GetClientBookings: access denied for user=%s to client=%s history", req.Actor.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%s", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%s", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetPhotographerBookings получает бронирования фотографа с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению завершённых бронирований
// Доступно самому фотографу и админу
//
// Примеры использования:
// - Расписание на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отклонённые и отменённые: IncludeInactive = true
func (s *Service) GetPhotographerBookings(ctx context.Context, req *models.GetPhotographerBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetPhotographerBookings: fetching bookings for photographer=%s, user=%s", req.PhotographerID, req.Actor.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if req.Actor.Role != domain.RoleAdmin && req.Actor.UserID != req.PhotographerID {
		s.logger.Warn("GetPhotographerBookings: access denied for user=%s to photographer=%s schedule", req.Actor.UserID, req.PhotographerID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPhotographerBookings: invalid filter for photographer=%s: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByPhotographerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPhotographerBookings: repository error for photographer=%s: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: GetPhotographerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPhotographerBookings: successfully fetched %d bookings for photographer=%s", len(bookings), req.PhotographerID)
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование
// Доступно владельцу-клиенту и админу
func (s *Service) Delete(ctx context.Context, id string, actor domain.Actor) error {
	s.logger.Info("Delete: deleting booking id=%s by user=%s role=%s", id, actor.UserID, actor.Role)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !actor.CanDeleteBooking(booking) {
		s.logger.Warn("Delete: access denied for user=%s to booking id=%s", actor.UserID, id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found during deletion", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}
