package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PhotographerService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PhotographerService/internal/service/bookings/models"
	"github.com/m04kA/SMC-PhotographerService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	byID         map[string]*domain.Booking
	byClient     []*domain.Booking
	byFilter     []*domain.Booking
	deleted      []string
	lastStatus   *domain.BookingStatus
	lastFilter   domain.PhotographerBookingsFilter
	clientErr    error
	filterErr    error
	deleteErr    error
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByClientID(ctx context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastStatus = status
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return f.byClient, nil
}

func (f *fakeRepo) GetByPhotographerWithFilter(ctx context.Context, filter domain.PhotographerBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return f.byFilter, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:             "b1",
		ClientID:       "client-1",
		PhotographerID: "photographer-1",
		EventType:      "portrait",
		EventDate:      time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		EventTime:      "10:00 AM",
		EventLocation:  "Studio",
		TotalAmount:    150,
		Status:         domain.StatusPending,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*domain.Booking{"b1": sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b1", domain.Actor{UserID: "client-1", Role: domain.RoleClient})
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "2026-10-15", resp.EventDate)

	// Фотограф заявки тоже видит её
	_, err = svc.GetByID(context.Background(), "b1", domain.Actor{UserID: "photographer-1", Role: domain.RolePhotographer})
	assert.NoError(t, err)

	// Посторонний пользователь - нет
	_, err = svc.GetByID(context.Background(), "b1", domain.Actor{UserID: "client-2", Role: domain.RoleClient})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "missing", domain.Actor{UserID: "client-1", Role: domain.RoleClient})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetClientBookings(t *testing.T) {
	repo := &fakeRepo{byClient: []*domain.Booking{sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: "client-1",
		Actor:    domain.Actor{UserID: "client-1", Role: domain.RoleClient},
		Status:   ptr.Ptr("pending"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusPending, *repo.lastStatus)
}

func TestService_GetClientBookings_AccessDenied(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	// Чужая история недоступна клиенту
	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: "client-1",
		Actor:    domain.Actor{UserID: "client-2", Role: domain.RoleClient},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Админу доступна любая
	_, err = svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: "client-1",
		Actor:    domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin},
	})
	assert.NoError(t, err)
}

func TestService_GetClientBookings_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: "client-1",
		Actor:    domain.Actor{UserID: "client-1", Role: domain.RoleClient},
		Status:   ptr.Ptr("archived"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetPhotographerBookings(t *testing.T) {
	repo := &fakeRepo{byFilter: []*domain.Booking{sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetPhotographerBookings(context.Background(), &models.GetPhotographerBookingsRequest{
		PhotographerID:  "photographer-1",
		Actor:           domain.Actor{UserID: "photographer-1", Role: domain.RolePhotographer},
		StartDate:       &date,
		EndDate:         &date,
		Status:          ptr.Ptr("confirmed"),
		IncludeInactive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "photographer-1", repo.lastFilter.PhotographerID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	assert.True(t, repo.lastFilter.IncludeInactive)
}

func TestService_GetPhotographerBookings_AccessDenied(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetPhotographerBookings(context.Background(), &models.GetPhotographerBookingsRequest{
		PhotographerID: "photographer-1",
		Actor:          domain.Actor{UserID: "photographer-2", Role: domain.RolePhotographer},
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*domain.Booking{"b1": sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), "b1", domain.Actor{UserID: "client-1", Role: domain.RoleClient})

	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, repo.deleted)
}

func TestService_Delete_AccessDenied(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*domain.Booking{"b1": sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	// Фотограф запись не удаляет
	err := svc.Delete(context.Background(), "b1", domain.Actor{UserID: "photographer-1", Role: domain.RolePhotographer})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)

	err = svc.Delete(context.Background(), "b1", domain.Actor{UserID: "client-2", Role: domain.RoleClient})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*domain.Booking{}}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), "missing", domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_RepoErrorsWrapInternal(t *testing.T) {
	repo := &fakeRepo{
		clientErr: errors.New("connection refused"),
		filterErr: errors.New("connection refused"),
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: "client-1",
		Actor:    domain.Actor{UserID: "client-1", Role: domain.RoleClient},
	})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetPhotographerBookings(context.Background(), &models.GetPhotographerBookingsRequest{
		PhotographerID: "photographer-1",
		Actor:          domain.Actor{UserID: "photographer-1", Role: domain.RolePhotographer},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
