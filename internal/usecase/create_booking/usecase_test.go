package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-PhotographerService/pkg/ptr"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	createFn         func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	countConfirmedFn func(ctx context.Context, photographerID string, date time.Time, slot types.SlotTime, excludeID string) (int, error)
}

func (f *fakeRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	return f.createFn(ctx, b)
}

func (f *fakeRepo) CountConfirmed(ctx context.Context, photographerID string, date time.Time, slot types.SlotTime, excludeID string) (int, error) {
	return f.countConfirmedFn(ctx, photographerID, date, slot, excludeID)
}

type fakeProfileClient struct {
	clientErr       error
	photographerErr error
}

func (f *fakeProfileClient) GetClientWithGracefulDegradation(ctx context.Context, clientID string) (*profileservice.ClientProfile, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return &profileservice.ClientProfile{ID: clientID}, nil
}

func (f *fakeProfileClient) GetPhotographerWithGracefulDegradation(ctx context.Context, photographerID string) (*profileservice.PhotographerProfile, error) {
	if f.photographerErr != nil {
		return nil, f.photographerErr
	}
	return &profileservice.PhotographerProfile{ID: photographerID}, nil
}

type fakeNotifier struct {
	created chan *domain.Booking
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{created: make(chan *domain.Booking, 1)}
}

func (f *fakeNotifier) BookingCreated(ctx context.Context, b *domain.Booking) {
	f.created <- b
}

func echoCreate(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	return &out, nil
}

func noConfirmed(ctx context.Context, photographerID string, date time.Time, slot types.SlotTime, excludeID string) (int, error) {
	return 0, nil
}

func validRequest() *Request {
	return &Request{
		ClientID:       "client-1",
		PhotographerID: "photographer-1",
		EventType:      "wedding",
		EventDate:      time.Now().AddDate(0, 0, 14),
		EventTime:      "10:00 AM",
		EventLocation:  "Central Park",
		TotalAmount:    150,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := &fakeRepo{createFn: echoCreate, countConfirmedFn: noConfirmed}
	notifier := newFakeNotifier()

	uc := NewUseCase(repo, &fakeProfileClient{}, notifier, domain.DefaultCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.SlotTime("10:00 AM"), resp.EventTime)
	assert.False(t, resp.SlotBusy)

	select {
	case b := <-notifier.created:
		assert.Equal(t, resp.ID, b.ID)
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestCreateBooking_SlotBusyIsInformational(t *testing.T) {
	repo := &fakeRepo{
		createFn: echoCreate,
		countConfirmedFn: func(ctx context.Context, photographerID string, date time.Time, slot types.SlotTime, excludeID string) (int, error) {
			return 1, nil
		},
	}

	uc := NewUseCase(repo, &fakeProfileClient{}, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	// Занятый слот не блокирует создание заявки, только помечает её
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.True(t, resp.SlotBusy)
}

func TestCreateBooking_NoSlotSkipsOccupancyCheck(t *testing.T) {
	countCalled := false
	repo := &fakeRepo{
		createFn: echoCreate,
		countConfirmedFn: func(ctx context.Context, photographerID string, date time.Time, slot types.SlotTime, excludeID string) (int, error) {
			countCalled = true
			return 0, nil
		},
	}

	uc := NewUseCase(repo, &fakeProfileClient{}, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	req := validRequest()
	req.EventTime = ""

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, countCalled)
	assert.False(t, resp.SlotBusy)
}

func TestCreateBooking_OccupancyCheckFailure(t *testing.T) {
	repo := &fakeRepo{
		createFn: echoCreate,
		countConfirmedFn: func(ctx context.Context, photographerID string, date time.Time, slot types.SlotTime, excludeID string) (int, error) {
			return 0, errors.New("connection refused")
		},
	}

	uc := NewUseCase(repo, &fakeProfileClient{}, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	// Сбой хранилища не маскируется под "слот свободен"
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestCreateBooking_DateInPast(t *testing.T) {
	repo := &fakeRepo{createFn: echoCreate, countConfirmedFn: noConfirmed}
	uc := NewUseCase(repo, &fakeProfileClient{}, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	req := validRequest()
	req.EventDate = time.Now().AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_UnknownSlot(t *testing.T) {
	repo := &fakeRepo{createFn: echoCreate, countConfirmedFn: noConfirmed}
	uc := NewUseCase(repo, &fakeProfileClient{}, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	req := validRequest()
	req.EventTime = "7:00 PM"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestCreateBooking_Validation(t *testing.T) {
	repo := &fakeRepo{createFn: echoCreate, countConfirmedFn: noConfirmed}
	uc := NewUseCase(repo, &fakeProfileClient{}, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing client", func(r *Request) { r.ClientID = "" }},
		{"missing photographer", func(r *Request) { r.PhotographerID = "" }},
		{"missing event type", func(r *Request) { r.EventType = "" }},
		{"missing location", func(r *Request) { r.EventLocation = "" }},
		{"zero amount", func(r *Request) { r.TotalAmount = 0 }},
		{"negative deposit", func(r *Request) { r.DepositAmount = -10 }},
		{"deposit above total", func(r *Request) { r.DepositAmount = r.TotalAmount + 1 }},
		{"duration hint too small", func(r *Request) { r.DurationHint = ptr.Ptr(0) }},
		{"duration hint too large", func(r *Request) { r.DurationHint = ptr.Ptr(25) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateBooking_ClientNotFound(t *testing.T) {
	repo := &fakeRepo{createFn: echoCreate, countConfirmedFn: noConfirmed}
	client := &fakeProfileClient{clientErr: profileservice.ErrClientNotFound}

	uc := NewUseCase(repo, client, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCreateBooking_PhotographerNotFound(t *testing.T) {
	repo := &fakeRepo{createFn: echoCreate, countConfirmedFn: noConfirmed}
	client := &fakeProfileClient{photographerErr: profileservice.ErrPhotographerNotFound}

	uc := NewUseCase(repo, client, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPhotographerNotFound)
}

func TestCreateBooking_ProfileServiceDegraded(t *testing.T) {
	repo := &fakeRepo{createFn: echoCreate, countConfirmedFn: noConfirmed}
	client := &fakeProfileClient{
		clientErr:       profileservice.ErrServiceDegraded,
		photographerErr: profileservice.ErrServiceDegraded,
	}

	uc := NewUseCase(repo, client, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	// Недоступность ProfileService не блокирует создание заявки
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestCreateBooking_RepoFailure(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			return nil, errors.New("insert failed")
		},
		countConfirmedFn: noConfirmed,
	}

	uc := NewUseCase(repo, &fakeProfileClient{}, newFakeNotifier(), domain.DefaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
