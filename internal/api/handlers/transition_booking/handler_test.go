package transition_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotographerService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	transitionBooking "github.com/m04kA/SMC-PhotographerService/internal/usecase/transition_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp    *transitionBooking.Response
	err     error
	lastReq *transitionBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *transitionBooking.Request) (*transitionBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newRouter(uc TransitionBookingUseCase) *mux.Router {
	handler := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(nopLogger{}))
	protected.HandleFunc("/bookings/{bookingId}/status", handler.Handle).Methods(http.MethodPatch)
	return r
}

func doRequest(t *testing.T, uc TransitionBookingUseCase, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/b1/status", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)
	return rec
}

func photographerHeaders() map[string]string {
	return map[string]string{
		middleware.HeaderUserID:   "photographer-1",
		middleware.HeaderUserRole: "photographer",
	}
}

func TestHandler_ConfirmSuccess(t *testing.T) {
	uc := &fakeUseCase{resp: &transitionBooking.Response{
		ID:             "b1",
		ClientID:       "client-1",
		PhotographerID: "photographer-1",
		EventDate:      time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		EventTime:      "10:00 AM",
		Status:         string(domain.StatusConfirmed),
	}}

	rec := doRequest(t, uc, `{"status":"confirmed"}`, photographerHeaders())

	require.Equal(t, http.StatusOK, rec.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, "2026-10-15", body.EventDate)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "b1", uc.lastReq.BookingID)
	assert.Equal(t, domain.StatusConfirmed, uc.lastReq.TargetStatus)
	assert.Equal(t, domain.Actor{UserID: "photographer-1", Role: domain.RolePhotographer}, uc.lastReq.Actor)
}

func TestHandler_SlotTakenConflict(t *testing.T) {
	uc := &fakeUseCase{err: transitionBooking.ErrSlotTaken}

	rec := doRequest(t, uc, `{"status":"confirmed"}`, photographerHeaders())

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_InvalidTransitionConflict(t *testing.T) {
	uc := &fakeUseCase{err: transitionBooking.ErrInvalidTransition}

	rec := doRequest(t, uc, `{"status":"declined"}`, photographerHeaders())

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_AccessDenied(t *testing.T) {
	uc := &fakeUseCase{err: transitionBooking.ErrAccessDenied}

	rec := doRequest(t, uc, `{"status":"confirmed"}`, map[string]string{
		middleware.HeaderUserID:   "photographer-2",
		middleware.HeaderUserRole: "photographer",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_NotFound(t *testing.T) {
	uc := &fakeUseCase{err: transitionBooking.ErrBookingNotFound}

	rec := doRequest(t, uc, `{"status":"confirmed"}`, photographerHeaders())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_RejectsCancelledTarget(t *testing.T) {
	uc := &fakeUseCase{}

	// Отмена идёт отдельным эндпоинтом, здесь только confirmed/declined
	rec := doRequest(t, uc, `{"status":"cancelled"}`, photographerHeaders())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandler_MissingUserHeader(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"status":"confirmed"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{not json`, photographerHeaders())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
