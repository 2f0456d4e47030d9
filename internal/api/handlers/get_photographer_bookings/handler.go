package get_photographer_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotographerService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotographerService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotographerService/internal/service/bookings"
)

const (
	msgMissingPhotographerID = "отсутствует ID фотографа"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidQueryParams    = "некорректные параметры фильтрации"
	msgInvalidStatus         = "некорректный статус бронирования"
	msgForbidden             = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/photographers/{photographerId}/bookings
// Query params: date, startDate, endDate, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	photographerID := vars["photographerId"]
	if photographerID == "" {
		h.logger.Warn("GET /photographers/{id}/bookings - Missing photographer ID")
		handlers.RespondBadRequest(w, msgMissingPhotographerID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /photographers/{id}/bookings - Missing user in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := ToServiceRequest(photographerID, actor, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /photographers/{id}/bookings - Invalid query params: photographer_id=%s, error=%v",
			photographerID, err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.service.GetPhotographerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /photographers/{id}/bookings - Access denied: photographer_id=%s, user_id=%s",
				photographerID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /photographers/{id}/bookings - Invalid status filter: photographer_id=%s", photographerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /photographers/{id}/bookings - Failed to get bookings: photographer_id=%s, error=%v",
				photographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /photographers/{id}/bookings - Bookings retrieved successfully: photographer_id=%s, count=%d",
		photographerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
