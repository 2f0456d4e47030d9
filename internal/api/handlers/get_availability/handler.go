package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotographerService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-PhotographerService/internal/usecase/get_availability"
)

const (
	msgMissingPhotographerID = "отсутствует ID фотографа"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput          = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/photographers/{photographerId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	photographerID := vars["photographerId"]
	if photographerID == "" {
		h.logger.Warn("GET /photographers/{id}/availability - Missing photographer ID")
		handlers.RespondBadRequest(w, msgMissingPhotographerID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /photographers/{id}/availability - Missing date: photographer_id=%s", photographerID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(photographerID, dateStr)
	if err != nil {
		h.logger.Warn("GET /photographers/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /photographers/{id}/availability - Invalid input: photographer_id=%s, error=%v",
				photographerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /photographers/{id}/availability - Failed to get availability: photographer_id=%s, date=%s, error=%v",
				photographerID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /photographers/{id}/availability - Availability retrieved successfully: photographer_id=%s, date=%s, slots_count=%d",
		photographerID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
