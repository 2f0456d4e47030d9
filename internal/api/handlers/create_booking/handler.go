package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PhotographerService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotographerService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-PhotographerService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты события, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени слота, ожидается формат вида 10:00 AM"
	msgClientNotFound        = "клиент не найден"
	msgPhotographerNotFound  = "фотограф не найден"
	msgInvalidEventDate      = "некорректная дата события"
	msgUnknownSlot           = "выбранный слот отсутствует в каталоге"
	msgInvalidInput          = "некорректные входные данные"
	msgUnauthorized          = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if req.EventTime != "" && req.EventDate != "" {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrPhotographerNotFound):
			h.logger.Warn("POST /bookings - Photographer not found: photographer_id=%s", req.PhotographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid event date: client_id=%s, date=%s", clientID, req.EventDate)
			handlers.RespondBadRequest(w, msgInvalidEventDate)

		case errors.Is(err, createBooking.ErrUnknownSlot):
			h.logger.Warn("POST /bookings - Unknown slot: client_id=%s, time=%s", clientID, req.EventTime)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%s, photographer_id=%s, error=%v",
				clientID, req.PhotographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, client_id=%s, photographer_id=%s",
		result.ID, clientID, req.PhotographerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
