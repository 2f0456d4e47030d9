package get_availability

import (
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	getAvailability "github.com/m04kA/SMC-PhotographerService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PhotographerID string             `json:"photographerId"`
	Date           string             `json:"date"`
	Slots          []AvailabilitySlot `json:"slots"`
}

// AvailabilitySlot слот каталога с признаком доступности
type AvailabilitySlot struct {
	ID        int     `json:"id"`
	Time      string  `json:"time"`
	BasePrice float64 `json:"basePrice"`
	Available bool    `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]AvailabilitySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailabilitySlot{
			ID:        slot.ID,
			Time:      string(slot.Time),
			BasePrice: slot.BasePrice,
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{
		PhotographerID: resp.PhotographerID,
		Date:           resp.Date,
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(photographerID, dateStr string) (getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return getAvailability.Request{}, err
	}

	return getAvailability.Request{
		PhotographerID: photographerID,
		Date:           date,
	}, nil
}
