package get_availability

import (
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

// Request запрос доступности слотов фотографа на дату
type Request struct {
	PhotographerID string
	Date           time.Time
}

// SlotAvailability слот каталога с признаком доступности
type SlotAvailability struct {
	ID        int            `json:"id"`
	Time      types.SlotTime `json:"time"`
	BasePrice float64        `json:"basePrice"`
	Available bool           `json:"available"`
}

// Response список слотов на дату в порядке каталога
type Response struct {
	PhotographerID string             `json:"photographerId"`
	Date           string             `json:"date"`
	Slots          []SlotAvailability `json:"slots"`
}

func buildResponse(photographerID string, date time.Time, catalog domain.Catalog, occupied map[types.SlotTime]struct{}) *Response {
	slots := make([]SlotAvailability, 0, len(catalog))
	for _, slot := range catalog {
		_, busy := occupied[slot.Time]
		slots = append(slots, SlotAvailability{
			ID:        slot.ID,
			Time:      slot.Time,
			BasePrice: slot.BasePrice,
			Available: !busy,
		})
	}

	return &Response{
		PhotographerID: photographerID,
		Date:           date.Format(domain.DateFormat),
		Slots:          slots,
	}
}
