package get_slot_catalog

import (
	"github.com/m04kA/SMC-PhotographerService/internal/domain"
)

// SlotCatalogResponse HTTP response model
type SlotCatalogResponse struct {
	Slots []Slot `json:"slots"`
}

// Slot модель слота каталога
type Slot struct {
	ID        int     `json:"id"`
	Time      string  `json:"time"`
	BasePrice float64 `json:"basePrice"`
}

// FromDomainCatalog конвертирует каталог слотов в HTTP response
func FromDomainCatalog(catalog domain.Catalog) *SlotCatalogResponse {
	slots := make([]Slot, len(catalog))
	for i, slot := range catalog {
		slots[i] = Slot{
			ID:        slot.ID,
			Time:      string(slot.Time),
			BasePrice: slot.BasePrice,
		}
	}
	return &SlotCatalogResponse{Slots: slots}
}
