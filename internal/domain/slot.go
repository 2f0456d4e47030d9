package domain

import "github.com/m04kA/SMC-PhotographerService/pkg/types"

// Slot represents a bookable time-of-day unit with a fixed base price
type Slot struct {
	ID        int
	Time      types.SlotTime
	BasePrice float64
}

// AvailabilitySlot is a catalog slot annotated with its availability for a
// given photographer and date. Computed per request from confirmed bookings
// only, never cached.
type AvailabilitySlot struct {
	Slot
	Available bool
}

// Catalog фиксированный упорядоченный список слотов на день.
// Меняется только через конфигурацию при деплое, не в рантайме.
type Catalog []Slot

// defaultCatalog десять слотов в трёх ценовых уровнях:
// утро 150, день 175, вечер 200.
var defaultCatalog = Catalog{
	{ID: 1, Time: "9:00 AM", BasePrice: MorningSlotPrice},
	{ID: 2, Time: "10:00 AM", BasePrice: MorningSlotPrice},
	{ID: 3, Time: "11:00 AM", BasePrice: MorningSlotPrice},
	{ID: 4, Time: "12:00 PM", BasePrice: AfternoonSlotPrice},
	{ID: 5, Time: "1:00 PM", BasePrice: AfternoonSlotPrice},
	{ID: 6, Time: "2:00 PM", BasePrice: AfternoonSlotPrice},
	{ID: 7, Time: "3:00 PM", BasePrice: AfternoonSlotPrice},
	{ID: 8, Time: "4:00 PM", BasePrice: EveningSlotPrice},
	{ID: 9, Time: "5:00 PM", BasePrice: EveningSlotPrice},
	{ID: 10, Time: "6:00 PM", BasePrice: EveningSlotPrice},
}

// DefaultCatalog returns a copy of the built-in slot table.
func DefaultCatalog() Catalog {
	out := make(Catalog, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// Contains reports whether t matches one of the catalog slots.
func (c Catalog) Contains(t types.SlotTime) bool {
	_, ok := c.SlotByTime(t)
	return ok
}

// SlotByTime returns the catalog slot with the given time label.
func (c Catalog) SlotByTime(t types.SlotTime) (Slot, bool) {
	for _, s := range c {
		if s.Time == t {
			return s, true
		}
	}
	return Slot{}, false
}

// Times returns the ordered slot time labels.
func (c Catalog) Times() []types.SlotTime {
	out := make([]types.SlotTime, len(c))
	for i, s := range c {
		out[i] = s.Time
	}
	return out
}
