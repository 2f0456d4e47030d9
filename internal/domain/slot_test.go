package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog, 10)
	assert.Equal(t, types.SlotTime("9:00 AM"), catalog[0].Time)
	assert.Equal(t, types.SlotTime("6:00 PM"), catalog[9].Time)

	// Ценовые уровни: утро 150, день 175, вечер 200
	for _, slot := range catalog[:3] {
		assert.Equal(t, MorningSlotPrice, slot.BasePrice, "slot %s", slot.Time)
	}
	for _, slot := range catalog[3:7] {
		assert.Equal(t, AfternoonSlotPrice, slot.BasePrice, "slot %s", slot.Time)
	}
	for _, slot := range catalog[7:] {
		assert.Equal(t, EveningSlotPrice, slot.BasePrice, "slot %s", slot.Time)
	}
}

func TestDefaultCatalog_ReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()
	catalog[0].BasePrice = 999

	assert.Equal(t, MorningSlotPrice, DefaultCatalog()[0].BasePrice)
}

func TestCatalog_SlotByTime(t *testing.T) {
	catalog := DefaultCatalog()

	slot, ok := catalog.SlotByTime("12:00 PM")
	require.True(t, ok)
	assert.Equal(t, 4, slot.ID)
	assert.Equal(t, AfternoonSlotPrice, slot.BasePrice)

	_, ok = catalog.SlotByTime("7:00 PM")
	assert.False(t, ok)

	// Сопоставление строгое: неканоничная запись не совпадает со слотом
	_, ok = catalog.SlotByTime("12:00 pm")
	assert.False(t, ok)
}

func TestCatalog_Contains(t *testing.T) {
	catalog := DefaultCatalog()

	assert.True(t, catalog.Contains("9:00 AM"))
	assert.True(t, catalog.Contains("6:00 PM"))
	assert.False(t, catalog.Contains("8:00 AM"))
	assert.False(t, catalog.Contains(""))
}

func TestCatalog_Times(t *testing.T) {
	catalog := Catalog{
		{ID: 1, Time: "9:00 AM", BasePrice: 150},
		{ID: 2, Time: "1:00 PM", BasePrice: 175},
	}

	assert.Equal(t, []types.SlotTime{"9:00 AM", "1:00 PM"}, catalog.Times())
}
