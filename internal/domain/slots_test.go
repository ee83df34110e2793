package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velumi/NailStudio-Backend/pkg/types"
)

func testSlotTimes() *SlotTimes {
	return &SlotTimes{
		ID: DefaultSlotTimesID,
		Times: [SlotsPerDay]types.TimeString{
			"09:00", "11:00", "13:00", "15:00", "17:00",
		},
	}
}

func TestSlotColumnIsValid(t *testing.T) {
	for _, col := range SlotColumns {
		assert.True(t, col.IsValid())
	}
	assert.False(t, SlotColumn("sixth_app").IsValid())
	assert.False(t, SlotColumn("").IsValid())
	// Защита от инъекции в имя колонки
	assert.False(t, SlotColumn("first_app; DROP TABLE workday").IsValid())
}

func TestSlotTimesColumnFor(t *testing.T) {
	st := testSlotTimes()

	col, ok := st.ColumnFor("13:00")
	assert.True(t, ok)
	assert.Equal(t, SlotThird, col)

	// Секунды отбрасываются при сопоставлении
	col, ok = st.ColumnFor("09:00:00")
	assert.True(t, ok)
	assert.Equal(t, SlotFirst, col)

	_, ok = st.ColumnFor("10:00")
	assert.False(t, ok)
}

func TestSlotTimesTimeFor(t *testing.T) {
	st := testSlotTimes()

	ts, ok := st.TimeFor(SlotFifth)
	assert.True(t, ok)
	assert.Equal(t, types.TimeString("17:00"), ts)

	_, ok = st.TimeFor(SlotColumn("nope"))
	assert.False(t, ok)
}

func TestSlotTimesHasDistinctTimes(t *testing.T) {
	assert.True(t, testSlotTimes().HasDistinctTimes())

	dup := testSlotTimes()
	dup.Times[4] = "09:00:30" // совпадает с первым после усечения
	assert.False(t, dup.HasDistinctTimes())
}

func TestDayOverrideDefaults(t *testing.T) {
	override := NewDefaultDayOverride(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	for _, col := range SlotColumns {
		assert.True(t, override.IsOpen(col))
	}

	override.Open[SlotSecond] = false
	assert.False(t, override.IsOpen(SlotSecond))
	assert.True(t, override.IsOpen(SlotFirst))

	// Отсутствующие флаги считаются открытыми
	var nilOverride *DayOverride
	assert.True(t, nilOverride.IsOpen(SlotFirst))
}
