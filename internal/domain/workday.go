package domain

import "time"

// Workday строка реестра занятости на одну дату
// В каждой ячейке - отображаемое имя занявшего слот (клиента или
// администратора при блокировке), пустая строка - слот свободен.
type Workday struct {
	Date  time.Time
	Cells map[SlotColumn]string
}

// IsTaken проверяет, что ячейка слота занята
func (w *Workday) IsTaken(col SlotColumn) bool {
	if w == nil || w.Cells == nil {
		return false
	}
	return w.Cells[col] != ""
}

// DayOverride флаги доступности слотов на дату, управляемые менеджером
// Отсутствующая строка семантически эквивалентна "все открыты":
// дефолты материализуются при первом чтении.
type DayOverride struct {
	Date time.Time
	Open map[SlotColumn]bool
}

// NewDefaultDayOverride возвращает флаги по умолчанию (все слоты открыты)
func NewDefaultDayOverride(date time.Time) *DayOverride {
	open := make(map[SlotColumn]bool, SlotsPerDay)
	for _, col := range SlotColumns {
		open[col] = true
	}
	return &DayOverride{Date: date, Open: open}
}

// IsOpen проверяет, что слот открыт для обычных клиентов
func (d *DayOverride) IsOpen(col SlotColumn) bool {
	if d == nil || d.Open == nil {
		return true
	}
	open, ok := d.Open[col]
	if !ok {
		return true
	}
	return open
}
