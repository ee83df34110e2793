package domain

import (
	"time"

	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// SlotColumn имя колонки слота в таблицах workday / day_overrides / slot_times
// Пять фиксированных дневных слотов, first..fifth.
type SlotColumn string

const (
	SlotFirst  SlotColumn = "first_app"
	SlotSecond SlotColumn = "second_app"
	SlotThird  SlotColumn = "third_app"
	SlotFourth SlotColumn = "fourth_app"
	SlotFifth  SlotColumn = "fifth_app"
)

// SlotColumns канонический порядок слотов
var SlotColumns = [SlotsPerDay]SlotColumn{
	SlotFirst,
	SlotSecond,
	SlotThird,
	SlotFourth,
	SlotFifth,
}

// IsValid проверяет, что имя слота является одним из пяти допустимых
func (c SlotColumn) IsValid() bool {
	for _, col := range SlotColumns {
		if col == c {
			return true
		}
	}
	return false
}

// SlotTimes конфигурация времён пяти дневных слотов
// Ключ - небольшой целочисленный id конфигурации (по умолчанию 1).
type SlotTimes struct {
	ID        int64
	Times     [SlotsPerDay]types.TimeString // в каноническом порядке first..fifth
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ColumnFor возвращает колонку слота для времени "HH:MM"
// Второе возвращаемое значение false, если время не сконфигурировано.
func (s *SlotTimes) ColumnFor(t types.TimeString) (SlotColumn, bool) {
	hm := t.HM()
	for i, configured := range s.Times {
		if configured.HM() == hm {
			return SlotColumns[i], true
		}
	}
	return "", false
}

// TimeFor возвращает сконфигурированное время для колонки слота
func (s *SlotTimes) TimeFor(col SlotColumn) (types.TimeString, bool) {
	for i, c := range SlotColumns {
		if c == col {
			return s.Times[i], true
		}
	}
	return "", false
}

// HasDistinctTimes проверяет, что все пять времён различны
// после усечения до минут
func (s *SlotTimes) HasDistinctTimes() bool {
	seen := make(map[types.TimeString]struct{}, SlotsPerDay)
	for _, t := range s.Times {
		seen[t.HM()] = struct{}{}
	}
	return len(seen) == SlotsPerDay
}
