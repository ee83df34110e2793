package domain

// Количество дневных слотов
const SlotsPerDay = 5

// Ограничения длины полей записи
const (
	MaxNotesLength    = 1000
	MaxInspoImgLength = 1024
	MaxLocationLength = 255
)

// Ограничения полей пользователя
const (
	MinUserNameLength = 3
	MinPasswordLength = 6
)

// DefaultSlotTimesID id конфигурации слотов по умолчанию
const DefaultSlotTimesID = 1

// AdminHoldNote сентинельная заметка административной блокировки слота
// По ней release находит и отменяет hold-записи.
const AdminHoldNote = "admin hold via day override"

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
