package domain

// Ограничения публикации турнос
const (
	MinTurnoCapacity = 1
	MaxTurnoCapacity = 500
)

// Ограничения на пользовательские данные
const (
	MaxNameLength        = 120
	MaxAddressLength     = 255
	MaxDescriptionLength = 2000
	MaxPaymentTitleLen   = 256
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
