package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TurnIt/pkg/types"
)

// ErrTurnoInvariant возвращается, если состояние турно нарушает инварианты емкости
var ErrTurnoInvariant = errors.New("domain: turno capacity invariant violated")

// Turno опубликованный временной слот заведения с конечной емкостью
//
// Инварианты:
//   - 0 <= SlotsAvailable <= Slots
//   - SlotsAvailable == Slots - len(Reservations)
type Turno struct {
	ID             int64
	PlaceID        int64
	PlaceName      string // денормализовано из places
	Date           time.Time
	Time           types.TimeString
	DateTime       time.Time
	Slots          int
	SlotsAvailable int
	Reservations   []string // user ID держателей, по порядку бронирования
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsFull возвращает true, если свободных мест нет
func (t *Turno) IsFull() bool {
	return t.SlotsAvailable <= 0
}

// ReservedCount количество занятых мест
func (t *Turno) ReservedCount() int {
	return len(t.Reservations)
}

// HasReservation проверяет, держит ли пользователь место в турно
func (t *Turno) HasReservation(userID string) bool {
	for _, id := range t.Reservations {
		if id == userID {
			return true
		}
	}
	return false
}

// Validate проверяет инварианты емкости
func (t *Turno) Validate() error {
	if t.SlotsAvailable < 0 || t.SlotsAvailable > t.Slots {
		return fmt.Errorf("%w: slotsAvailable=%d slots=%d", ErrTurnoInvariant, t.SlotsAvailable, t.Slots)
	}
	if t.SlotsAvailable != t.Slots-len(t.Reservations) {
		return fmt.Errorf("%w: slotsAvailable=%d slots=%d reservations=%d",
			ErrTurnoInvariant, t.SlotsAvailable, t.Slots, len(t.Reservations))
	}
	return nil
}

// Reservation одно занятое место в турно
type Reservation struct {
	ID        int64
	TurnoID   int64
	UserID    string
	CreatedAt time.Time
}

// TurnosFilter фильтр списка турнос заведения
type TurnosFilter struct {
	PlaceID       int64      // обязательный
	Date          *time.Time // опционально, конкретная дата
	OnlyAvailable bool       // только турнос со свободными местами
}
