package reserve_turno

import (
	"time"

	"github.com/m04kA/TurnIt/pkg/types"
)

// Request модель запроса на резервирование
// Либо TurnoID, либо PlaceID + Date + Time (поиск свободного турно)
type Request struct {
	UserID  string           // subject из токена
	TurnoID int64            // ID турно (прямое резервирование)
	PlaceID int64            // ID заведения (поиск)
	Date    time.Time        // Дата (поиск)
	Time    types.TimeString // Время "HH:MM" (поиск)
}

// BySearch возвращает true, если резервирование идет через поиск по месту/дате/времени
func (r *Request) BySearch() bool {
	return r.TurnoID == 0
}

// Response модель ответа с занятым местом
type Response struct {
	ReservationID  int64
	TurnoID        int64
	PlaceID        int64
	PlaceName      string
	Date           time.Time
	Time           types.TimeString
	DateTime       time.Time
	Slots          int
	SlotsAvailable int
	ReservedAt     time.Time
}
