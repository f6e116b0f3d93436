package publish_turno

import (
	"time"

	"github.com/m04kA/TurnIt/pkg/types"
)

// Request модель запроса на публикацию турно
type Request struct {
	UserID   string           // subject из токена, владелец или сотрудник
	PlaceID  int64            // ID заведения
	Date     time.Time        // Дата (без времени)
	Time     types.TimeString // Время начала "HH:MM"
	Capacity int              // Количество мест
}

// Response модель опубликованного турно
type Response struct {
	ID             int64
	PlaceID        int64
	PlaceName      string
	Date           time.Time
	Time           types.TimeString
	DateTime       time.Time
	Slots          int
	SlotsAvailable int
	CreatedAt      time.Time
}
