package cancel_reservation

import (
	"time"

	"github.com/m04kA/TurnIt/pkg/types"
)

// Request модель запроса на отмену брони
type Request struct {
	UserID  string // subject из токена
	TurnoID int64
}

// Response состояние турно после отмены
type Response struct {
	TurnoID        int64
	PlaceID        int64
	PlaceName      string
	Date           time.Time
	Time           types.TimeString
	DateTime       time.Time
	Slots          int
	SlotsAvailable int
}
