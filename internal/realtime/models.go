package realtime

import (
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
)

// EventTurnoUpdated тип события изменения турно
const EventTurnoUpdated = "turno.updated"

// Event сообщение, отправляемое подписчикам
type Event struct {
	Type  string       `json:"type"`
	Turno TurnoPayload `json:"turno"`
}

// TurnoPayload публичное представление турно (без идентификаторов держателей мест)
type TurnoPayload struct {
	ID             int64     `json:"id"`
	PlaceID        int64     `json:"placeId"`
	PlaceName      string    `json:"placeName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	DateTime       time.Time `json:"dateTime"`
	Slots          int       `json:"slots"`
	SlotsAvailable int       `json:"slotsAvailable"`
}

// NewTurnoUpdated собирает событие из доменной модели
func NewTurnoUpdated(turno *domain.Turno) Event {
	return Event{
		Type: EventTurnoUpdated,
		Turno: TurnoPayload{
			ID:             turno.ID,
			PlaceID:        turno.PlaceID,
			PlaceName:      turno.PlaceName,
			Date:           turno.Date.Format(domain.DateFormat),
			Time:           turno.Time.String(),
			DateTime:       turno.DateTime,
			Slots:          turno.Slots,
			SlotsAvailable: turno.SlotsAvailable,
		},
	}
}
