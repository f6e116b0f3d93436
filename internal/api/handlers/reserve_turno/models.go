package reserve_turno

import (
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
	reserveTurno "github.com/m04kA/TurnIt/internal/usecase/reserve_turno"
)

// ReservationResponse занятое место и состояние турно
type ReservationResponse struct {
	ReservationID  int64     `json:"reservationId"`
	TurnoID        int64     `json:"turnoId"`
	PlaceID        int64     `json:"placeId"`
	PlaceName      string    `json:"placeName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	DateTime       time.Time `json:"dateTime"`
	Slots          int       `json:"slots"`
	SlotsAvailable int       `json:"slotsAvailable"`
	ReservedAt     time.Time `json:"reservedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *reserveTurno.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationID:  resp.ReservationID,
		TurnoID:        resp.TurnoID,
		PlaceID:        resp.PlaceID,
		PlaceName:      resp.PlaceName,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.Time.String(),
		DateTime:       resp.DateTime,
		Slots:          resp.Slots,
		SlotsAvailable: resp.SlotsAvailable,
		ReservedAt:     resp.ReservedAt,
	}
}
