package cancel_reservation

import (
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
	cancelReservation "github.com/m04kA/TurnIt/internal/usecase/cancel_reservation"
)

// TurnoStateResponse состояние турно после отмены
type TurnoStateResponse struct {
	TurnoID        int64     `json:"turnoId"`
	PlaceID        int64     `json:"placeId"`
	PlaceName      string    `json:"placeName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	DateTime       time.Time `json:"dateTime"`
	Slots          int       `json:"slots"`
	SlotsAvailable int       `json:"slotsAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *cancelReservation.Response) *TurnoStateResponse {
	return &TurnoStateResponse{
		TurnoID:        resp.TurnoID,
		PlaceID:        resp.PlaceID,
		PlaceName:      resp.PlaceName,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.Time.String(),
		DateTime:       resp.DateTime,
		Slots:          resp.Slots,
		SlotsAvailable: resp.SlotsAvailable,
	}
}
