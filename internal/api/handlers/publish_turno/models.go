package publish_turno

import (
	"fmt"
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
	publishTurno "github.com/m04kA/TurnIt/internal/usecase/publish_turno"
	"github.com/m04kA/TurnIt/pkg/types"
)

// PublishTurnoRequest HTTP запрос на публикацию турно
type PublishTurnoRequest struct {
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Capacity int    `json:"capacity"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *PublishTurnoRequest) ToUseCaseRequest(userID string, placeID int64) (*publishTurno.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	at, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &publishTurno.Request{
		UserID:   userID,
		PlaceID:  placeID,
		Date:     date,
		Time:     at,
		Capacity: r.Capacity,
	}, nil
}

// TurnoResponse опубликованное турно
type TurnoResponse struct {
	ID             int64     `json:"id"`
	PlaceID        int64     `json:"placeId"`
	PlaceName      string    `json:"placeName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	DateTime       time.Time `json:"dateTime"`
	Slots          int       `json:"slots"`
	SlotsAvailable int       `json:"slotsAvailable"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *publishTurno.Response) *TurnoResponse {
	return &TurnoResponse{
		ID:             resp.ID,
		PlaceID:        resp.PlaceID,
		PlaceName:      resp.PlaceName,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.Time.String(),
		DateTime:       resp.DateTime,
		Slots:          resp.Slots,
		SlotsAvailable: resp.SlotsAvailable,
		CreatedAt:      resp.CreatedAt,
	}
}
