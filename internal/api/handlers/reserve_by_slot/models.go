package reserve_by_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
	reserveTurno "github.com/m04kA/TurnIt/internal/usecase/reserve_turno"
	"github.com/m04kA/TurnIt/pkg/types"
)

// ReserveBySlotRequest HTTP запрос на резервирование по дате и времени
type ReserveBySlotRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *ReserveBySlotRequest) ToUseCaseRequest(userID string, placeID int64) (*reserveTurno.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	at, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &reserveTurno.Request{
		UserID:  userID,
		PlaceID: placeID,
		Date:    date,
		Time:    at,
	}, nil
}
