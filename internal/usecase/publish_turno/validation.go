package publish_turno

import (
	"fmt"
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.PlaceID <= 0 {
		return fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Capacity < domain.MinTurnoCapacity || req.Capacity > domain.MaxTurnoCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d, got %d",
			ErrInvalidCapacity, domain.MinTurnoCapacity, domain.MaxTurnoCapacity, req.Capacity)
	}

	return nil
}

// validateNotInPast проверяет, что начало турно позже текущего момента
func validateNotInPast(dateTime, now time.Time) error {
	if !dateTime.After(now) {
		return fmt.Errorf("%w: %s", ErrDateInPast, dateTime.Format(time.RFC3339))
	}
	return nil
}
