package cancel_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.TurnoID <= 0 {
		return fmt.Errorf("%w: turnoID must be positive", ErrInvalidInput)
	}

	return nil
}
