package reserve_turno

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	reserveTurno "github.com/m04kA/TurnIt/internal/usecase/reserve_turno"
)

const (
	msgTurnoNotFound     = "turno no encontrado"
	msgNoAvailability    = "no hay lugares disponibles para este turno"
	msgAlreadyReserved   = "ya tienes un lugar reservado en este turno"
	msgUserNotRegistered = "debes completar tu registro antes de reservar"
	msgInvalidInput      = "datos de reserva inválidos"
)

// RespondUseCaseError отвечает на ошибку резервирования; true, если ошибка известна
func RespondUseCaseError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, reserveTurno.ErrTurnoNotFound):
		handlers.RespondNotFound(w, msgTurnoNotFound)
	case errors.Is(err, reserveTurno.ErrNoAvailability):
		handlers.RespondConflict(w, msgNoAvailability)
	case errors.Is(err, reserveTurno.ErrAlreadyReserved):
		handlers.RespondConflict(w, msgAlreadyReserved)
	case errors.Is(err, reserveTurno.ErrUserNotRegistered):
		handlers.RespondForbidden(w, msgUserNotRegistered)
	case errors.Is(err, reserveTurno.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		return false
	}
	return true
}
