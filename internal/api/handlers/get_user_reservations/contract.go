package get_user_reservations

import (
	"context"

	"github.com/m04kA/TurnIt/internal/service/turnos/models"
)

type TurnoService interface {
	ListByUser(ctx context.Context, userID string) (*models.TurnoListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
