package get_turno

import (
	"context"

	"github.com/m04kA/TurnIt/internal/service/turnos/models"
)

type TurnoService interface {
	GetByID(ctx context.Context, id int64, viewerID string) (*models.TurnoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
