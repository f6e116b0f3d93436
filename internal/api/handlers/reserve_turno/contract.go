package reserve_turno

import (
	"context"

	reserveTurno "github.com/m04kA/TurnIt/internal/usecase/reserve_turno"
)

type ReserveTurnoUseCase interface {
	Execute(ctx context.Context, req *reserveTurno.Request) (*reserveTurno.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
