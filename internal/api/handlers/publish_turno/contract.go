package publish_turno

import (
	"context"

	publishTurno "github.com/m04kA/TurnIt/internal/usecase/publish_turno"
)

type PublishTurnoUseCase interface {
	Execute(ctx context.Context, req *publishTurno.Request) (*publishTurno.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
