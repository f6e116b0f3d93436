package turnos

import (
	"context"

	"github.com/m04kA/TurnIt/internal/domain"
)

// TurnoRepository интерфейс чтения турнос
type TurnoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turno, error)
	List(ctx context.Context, filter domain.TurnosFilter) ([]*domain.Turno, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Turno, error)
}

// PlaceRepository интерфейс репозитория заведений
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// TxManager интерфейс для чтения в одной транзакции
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
