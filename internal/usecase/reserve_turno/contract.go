package reserve_turno

import (
	"context"
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/pkg/types"
)

// TurnoRepository интерфейс репозитория турнос
type TurnoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turno, error)
	FindAvailable(ctx context.Context, placeID int64, date time.Time, at types.TimeString) (*domain.Turno, error)
	DecrementAvailable(ctx context.Context, id int64) error
	AddReservation(ctx context.Context, turnoID int64, userID string) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TurnoPublisher рассылка изменений турно подписчикам
type TurnoPublisher interface {
	PublishTurnoUpdated(turno *domain.Turno)
}

// Metrics счетчик исходов резервирования
type Metrics interface {
	IncReservation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
