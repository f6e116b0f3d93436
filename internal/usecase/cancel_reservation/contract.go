package cancel_reservation

import (
	"context"

	"github.com/m04kA/TurnIt/internal/domain"
)

// TurnoRepository интерфейс репозитория турнос
type TurnoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turno, error)
	RemoveReservation(ctx context.Context, turnoID int64, userID string) error
	IncrementAvailable(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TurnoPublisher рассылка изменений турно подписчикам
type TurnoPublisher interface {
	PublishTurnoUpdated(turno *domain.Turno)
}

// Metrics счетчик исходов отмены
type Metrics interface {
	IncReservation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
