package publish_turno

import (
	"context"
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
)

// PlaceRepository интерфейс репозитория заведений
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// TurnoRepository интерфейс репозитория турнос
type TurnoRepository interface {
	Create(ctx context.Context, turno *domain.Turno) (*domain.Turno, error)
}

// TurnoPublisher рассылка изменений турно подписчикам
type TurnoPublisher interface {
	PublishTurnoUpdated(turno *domain.Turno)
}

// Metrics счетчик исходов публикации
type Metrics interface {
	IncReservation(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
