package get_nearby_places

import (
	"context"

	"github.com/m04kA/TurnIt/internal/domain"
)

// PlaceRepository интерфейс репозитория заведений
type PlaceRepository interface {
	List(ctx context.Context, filter domain.PlacesFilter) ([]*domain.Place, error)
}

// UserRepository интерфейс репозитория пользователей (точка отсчета по умолчанию)
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
