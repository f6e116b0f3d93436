package places

import (
	"context"

	"github.com/m04kA/TurnIt/internal/domain"
)

// PlaceRepository интерфейс репозитория заведений
type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Geocoder геокодер адресов; nil без ошибки = адрес не найден
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.Location, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
