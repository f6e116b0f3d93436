package users

import (
	"context"

	"github.com/m04kA/TurnIt/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	AddFavorite(ctx context.Context, userID string, placeID int64) error
	RemoveFavorite(ctx context.Context, userID string, placeID int64) error
}

// PlaceRepository интерфейс репозитория заведений
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
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
