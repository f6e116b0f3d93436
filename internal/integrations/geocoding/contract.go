package geocoding

import (
	"context"

	"github.com/m04kA/TurnIt/internal/domain"
)

// Geocoder преобразует адрес в точку; nil без ошибки означает "адрес не найден"
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.Location, error)
}

type CacheMetrics interface {
	IncGeocodeCache(result string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
