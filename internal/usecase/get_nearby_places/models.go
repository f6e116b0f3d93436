package get_nearby_places

import (
	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/pkg/geo"
)

// Request модель запроса списка заведений
// Если координаты не заданы, точкой отсчета служит сохраненная точка пользователя (если он известен)
type Request struct {
	UserID   string   // опционально, из токена
	Lat      *float64 // опционально, вместе с Lng
	Lng      *float64
	Category *string // опционально, из каталога
}

// RankedPlace заведение с расстоянием до точки отсчета
type RankedPlace struct {
	Place      *domain.Place
	DistanceKm *float64 // nil, если у заведения нет координат или нет точки отсчета
}

// Response упорядоченный список заведений
type Response struct {
	Origin *geo.Point
	Places []RankedPlace
}
