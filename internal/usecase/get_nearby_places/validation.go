package get_nearby_places

import (
	"fmt"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/pkg/geo"
)

// validateRequest валидирует входные данные и возвращает явную точку отсчета (если задана)
func validateRequest(req *Request) (*geo.Point, *domain.Category, error) {
	if (req.Lat == nil) != (req.Lng == nil) {
		return nil, nil, fmt.Errorf("%w: lat and lng must be provided together", ErrInvalidInput)
	}

	var origin *geo.Point
	if req.Lat != nil {
		p := geo.Point{Lat: *req.Lat, Lng: *req.Lng}
		if !p.Valid() {
			return nil, nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
		}
		origin = &p
	}

	var category *domain.Category
	if req.Category != nil && *req.Category != "" {
		c := domain.Category(*req.Category)
		if !c.IsValid() {
			return nil, nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *req.Category)
		}
		category = &c
	}

	return origin, category, nil
}
