package get_nearby_places

import (
	"sort"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/pkg/geo"
)

// RankPlaces упорядочивает заведения по расстоянию от origin
//
// Порядок полный и детерминированный:
//   - сначала заведения с координатами по возрастанию расстояния
//   - затем без координат (или все, если origin == nil) по имени
//   - равенство разрешается именем (побайтово), затем ID
func RankPlaces(places []*domain.Place, origin *geo.Point) []RankedPlace {
	ranked := make([]RankedPlace, 0, len(places))
	for _, p := range places {
		rp := RankedPlace{Place: p}
		if origin != nil && p.Location != nil {
			point := geo.Point{Lat: p.Location.Lat, Lng: p.Location.Lng}
			if point.Valid() {
				d := geo.DistanceKm(*origin, point)
				rp.DistanceKm = &d
			}
		}
		ranked = append(ranked, rp)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		switch {
		case a.DistanceKm != nil && b.DistanceKm == nil:
			return true
		case a.DistanceKm == nil && b.DistanceKm != nil:
			return false
		case a.DistanceKm != nil && *a.DistanceKm != *b.DistanceKm:
			return *a.DistanceKm < *b.DistanceKm
		}
		if a.Place.Name != b.Place.Name {
			return a.Place.Name < b.Place.Name
		}
		return a.Place.ID < b.Place.ID
	})

	return ranked
}
