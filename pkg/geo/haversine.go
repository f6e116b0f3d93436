package geo

import "math"

// EarthRadiusKm средний радиус Земли, км
const EarthRadiusKm = 6371.0

// Point географическая точка в градусах
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm расстояние по дуге большого круга между a и b (формула гаверсинусов)
func DistanceKm(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// погрешность float может дать h чуть больше 1
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Valid проверяет, что координаты в допустимых пределах
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180 &&
		!math.IsNaN(p.Lat) && !math.IsNaN(p.Lng)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
