package list_places

import (
	"github.com/m04kA/TurnIt/internal/service/places/models"
	getNearbyPlaces "github.com/m04kA/TurnIt/internal/usecase/get_nearby_places"
)

// OriginResponse точка отсчета расстояний
type OriginResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ListPlacesResponse упорядоченный список заведений
type ListPlacesResponse struct {
	Origin *OriginResponse        `json:"origin,omitempty"`
	Places []models.PlaceResponse `json:"places"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getNearbyPlaces.Response) *ListPlacesResponse {
	out := &ListPlacesResponse{Places: make([]models.PlaceResponse, 0, len(resp.Places))}

	if resp.Origin != nil {
		out.Origin = &OriginResponse{Lat: resp.Origin.Lat, Lng: resp.Origin.Lng}
	}

	for _, ranked := range resp.Places {
		place := models.FromDomainPlace(ranked.Place)
		place.DistanceKm = ranked.DistanceKm
		out.Places = append(out.Places, *place)
	}

	return out
}
