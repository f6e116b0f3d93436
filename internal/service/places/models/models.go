package models

import (
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
)

// Request модели

// RegisterPlaceRequest запрос на регистрацию заведения
type RegisterPlaceRequest struct {
	UserID      string   `json:"-"` // subject из токена, становится владельцем
	Name        string   `json:"name" validate:"required,max=120"`
	Address     string   `json:"address" validate:"required,max=255"`
	Description string   `json:"description" validate:"max=2000"`
	PhotoURL    string   `json:"photoUrl" validate:"omitempty,url"`
	Categories  []string `json:"categories" validate:"required,min=1,dive,required"`
	StaffIDs    []string `json:"staffIds" validate:"dive,required"`
}

// Response модели

// LocationResponse координаты
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceResponse данные заведения
type PlaceResponse struct {
	ID          int64             `json:"id"`
	OwnerID     string            `json:"ownerId"`
	StaffIDs    []string          `json:"staffIds"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Location    *LocationResponse `json:"location,omitempty"`
	Description string            `json:"description"`
	PhotoURL    string            `json:"photoUrl,omitempty"`
	Categories  []string          `json:"categories"`
	DistanceKm  *float64          `json:"distanceKm,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// PlaceListResponse ответ со списком заведений
type PlaceListResponse struct {
	Places []PlaceResponse `json:"places"`
}

// FromDomainPlace конвертирует domain модель в DTO
func FromDomainPlace(p *domain.Place) *PlaceResponse {
	if p == nil {
		return nil
	}

	resp := &PlaceResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		StaffIDs:    p.StaffIDs,
		Name:        p.Name,
		Address:     p.Address,
		Description: p.Description,
		PhotoURL:    p.PhotoURL,
		Categories:  make([]string, 0, len(p.Categories)),
		CreatedAt:   p.CreatedAt,
	}

	if resp.StaffIDs == nil {
		resp.StaffIDs = []string{}
	}

	for _, c := range p.Categories {
		resp.Categories = append(resp.Categories, string(c))
	}

	if p.Location != nil {
		resp.Location = &LocationResponse{Lat: p.Location.Lat, Lng: p.Location.Lng}
	}

	return resp
}
