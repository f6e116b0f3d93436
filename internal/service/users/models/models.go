package models

import (
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
)

// Request модели

// RegisterUserRequest запрос на регистрацию пользователя
type RegisterUserRequest struct {
	UserID      string `json:"-"`                                        // subject из токена
	Email       string `json:"email" validate:"omitempty,email,max=254"` // по умолчанию из токена
	DisplayName string `json:"displayName" validate:"required,max=120"`
	Role        string `json:"role" validate:"omitempty,oneof=user place"` // по умолчанию из токена
	Address     string `json:"address" validate:"max=255"`
}

// Response модели

// LocationResponse координаты
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UserResponse профиль пользователя
type UserResponse struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	DisplayName      string            `json:"displayName"`
	Role             string            `json:"role"`
	Address          string            `json:"address"`
	Location         *LocationResponse `json:"location,omitempty"`
	LoyaltyPoints    int               `json:"loyaltyPoints"`
	FavoritePlaceIDs []int64           `json:"favoritePlaceIds"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		DisplayName:      u.DisplayName,
		Role:             string(u.Role),
		Address:          u.Address,
		LoyaltyPoints:    u.LoyaltyPoints,
		FavoritePlaceIDs: u.FavoritePlaceIDs,
		CreatedAt:        u.CreatedAt,
	}

	if resp.FavoritePlaceIDs == nil {
		resp.FavoritePlaceIDs = []int64{}
	}

	if u.Location != nil {
		resp.Location = &LocationResponse{Lat: u.Location.Lat, Lng: u.Location.Lng}
	}

	return resp
}
