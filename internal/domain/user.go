package domain

import "time"

// Role роль пользователя, фиксируется при регистрации
type Role string

const (
	RoleUser  Role = "user"
	RolePlace Role = "place"
)

// IsValid проверяет, что роль из допустимого набора
func (r Role) IsValid() bool {
	return r == RoleUser || r == RolePlace
}

// Location геокодированная точка
type Location struct {
	Lat float64
	Lng float64
}

// User пользователь TurnIt
// ID - subject из токена внешнего провайдера аутентификации
type User struct {
	ID               string
	Email            string
	DisplayName      string
	Role             Role
	Address          string
	Location         *Location
	LoyaltyPoints    int
	FavoritePlaceIDs []int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsPlaceOwner возвращает true для аккаунтов заведений
func (u *User) IsPlaceOwner() bool {
	return u.Role == RolePlace
}

// HasFavorite проверяет, есть ли заведение в избранном
func (u *User) HasFavorite(placeID int64) bool {
	for _, id := range u.FavoritePlaceIDs {
		if id == placeID {
			return true
		}
	}
	return false
}
