package domain

import "time"

// Category категория заведения из фиксированного каталога
type Category string

const (
	CategorySalon       Category = "salon"
	CategoryBarberia    Category = "barberia"
	CategoryClinica     Category = "clinica"
	CategoryGimnasio    Category = "gimnasio"
	CategorySpa         Category = "spa"
	CategoryEstetica    Category = "estetica"
	CategoryOdontologia Category = "odontologia"
	CategoryVeterinaria Category = "veterinaria"
	CategoryOtro        Category = "otro"
)

// Categories каталог допустимых категорий
var Categories = []Category{
	CategorySalon,
	CategoryBarberia,
	CategoryClinica,
	CategoryGimnasio,
	CategorySpa,
	CategoryEstetica,
	CategoryOdontologia,
	CategoryVeterinaria,
	CategoryOtro,
}

// IsValid проверяет, что категория есть в каталоге
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Place заведение, публикующее турнос
type Place struct {
	ID          int64
	OwnerID     string
	StaffIDs    []string
	Name        string
	Address     string
	Location    *Location
	Description string
	PhotoURL    string
	Categories  []Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsManagedBy возвращает true, если пользователь владелец или сотрудник заведения
func (p *Place) IsManagedBy(userID string) bool {
	if userID == "" {
		return false
	}
	if p.OwnerID == userID {
		return true
	}
	for _, id := range p.StaffIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HasCategory проверяет наличие категории у заведения
func (p *Place) HasCategory(c Category) bool {
	for _, pc := range p.Categories {
		if pc == c {
			return true
		}
	}
	return false
}

// PlacesFilter фильтр списка заведений
type PlacesFilter struct {
	Category *Category // опционально
}
