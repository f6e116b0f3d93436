package models

import (
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
)

// ListTurnosRequest фильтр списка турнос заведения
type ListTurnosRequest struct {
	PlaceID       int64
	Date          *time.Time
	OnlyAvailable bool
	ViewerID      string // пустой для анонимного запроса
}

// TurnoResponse турно в ответе API
// Reservations заполняется только для персонала заведения
type TurnoResponse struct {
	ID             int64     `json:"id"`
	PlaceID        int64     `json:"placeId"`
	PlaceName      string    `json:"placeName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	DateTime       time.Time `json:"dateTime"`
	Slots          int       `json:"slots"`
	SlotsAvailable int       `json:"slotsAvailable"`
	ReservedCount  int       `json:"reservedCount"`
	ReservedByMe   bool      `json:"reservedByMe"`
	Reservations   []string  `json:"reservations,omitempty"`
}

// TurnoListResponse ответ со списком турнос
type TurnoListResponse struct {
	Turnos []TurnoResponse `json:"turnos"`
}

// FromDomainTurno конвертирует domain модель в DTO
// showReservations раскрывает список держателей мест
func FromDomainTurno(t *domain.Turno, viewerID string, showReservations bool) *TurnoResponse {
	if t == nil {
		return nil
	}

	resp := &TurnoResponse{
		ID:             t.ID,
		PlaceID:        t.PlaceID,
		PlaceName:      t.PlaceName,
		Date:           t.Date.Format(domain.DateFormat),
		Time:           t.Time.String(),
		DateTime:       t.DateTime,
		Slots:          t.Slots,
		SlotsAvailable: t.SlotsAvailable,
		ReservedCount:  t.ReservedCount(),
		ReservedByMe:   viewerID != "" && t.HasReservation(viewerID),
	}

	if showReservations {
		resp.Reservations = append([]string{}, t.Reservations...)
	}

	return resp
}
