package list_places

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	getNearbyPlaces "github.com/m04kA/TurnIt/internal/usecase/get_nearby_places"
)

const (
	msgInvalidCoordinates = "coordenadas inválidas, se esperan lat y lng juntas"
	msgInvalidFilter      = "parámetros de búsqueda inválidos"
)

type Handler struct {
	useCase GetNearbyPlacesUseCase
	logger  Logger
}

func NewHandler(useCase GetNearbyPlacesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places?lat=&lng=&category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, err := parseOptionalFloat(query.Get("lat"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCoordinates)
		return
	}
	lng, err := parseOptionalFloat(query.Get("lng"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCoordinates)
		return
	}

	req := &getNearbyPlaces.Request{Lat: lat, Lng: lng}
	if category := query.Get("category"); category != "" {
		req.Category = &category
	}
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		req.UserID = userID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getNearbyPlaces.ErrInvalidInput) {
			h.logger.Warn("GET /places - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /places - Failed to list places: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
