package get_nearby_places

import (
	"context"
	"fmt"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/pkg/geo"
)

// UseCase use case списка заведений, упорядоченных по расстоянию
type UseCase struct {
	placeRepo PlaceRepository
	userRepo  UserRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(placeRepo PlaceRepository, userRepo UserRepository, logger Logger) *UseCase {
	return &UseCase{
		placeRepo: placeRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	origin, category, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetNearbyPlaces: validation failed: %v", err)
		return nil, err
	}

	// Без явных координат берем сохраненную точку пользователя
	if origin == nil && req.UserID != "" {
		origin = uc.userOrigin(ctx, req.UserID)
	}

	places, err := uc.placeRepo.List(ctx, domain.PlacesFilter{Category: category})
	if err != nil {
		uc.logger.Error("GetNearbyPlaces: failed to list places: %v", err)
		return nil, fmt.Errorf("%w: failed to list places: %v", ErrInternal, err)
	}

	ranked := RankPlaces(places, origin)

	if origin != nil {
		uc.logger.Info("GetNearbyPlaces: ranked %d places from origin=(%.5f, %.5f)", len(ranked), origin.Lat, origin.Lng)
	} else {
		uc.logger.Info("GetNearbyPlaces: listed %d places without origin", len(ranked))
	}

	return &Response{Origin: origin, Places: ranked}, nil
}

// userOrigin точка пользователя; ошибки не критичны, список строится без точки отсчета
func (uc *UseCase) userOrigin(ctx context.Context, userID string) *geo.Point {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Warn("GetNearbyPlaces: no stored origin for user=%s: %v", userID, err)
		return nil
	}
	if user.Location == nil {
		return nil
	}
	return &geo.Point{Lat: user.Location.Lat, Lng: user.Location.Lng}
}
