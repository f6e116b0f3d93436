package list_places

import (
	"context"

	getNearbyPlaces "github.com/m04kA/TurnIt/internal/usecase/get_nearby_places"
)

type GetNearbyPlacesUseCase interface {
	Execute(ctx context.Context, req *getNearbyPlaces.Request) (*getNearbyPlaces.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
