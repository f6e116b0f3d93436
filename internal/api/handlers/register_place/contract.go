package register_place

import (
	"context"

	"github.com/m04kA/TurnIt/internal/service/places/models"
)

type PlaceService interface {
	Register(ctx context.Context, req *models.RegisterPlaceRequest) (*models.PlaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
