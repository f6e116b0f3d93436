package turnos_live

import (
	"context"
	"net/http"

	"github.com/m04kA/TurnIt/internal/service/places/models"
)

type PlaceService interface {
	GetByID(ctx context.Context, id int64) (*models.PlaceResponse, error)
}

// Feed websocket-лента изменений турнос заведения
type Feed interface {
	ServeWS(w http.ResponseWriter, r *http.Request, placeID int64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
