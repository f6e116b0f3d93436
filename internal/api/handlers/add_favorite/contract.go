package add_favorite

import "context"

type UserService interface {
	AddFavorite(ctx context.Context, userID string, placeID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
