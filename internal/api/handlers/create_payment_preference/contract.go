package create_payment_preference

import (
	"context"

	"github.com/m04kA/TurnIt/internal/service/payments/models"
)

type PaymentService interface {
	CreatePreference(ctx context.Context, req *models.CreatePreferenceRequest) (*models.PreferenceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
