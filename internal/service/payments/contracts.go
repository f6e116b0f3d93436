package payments

import (
	"context"

	"github.com/m04kA/TurnIt/internal/integrations/mercadopago"
)

// PreferenceClient клиент провайдера оплаты
type PreferenceClient interface {
	CreatePreference(ctx context.Context, in mercadopago.PreferenceRequest) (string, error)
	CheckoutURL(preferenceID string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
