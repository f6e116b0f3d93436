package create_payment_preference

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/service/payments"
	"github.com/m04kA/TurnIt/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidPayment     = "se requiere un título y un precio mayor a cero"
	msgPreferenceFailed   = "no se pudo crear la preferencia de pago"
	msgProviderDown       = "el proveedor de pagos no está disponible"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePreferenceRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /payments/preferences - Invalid request body: %v", err)
		if errors.Is(err, handlers.ErrValidation) {
			handlers.RespondBadRequest(w, msgInvalidPayment)
		} else {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		}
		return
	}

	result, err := h.service.CreatePreference(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPayment)
		case errors.Is(err, payments.ErrPreferenceFailed):
			h.logger.Warn("POST /payments/preferences - Provider rejected preference: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgPreferenceFailed)
		case errors.Is(err, payments.ErrServiceUnavailable):
			h.logger.Error("POST /payments/preferences - Provider unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgProviderDown)
		default:
			h.logger.Error("POST /payments/preferences - Failed to create preference: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/preferences - Preference created: preference_id=%s", result.PreferenceID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
