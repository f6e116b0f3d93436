package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/internal/integrations/mercadopago"
	"github.com/m04kA/TurnIt/internal/service/payments/models"
)

// Service ретранслятор преференций оплаты
type Service struct {
	client PreferenceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса оплаты
func NewService(client PreferenceClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// CreatePreference создает преференцию у провайдера и возвращает адрес оплаты
func (s *Service) CreatePreference(ctx context.Context, req *models.CreatePreferenceRequest) (*models.PreferenceResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || utf8.RuneCountInString(title) > domain.MaxPaymentTitleLen {
		return nil, fmt.Errorf("%w: title must be 1..%d characters", ErrInvalidInput, domain.MaxPaymentTitleLen)
	}
	if !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unitPrice must be positive", ErrInvalidInput)
	}

	s.logger.Info("CreatePreference: title=%q unitPrice=%s", title, req.UnitPrice.String())

	id, err := s.client.CreatePreference(ctx, mercadopago.PreferenceRequest{
		Title:     title,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, mercadopago.ErrPreferenceFailed):
			s.logger.Warn("CreatePreference: provider rejected preference: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrPreferenceFailed, err)
		case errors.Is(err, mercadopago.ErrServiceUnavailable):
			s.logger.Error("CreatePreference: provider unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		default:
			s.logger.Error("CreatePreference: client error: %v", err)
			return nil, fmt.Errorf("%w: CreatePreference - client error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("CreatePreference: created preference id=%s", id)
	return &models.PreferenceResponse{
		PreferenceID: id,
		CheckoutURL:  s.client.CheckoutURL(id),
	}, nil
}
