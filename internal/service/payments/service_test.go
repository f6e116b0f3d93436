package payments

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/integrations/mercadopago"
	"github.com/m04kA/TurnIt/internal/service/payments/models"
	"github.com/m04kA/TurnIt/pkg/logger"
)

type fakeClient struct {
	id   string
	err  error
	last mercadopago.PreferenceRequest
}

func (f *fakeClient) CreatePreference(ctx context.Context, in mercadopago.PreferenceRequest) (string, error) {
	f.last = in
	return f.id, f.err
}

func (f *fakeClient) CheckoutURL(preferenceID string) string {
	return "https://checkout.test/redirect?pref_id=" + preferenceID
}

func TestCreatePreference(t *testing.T) {
	client := &fakeClient{id: "abc-123"}
	svc := NewService(client, logger.Nop())

	resp, err := svc.CreatePreference(context.Background(), &models.CreatePreferenceRequest{
		Title:     " Corte de pelo ",
		UnitPrice: decimal.RequireFromString("1500.50"),
	})

	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.PreferenceID)
	assert.Equal(t, "https://checkout.test/redirect?pref_id=abc-123", resp.CheckoutURL)
	assert.Equal(t, "Corte de pelo", client.last.Title)
	assert.Equal(t, "1500.5", client.last.UnitPrice.String())
}

func TestCreatePreference_Validation(t *testing.T) {
	client := &fakeClient{id: "never"}
	svc := NewService(client, logger.Nop())

	long := make([]rune, 257)
	for i := range long {
		long[i] = 'ñ'
	}

	tests := []struct {
		name string
		req  models.CreatePreferenceRequest
	}{
		{name: "empty title", req: models.CreatePreferenceRequest{Title: "  ", UnitPrice: decimal.NewFromInt(10)}},
		{name: "title too long", req: models.CreatePreferenceRequest{Title: string(long), UnitPrice: decimal.NewFromInt(10)}},
		{name: "zero price", req: models.CreatePreferenceRequest{Title: "x", UnitPrice: decimal.Zero}},
		{name: "negative price", req: models.CreatePreferenceRequest{Title: "x", UnitPrice: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePreference(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, client.last.Title)
}

func TestCreatePreference_ClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "rejected", err: fmt.Errorf("%w: body={}", mercadopago.ErrPreferenceFailed), wantErr: ErrPreferenceFailed},
		{name: "unavailable", err: fmt.Errorf("%w: dial tcp", mercadopago.ErrServiceUnavailable), wantErr: ErrServiceUnavailable},
		{name: "internal", err: mercadopago.ErrInternal, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeClient{err: tt.err}, logger.Nop())

			_, err := svc.CreatePreference(context.Background(), &models.CreatePreferenceRequest{
				Title: "Turno", UnitPrice: decimal.NewFromInt(100),
			})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
