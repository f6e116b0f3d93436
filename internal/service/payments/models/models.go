package models

import "github.com/shopspring/decimal"

// CreatePreferenceRequest запрос на создание преференции оплаты
type CreatePreferenceRequest struct {
	Title     string          `json:"title" validate:"required,max=256"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
}

// PreferenceResponse ответ с идентификатором преференции и адресом оплаты
type PreferenceResponse struct {
	PreferenceID string `json:"preferenceId"`
	CheckoutURL  string `json:"checkoutUrl"`
}
