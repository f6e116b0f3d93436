package mercadopago

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PreferenceRequest данные для создания преференции оплаты
type PreferenceRequest struct {
	Title     string
	UnitPrice decimal.Decimal
}

// BackURLs адреса возврата после оплаты
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceItem struct {
	Title     string      `json:"title"`
	UnitPrice json.Number `json:"unit_price"`
	Quantity  int         `json:"quantity"`
}

type preferenceBody struct {
	Items      []preferenceItem `json:"items"`
	BackURLs   BackURLs         `json:"back_urls"`
	AutoReturn string           `json:"auto_return"`
}

type preferenceResponse struct {
	ID string `json:"id"`
}
