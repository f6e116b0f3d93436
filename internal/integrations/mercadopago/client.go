package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const autoReturnApproved = "approved"

// Client клиент API преференций MercadoPago
// Повторных попыток нет: ошибка возвращается вызывающему как есть
type Client struct {
	apiURL         string
	checkoutDomain string
	accessToken    string
	backURLs       BackURLs
	httpClient     *http.Client
	log            Logger
}

// NewClient создает новый экземпляр клиента MercadoPago
func NewClient(apiURL, checkoutDomain, accessToken string, backURLs BackURLs, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiURL:         strings.TrimRight(apiURL, "/"),
		checkoutDomain: checkoutDomain,
		accessToken:    accessToken,
		backURLs:       backURLs,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreatePreference создает преференцию оплаты для одной позиции и возвращает её id
func (c *Client) CreatePreference(ctx context.Context, in PreferenceRequest) (string, error) {
	body := preferenceBody{
		Items: []preferenceItem{{
			Title:     in.Title,
			UnitPrice: json.Number(in.UnitPrice.String()),
			Quantity:  1,
		}},
		BackURLs:   c.backURLs,
		AutoReturn: autoReturnApproved,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/checkout/preferences", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CreatePreference: request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("CreatePreference: unexpected status=%d", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d: %s", ErrPreferenceFailed, resp.StatusCode, string(raw))
	}

	var parsed preferenceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.ID == "" {
		c.log.Warn("CreatePreference: response without preference id")
		return "", fmt.Errorf("%w: %s", ErrPreferenceFailed, string(raw))
	}

	c.log.Info("CreatePreference: created preference id=%s", parsed.ID)
	return parsed.ID, nil
}

// CheckoutURL адрес страницы оплаты для преференции
func (c *Client) CheckoutURL(preferenceID string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     c.checkoutDomain,
		Path:     "/checkout/v1/redirect",
		RawQuery: url.Values{"pref_id": []string{preferenceID}}.Encode(),
	}
	return u.String()
}
