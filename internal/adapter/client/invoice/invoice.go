package invoice

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/restocinta/orderdesk/internal/adapter/config"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// Client speaks the payment provider's invoice API. One outbound call per
// attempt, no automatic retry; retries are the caller's decision.
type Client struct {
	logger     *zap.Logger
	host       string
	authHeader string
	conf       *config.Payment
	httpClient *http.Client
}

func NewClient(conf *config.Payment, logger *zap.Logger) (*Client, error) {
	// Provider uses basic auth with the API key as user and empty password.
	auth := "Basic " + base64.StdEncoding.EncodeToString([]byte(conf.APIKey+":"))

	return &Client{
		logger:     logger,
		host:       conf.HostString,
		authHeader: auth,
		conf:       conf,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

type invoiceRequest struct {
	ExternalID         string  `json:"external_id"`
	Amount             float64 `json:"amount"`
	Currency           string  `json:"currency"`
	InvoiceDuration    int     `json:"invoice_duration"`
	Description        string  `json:"description"`
	SuccessRedirectURL string  `json:"success_redirect_url,omitempty"`
}

type invoiceResponse struct {
	InvoiceURL string `json:"invoice_url"`
	ID         string `json:"id"`
}

func (c *Client) CreateInvoice(ctx context.Context, req port.InvoiceRequest) (*port.Invoice, error) {
	amount, ok := req.Amount.Float64()
	if !ok {
		return nil, fmt.Errorf("amount %s is not representable", req.Amount)
	}

	body := invoiceRequest{
		ExternalID:         req.ExternalID.String(),
		Amount:             amount,
		Currency:           c.conf.Currency,
		InvoiceDuration:    c.conf.InvoiceDuration,
		Description:        c.conf.Description,
		SuccessRedirectURL: c.conf.SuccessURL,
	}

	var result invoiceResponse
	if err := c.post(ctx, "/v2/invoices", body, &result); err != nil {
		return nil, err
	}

	return &port.Invoice{URL: result.InvoiceURL, ProviderID: result.ID}, nil
}

type qrRequest struct {
	ExternalID  string  `json:"external_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CallbackURL string  `json:"callback_url"`
}

type qrResponse struct {
	QRString string `json:"qr_string"`
	ID       string `json:"id"`
}

func (c *Client) CreateQR(ctx context.Context, req port.InvoiceRequest) (*port.QRCode, error) {
	amount, ok := req.Amount.Float64()
	if !ok {
		return nil, fmt.Errorf("amount %s is not representable", req.Amount)
	}

	body := qrRequest{
		ExternalID:  req.ExternalID.String(),
		Type:        "DYNAMIC",
		Amount:      amount,
		Currency:    c.conf.Currency,
		CallbackURL: c.conf.CallbackURL,
	}

	var result qrResponse
	if err := c.post(ctx, "/qr_codes", body, &result); err != nil {
		return nil, err
	}

	return &port.QRCode{Payload: result.QRString, ProviderID: result.ID}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error on %s: %w", path, err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		providerBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("payment gateway rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", providerBody))
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}

	return nil
}
