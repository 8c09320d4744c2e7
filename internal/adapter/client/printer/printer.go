package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/restocinta/orderdesk/internal/adapter/config"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

const requestTimeout = 15 * time.Second

// Client hands receipt snapshots to the document rendering service. Layout
// and rendering mechanics live entirely on the other side of this call.
type Client struct {
	logger     *zap.Logger
	host       string
	httpClient *http.Client
}

func NewClient(conf *config.Printer, logger *zap.Logger) (*Client, error) {
	return &Client{
		logger:     logger,
		host:       conf.HostString,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

type renderRequest struct {
	Mode    string          `json:"mode"`
	Receipt *domain.Receipt `json:"receipt"`
}

func (c *Client) Print(ctx context.Context, receipt *domain.Receipt, mode port.PrintMode) error {
	payload, err := json.Marshal(renderRequest{Mode: string(mode), Receipt: receipt})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.host+"/render", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("render request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("rendering service rejected receipt",
			zap.String("order", receipt.OrderID.String()),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("bad response %v from rendering service", resp.StatusCode)
	}

	return nil
}
