// Package ocr provides the HTTP client for the receipt text
// extraction service.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// Client implements the receipt OCR interface over HTTP
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new receipt OCR client
func NewClient(cfg config.ReceiptConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("ocr-client"),
	}
}

type extractResponse struct {
	Lines []struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
		Price    string `json:"price"`
	} `json:"lines"`
}

// ExtractItems sends a receipt image and returns the parsed line items.
func (c *Client) ExtractItems(ctx context.Context, image []byte, contentType string) ([]outbound.ReceiptLine, error) {
	endpoint := c.baseURL + "/v1/receipts/extract"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("receipt extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("receipt OCR API error %d: %s", resp.StatusCode, string(body))
	}

	var decoded extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode receipt response: %w", err)
	}

	lines := make([]outbound.ReceiptLine, 0, len(decoded.Lines))
	for _, l := range decoded.Lines {
		lines = append(lines, outbound.ReceiptLine{
			Name:     l.Name,
			Quantity: l.Quantity,
			Unit:     l.Unit,
			Price:    l.Price,
		})
	}

	c.logger.Info("receipt extracted",
		zap.Int("lines", len(lines)),
		zap.Duration("duration", time.Since(start)),
	)
	return lines, nil
}
