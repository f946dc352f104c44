// Package barcode provides UPC product lookup against an Open Food
// Facts compatible API.
package barcode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/ports/outbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// Client implements the barcode lookup interface over HTTP
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new barcode lookup client
func NewClient(cfg config.BarcodeConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("barcode-client"),
	}
}

type productResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Product struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		Quantity    string `json:"quantity"`
	} `json:"product"`
}

// Lookup resolves a UPC to product details.
func (c *Client) Lookup(ctx context.Context, upc string) (*outbound.BarcodeProduct, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, upc)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("barcode lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no product found for UPC %s", upc))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("barcode API error %d", resp.StatusCode)
	}

	var decoded productResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}
	if decoded.Status != 1 || decoded.Product.ProductName == "" {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no product found for UPC %s", upc))
	}

	c.logger.Debug("product resolved",
		zap.String("upc", upc),
		zap.String("name", decoded.Product.ProductName),
	)
	return &outbound.BarcodeProduct{
		UPC:      upc,
		Name:     decoded.Product.ProductName,
		Brand:    decoded.Product.Brands,
		Quantity: decoded.Product.Quantity,
	}, nil
}
