// Package suggestions provides the HTTP client for the recipe
// suggestion generator service.
package suggestions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/suggestion"
	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// Client implements the suggestion generator interface over HTTP
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new suggestion generator client
func NewClient(cfg config.SuggestionConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("suggestions-client"),
	}
}

type generateRequest struct {
	Inventory           []string `json:"inventory"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	Allergies           []string `json:"allergies,omitempty"`
	DislikedIngredients []string `json:"dislikedIngredients,omitempty"`
	MaxSuggestions      int      `json:"maxSuggestions"`
}

type generateResponse struct {
	Suggestions []suggestion.Suggestion `json:"suggestions"`
}

// GenerateSuggestions asks the generator for inventory-scored recipe
// candidates. Ranking and grouping happen locally.
func (c *Client) GenerateSuggestions(ctx context.Context, req outbound.SuggestionRequest) ([]suggestion.Suggestion, error) {
	body, err := json.Marshal(generateRequest{
		Inventory:           req.InventoryNames,
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
		DislikedIngredients: req.DislikedIngredients,
		MaxSuggestions:      req.MaxSuggestions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode suggestion request: %w", err)
	}

	endpoint := c.baseURL + "/v1/suggestions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("suggestion API error %d: %s", resp.StatusCode, string(respBody))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion response: %w", err)
	}

	c.logger.Info("suggestions generated",
		zap.Int("count", len(decoded.Suggestions)),
		zap.Duration("duration", time.Since(start)),
	)
	return decoded.Suggestions, nil
}
