package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/ports/inbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// SuggestionHandlers handles recipe suggestion API requests
type SuggestionHandlers struct {
	suggestions inbound.SuggestionService
	logger      *zap.Logger
}

// NewSuggestionHandlers creates a new suggestion handlers instance
func NewSuggestionHandlers(suggestions inbound.SuggestionService, logger *zap.Logger) *SuggestionHandlers {
	return &SuggestionHandlers{suggestions: suggestions, logger: logger}
}

type suggestRequest struct {
	MaxSuggestions int `json:"maxSuggestions"`
}

// Suggest handles POST /api/v1/suggestions
func (h *SuggestionHandlers) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	ranked, err := h.suggestions.SuggestFromPantry(r.Context(), inbound.SuggestCommand{
		OwnerID:        middleware.UserID(r),
		MaxSuggestions: req.MaxSuggestions,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: ranked})
}

// History handles GET /api/v1/suggestions/history
func (h *SuggestionHandlers) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, h.logger, apperrors.NewBadRequestError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.suggestions.ListHistory(r.Context(), middleware.UserID(r), limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: entries})
}
