package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/infrastructure/monitoring"
	"github.com/pantrysage/v2/internal/ports/inbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// DietaryHandlers handles preference and safety check API requests
type DietaryHandlers struct {
	dietary inbound.DietaryService
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewDietaryHandlers creates a new dietary handlers instance
func NewDietaryHandlers(dietary inbound.DietaryService, metrics *monitoring.Metrics, logger *zap.Logger) *DietaryHandlers {
	return &DietaryHandlers{dietary: dietary, metrics: metrics, logger: logger}
}

// GetPreferences handles GET /api/v1/preferences
func (h *DietaryHandlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.dietary.GetPreferences(r.Context(), middleware.UserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: prefs})
}

type updatePreferencesRequest struct {
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Allergies           []string `json:"allergies"`
	DislikedIngredients []string `json:"dislikedIngredients"`
	ExpiryAlertDays     *int     `json:"expiryAlertDays"`
}

// UpdatePreferences handles PUT /api/v1/preferences
func (h *DietaryHandlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req updatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	prefs, err := h.dietary.UpdatePreferences(r.Context(), inbound.UpdatePreferencesCommand{
		UserID:              middleware.UserID(r),
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
		DislikedIngredients: req.DislikedIngredients,
		ExpiryAlertDays:     req.ExpiryAlertDays,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: prefs})
}

// CheckRecipe handles GET /api/v1/recipes/{id}/warnings
func (h *DietaryHandlers) CheckRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	warnings, err := h.dietary.CheckRecipe(r.Context(), recipeID, middleware.UserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.recordWarnings(warnings)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: warnings})
}

type checkIngredientsRequest struct {
	Ingredients []string `json:"ingredients"`
}

// CheckIngredients handles POST /api/v1/dietary/check
func (h *DietaryHandlers) CheckIngredients(w http.ResponseWriter, r *http.Request) {
	var req checkIngredientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	warnings, err := h.dietary.CheckIngredients(r.Context(), middleware.UserID(r), req.Ingredients)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.recordWarnings(warnings)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: warnings})
}

func (h *DietaryHandlers) recordWarnings(dto *inbound.WarningsDTO) {
	for _, warning := range dto.Warnings {
		h.metrics.RecordWarning(string(warning.Severity))
	}
}
