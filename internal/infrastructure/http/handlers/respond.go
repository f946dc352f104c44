// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/domain/user"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", zap.Error(err))
		}
		writeJSON(w, logger, appErr.StatusCode(), APIResponse{Success: false, Error: appErr.Message})
		return
	}

	writeJSON(w, logger, statusFor(err), APIResponse{Success: false, Error: err.Error()})
}

// statusFor maps domain sentinel errors that escape the service layer
// unwrapped.
func statusFor(err error) int {
	switch {
	case errors.Is(err, recipe.ErrNotFound),
		errors.Is(err, pantry.ErrItemNotFound),
		errors.Is(err, mealplan.ErrEntryNotFound),
		errors.Is(err, shopping.ErrListNotFound),
		errors.Is(err, shopping.ErrItemNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, pantry.ErrItemAlreadyResolved),
		errors.Is(err, recipe.ErrAlreadyDeleted):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func parseUUIDParam(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequestError("invalid identifier in URL")
	}
	return id, nil
}
