package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/ports/inbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// MealPlanHandlers handles meal planning API requests
type MealPlanHandlers struct {
	mealplans inbound.MealPlanService
	logger    *zap.Logger
}

// NewMealPlanHandlers creates a new meal plan handlers instance
func NewMealPlanHandlers(mealplans inbound.MealPlanService, logger *zap.Logger) *MealPlanHandlers {
	return &MealPlanHandlers{mealplans: mealplans, logger: logger}
}

type planMealRequest struct {
	RecipeID string    `json:"recipeId"`
	Date     time.Time `json:"date"`
	MealType string    `json:"mealType"`
	Servings int       `json:"servings"`
	Notes    string    `json:"notes"`
}

// Plan handles POST /api/v1/meal-plans
func (h *MealPlanHandlers) Plan(w http.ResponseWriter, r *http.Request) {
	var req planMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	recipeID, err := parseUUIDParam(req.RecipeID)
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid recipeId"))
		return
	}

	cmd := inbound.PlanMealCommand{
		OwnerID:  middleware.UserID(r),
		RecipeID: recipeID,
		Date:     req.Date,
		MealType: req.MealType,
		Servings: req.Servings,
		Notes:    req.Notes,
	}
	if err := validate.Struct(cmd); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.mealplans.PlanMeal(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

type rescheduleRequest struct {
	Date     *time.Time `json:"date"`
	MealType *string    `json:"mealType"`
	Servings *int       `json:"servings"`
	Notes    *string    `json:"notes"`
}

// Reschedule handles PATCH /api/v1/meal-plans/{id}
func (h *MealPlanHandlers) Reschedule(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	dto, err := h.mealplans.Reschedule(r.Context(), inbound.RescheduleCommand{
		EntryID:  entryID,
		OwnerID:  middleware.UserID(r),
		Date:     req.Date,
		MealType: req.MealType,
		Servings: req.Servings,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// Unplan handles DELETE /api/v1/meal-plans/{id}
func (h *MealPlanHandlers) Unplan(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.mealplans.Unplan(r.Context(), entryID, middleware.UserID(r)); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Entry removed"})
}

// Get handles GET /api/v1/meal-plans/{id}
func (h *MealPlanHandlers) Get(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	dto, err := h.mealplans.GetEntry(r.Context(), entryID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// ListRange handles GET /api/v1/meal-plans?from=...&to=...
func (h *MealPlanHandlers) ListRange(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("from must be a YYYY-MM-DD date"))
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("to must be a YYYY-MM-DD date"))
		return
	}

	entries, err := h.mealplans.ListRange(r.Context(), middleware.UserID(r), from, to)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: entries})
}
