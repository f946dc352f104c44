package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/ports/inbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

var validate = validator.New()

// RecipeHandlers handles recipe API requests
type RecipeHandlers struct {
	recipes inbound.RecipeService
	logger  *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(recipes inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{recipes: recipes, logger: logger}
}

type recipeRequest struct {
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Ingredients  []inbound.IngredientInput `json:"ingredients"`
	Instructions []string                  `json:"instructions"`
	MealType     string                    `json:"mealType"`
	Cuisine      string                    `json:"cuisine"`
	Nutrition    string                    `json:"nutrition"`
	ImageURL     string                    `json:"imageUrl"`
	SourceURL    string                    `json:"sourceUrl"`
	PrepMinutes  int                       `json:"prepMinutes"`
	CookMinutes  int                       `json:"cookMinutes"`
	Servings     int                       `json:"servings"`
	Tags         []string                  `json:"tags"`
}

type recipeUpdateRequest struct {
	Title        *string                    `json:"title"`
	Description  *string                    `json:"description"`
	Ingredients  *[]inbound.IngredientInput `json:"ingredients"`
	Instructions *[]string                  `json:"instructions"`
	MealType     *string                    `json:"mealType"`
	Cuisine      *string                    `json:"cuisine"`
	Nutrition    *string                    `json:"nutrition"`
	ImageURL     *string                    `json:"imageUrl"`
	SourceURL    *string                    `json:"sourceUrl"`
	PrepMinutes  *int                       `json:"prepMinutes"`
	CookMinutes  *int                       `json:"cookMinutes"`
	Servings     *int                       `json:"servings"`
	Tags         *[]string                  `json:"tags"`
}

// Create handles POST /api/v1/recipes
func (h *RecipeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	cmd := inbound.CreateRecipeCommand{
		OwnerID:      middleware.UserID(r),
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		MealType:     req.MealType,
		Cuisine:      req.Cuisine,
		Nutrition:    req.Nutrition,
		ImageURL:     req.ImageURL,
		SourceURL:    req.SourceURL,
		PrepMinutes:  req.PrepMinutes,
		CookMinutes:  req.CookMinutes,
		Servings:     req.Servings,
		Tags:         req.Tags,
	}
	if err := validate.Struct(cmd); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.recipes.CreateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

// Update handles PUT /api/v1/recipes/{id}
func (h *RecipeHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req recipeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	dto, err := h.recipes.UpdateRecipe(r.Context(), inbound.UpdateRecipeCommand{
		RecipeID:     id,
		OwnerID:      middleware.UserID(r),
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		MealType:     req.MealType,
		Cuisine:      req.Cuisine,
		Nutrition:    req.Nutrition,
		ImageURL:     req.ImageURL,
		SourceURL:    req.SourceURL,
		PrepMinutes:  req.PrepMinutes,
		CookMinutes:  req.CookMinutes,
		Servings:     req.Servings,
		Tags:         req.Tags,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// Delete handles DELETE /api/v1/recipes/{id}
func (h *RecipeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.recipes.DeleteRecipe(r.Context(), id, middleware.UserID(r)); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Recipe deleted"})
}

// Get handles GET /api/v1/recipes/{id}
func (h *RecipeHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	dto, err := h.recipes.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// List handles GET /api/v1/recipes
func (h *RecipeHandlers) List(w http.ResponseWriter, r *http.Request) {
	params := paginationFrom(r)

	var (
		list *inbound.RecipeList
		err  error
	)
	if query := r.URL.Query().Get("q"); query != "" {
		list, err = h.recipes.SearchRecipes(r.Context(), middleware.UserID(r), query, params)
	} else {
		list, err = h.recipes.ListRecipes(r.Context(), middleware.UserID(r), params)
	}
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: list})
}

// ImportURL handles POST /api/v1/recipes/import-url
func (h *RecipeHandlers) ImportURL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	cmd := inbound.ImportURLCommand{
		OwnerID: middleware.UserID(r),
		URL:     req.URL,
	}
	if err := validate.Struct(cmd); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.recipes.ImportFromURL(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

// ImportCSV handles POST /api/v1/recipes/import-csv. The body is the
// raw CSV file, capped at 5MB.
func (h *RecipeHandlers) ImportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, 5<<20))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("failed to read request body"))
		return
	}
	if len(data) == 0 {
		writeError(w, h.logger, apperrors.NewBadRequestError("empty CSV body"))
		return
	}

	result, err := h.recipes.ImportCSV(r.Context(), middleware.UserID(r), data)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: result})
}

// ExportCSV handles GET /api/v1/recipes/export
func (h *RecipeHandlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.recipes.ExportCSV(r.Context(), middleware.UserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="recipes.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("Failed to write CSV export", zap.Error(err))
	}
}

func paginationFrom(r *http.Request) inbound.PaginationParams {
	params := inbound.PaginationParams{}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Offset = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Limit = n
		}
	}
	params.Normalize()
	return params
}
