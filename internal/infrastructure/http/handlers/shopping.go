package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/infrastructure/monitoring"
	"github.com/pantrysage/v2/internal/ports/inbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// ShoppingHandlers handles shopping list API requests
type ShoppingHandlers struct {
	shopping inbound.ShoppingListService
	metrics  *monitoring.Metrics
	logger   *zap.Logger
}

// NewShoppingHandlers creates a new shopping handlers instance
func NewShoppingHandlers(shopping inbound.ShoppingListService, metrics *monitoring.Metrics, logger *zap.Logger) *ShoppingHandlers {
	return &ShoppingHandlers{shopping: shopping, metrics: metrics, logger: logger}
}

type createListRequest struct {
	Name string `json:"name"`
}

// Create handles POST /api/v1/shopping-lists
func (h *ShoppingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	dto, err := h.shopping.CreateList(r.Context(), middleware.UserID(r), req.Name)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

// Delete handles DELETE /api/v1/shopping-lists/{id}
func (h *ShoppingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	listID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.shopping.DeleteList(r.Context(), listID, middleware.UserID(r)); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "List deleted"})
}

// Get handles GET /api/v1/shopping-lists/{id}
func (h *ShoppingHandlers) Get(w http.ResponseWriter, r *http.Request) {
	listID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	dto, err := h.shopping.GetList(r.Context(), listID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	// grouped=true swaps the flat item array for store-section buckets.
	if r.URL.Query().Get("grouped") == "true" {
		writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: map[string]interface{}{
			"id":      dto.ID,
			"ownerId": dto.OwnerID,
			"name":    dto.Name,
			"groups":  dto.GroupedItems(),
		}})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// List handles GET /api/v1/shopping-lists
func (h *ShoppingHandlers) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.shopping.ListByOwner(r.Context(), middleware.UserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: lists})
}

type addListItemRequest struct {
	Item     string `json:"item"`
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// AddItem handles POST /api/v1/shopping-lists/{id}/items
func (h *ShoppingHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	listID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req addListItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	cmd := inbound.AddListItemCommand{
		ListID:   listID,
		OwnerID:  middleware.UserID(r),
		Item:     req.Item,
		Amount:   req.Amount,
		Unit:     req.Unit,
		Category: req.Category,
	}
	if err := validate.Struct(cmd); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.shopping.AddItem(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

type checkItemRequest struct {
	Checked bool `json:"checked"`
}

// SetItemChecked handles PATCH /api/v1/shopping-lists/{id}/items/{itemId}/checked
func (h *ShoppingHandlers) SetItemChecked(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := h.listItemIDs(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req checkItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	if err := h.shopping.SetItemChecked(r.Context(), listID, itemID, middleware.UserID(r), req.Checked); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Item updated"})
}

// RemoveItem handles DELETE /api/v1/shopping-lists/{id}/items/{itemId}
func (h *ShoppingHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := h.listItemIDs(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.shopping.RemoveItem(r.Context(), listID, itemID, middleware.UserID(r)); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Item removed"})
}

type recategorizeRequest struct {
	Category string `json:"category"`
}

// RecategorizeItem handles PATCH /api/v1/shopping-lists/{id}/items/{itemId}/category
func (h *ShoppingHandlers) RecategorizeItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := h.listItemIDs(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req recategorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	if err := h.shopping.RecategorizeItem(r.Context(), listID, itemID, middleware.UserID(r), req.Category); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Item recategorized"})
}

// ClearChecked handles POST /api/v1/shopping-lists/{id}/clear-checked
func (h *ShoppingHandlers) ClearChecked(w http.ResponseWriter, r *http.Request) {
	listID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	removed, err := h.shopping.ClearChecked(r.Context(), listID, middleware.UserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: map[string]int{"removed": removed}})
}

type generateRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Generate handles POST /api/v1/shopping-lists/{id}/generate
func (h *ShoppingHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	listID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	cmd := inbound.GenerateListCommand{
		ListID:  listID,
		OwnerID: middleware.UserID(r),
		From:    req.From,
		To:      req.To,
	}
	if err := validate.Struct(cmd); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.shopping.GenerateFromMealPlans(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.metrics.RecordListGeneration(string(result.Outcome))
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: result})
}

type addMissingRequest struct {
	Items []inbound.IngredientInput `json:"items"`
}

// AddMissing handles POST /api/v1/shopping-lists/{id}/missing
func (h *ShoppingHandlers) AddMissing(w http.ResponseWriter, r *http.Request) {
	listID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req addMissingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	cmd := inbound.AddMissingCommand{
		ListID:  listID,
		OwnerID: middleware.UserID(r),
		Items:   req.Items,
	}
	if err := validate.Struct(cmd); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.shopping.AddMissingIngredients(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (h *ShoppingHandlers) listItemIDs(r *http.Request) (listID, itemID uuid.UUID, err error) {
	listID, err = parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		return
	}
	itemID, err = parseUUIDParam(chi.URLParam(r, "itemId"))
	return
}
