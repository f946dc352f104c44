package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/ports/inbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// Receipt uploads are capped to keep OCR request bodies bounded.
const maxReceiptBytes = 10 << 20

// PantryHandlers handles inventory API requests
type PantryHandlers struct {
	pantry inbound.PantryService
	logger *zap.Logger
}

// NewPantryHandlers creates a new pantry handlers instance
func NewPantryHandlers(pantry inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{pantry: pantry, logger: logger}
}

type addItemRequest struct {
	Name       string     `json:"name"`
	Amount     string     `json:"amount"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

// AddItem handles POST /api/v1/pantry/items
func (h *PantryHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	cmd := inbound.AddInventoryCommand{
		OwnerID:    middleware.UserID(r),
		Name:       req.Name,
		Amount:     req.Amount,
		Unit:       req.Unit,
		Category:   req.Category,
		ExpiryDate: req.ExpiryDate,
	}
	if err := validate.Struct(cmd); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.pantry.AddItem(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

// IngestReceipt handles POST /api/v1/pantry/receipts
func (h *PantryHandlers) IngestReceipt(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(io.LimitReader(r.Body, maxReceiptBytes))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("failed to read receipt image"))
		return
	}
	if len(image) == 0 {
		writeError(w, h.logger, apperrors.NewBadRequestError("receipt image is required"))
		return
	}

	result, err := h.pantry.IngestReceipt(r.Context(), inbound.IngestReceiptCommand{
		OwnerID:     middleware.UserID(r),
		Image:       image,
		ContentType: r.Header.Get("Content-Type"),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: result})
}

type barcodeRequest struct {
	UPC string `json:"upc"`
}

// IngestBarcode handles POST /api/v1/pantry/barcodes
func (h *PantryHandlers) IngestBarcode(w http.ResponseWriter, r *http.Request) {
	var req barcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}
	if req.UPC == "" {
		writeError(w, h.logger, apperrors.NewBadRequestError("upc is required"))
		return
	}

	dto, err := h.pantry.IngestBarcode(r.Context(), inbound.IngestBarcodeCommand{
		OwnerID: middleware.UserID(r),
		UPC:     req.UPC,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

// MarkUsed handles POST /api/v1/pantry/items/{id}/used
func (h *PantryHandlers) MarkUsed(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.pantry.MarkUsed, "Item marked used")
}

// MarkWasted handles POST /api/v1/pantry/items/{id}/wasted
func (h *PantryHandlers) MarkWasted(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.pantry.MarkWasted, "Item marked wasted")
}

// ListActive handles GET /api/v1/pantry/items
func (h *PantryHandlers) ListActive(w http.ResponseWriter, r *http.Request) {
	items, err := h.pantry.ListActive(r.Context(), middleware.UserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// ListExpiring handles GET /api/v1/pantry/items/expiring
func (h *PantryHandlers) ListExpiring(w http.ResponseWriter, r *http.Request) {
	withinDays := 0
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			withinDays = n
		}
	}

	items, err := h.pantry.ListExpiringSoon(r.Context(), middleware.UserID(r), withinDays)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// MissingForRecipe handles GET /api/v1/pantry/missing/{recipeId}
func (h *PantryHandlers) MissingForRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := parseUUIDParam(chi.URLParam(r, "recipeId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	missing, err := h.pantry.FindMissingForRecipe(r.Context(), recipeID, middleware.UserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: missing})
}

func (h *PantryHandlers) resolve(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, itemID, ownerID uuid.UUID) error,
	message string,
) {
	itemID, err := parseUUIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := op(r.Context(), itemID, middleware.UserID(r)); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: message})
}
