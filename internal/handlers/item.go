package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shahedzaman612/Inventory-Backend/internal/middleware"
	"github.com/shahedzaman612/Inventory-Backend/internal/service"
)

// ItemHandler обрабатывает items внутри инвентаря.
type ItemHandler struct {
	Items  *service.ItemService
	Logger *zap.SugaredLogger
}

func NewItemHandler(items *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{Items: items, Logger: logger}
}

type addItemRequest struct {
	ItemID       string         `json:"itemId" validate:"required"`
	Name         string         `json:"name" validate:"required"`
	Quantity     *int           `json:"quantity" validate:"required"`
	CustomFields map[string]any `json:"customFields"`
}

type updateItemRequest struct {
	ItemID       *string        `json:"itemId"`
	Name         *string        `json:"name"`
	Quantity     *int           `json:"quantity"`
	CustomFields map[string]any `json:"customFields"`
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Items.List(r.Context(), chi.URLParam(r, "inventoryId"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if msg, ok := checkRequest(req); !ok {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	item, err := h.Items.Add(r.Context(), chi.URLParam(r, "inventoryId"), identity, service.ItemInput{
		ItemID:       req.ItemID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		CustomFields: req.CustomFields,
	})
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	item, err := h.Items.Update(
		r.Context(),
		chi.URLParam(r, "inventoryId"),
		chi.URLParam(r, "itemId"),
		identity,
		service.ItemPatch{
			ItemID:       req.ItemID,
			Name:         req.Name,
			Quantity:     req.Quantity,
			CustomFields: req.CustomFields,
		},
	)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	err := h.Items.Delete(r.Context(), chi.URLParam(r, "inventoryId"), chi.URLParam(r, "itemId"), identity)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Item deleted successfully")
}
