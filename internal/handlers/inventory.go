package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shahedzaman612/Inventory-Backend/internal/middleware"
	"github.com/shahedzaman612/Inventory-Backend/internal/model"
	"github.com/shahedzaman612/Inventory-Backend/internal/service"
)

// InventoryHandler обрабатывает CRUD, поиск и статистику инвентарей.
type InventoryHandler struct {
	Inventories *service.InventoryService
	Logger      *zap.SugaredLogger
}

func NewInventoryHandler(inventories *service.InventoryService, logger *zap.SugaredLogger) *InventoryHandler {
	return &InventoryHandler{Inventories: inventories, Logger: logger}
}

type createInventoryRequest struct {
	Title        string             `json:"title" validate:"required"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Tags         []string           `json:"tags"`
	CustomFields model.CustomFields `json:"customFields"`
}

type updateInventoryRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Category     *string             `json:"category"`
	Tags         *[]string           `json:"tags"`
	CustomFields *model.CustomFields `json:"customFields"`
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	invs, err := h.Inventories.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, invs)
}

func (h *InventoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	invs, err := h.Inventories.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, invs)
}

// My — инвентари текущего пользователя.
func (h *InventoryHandler) My(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	invs, err := h.Inventories.ListByOwner(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, invs)
}

func (h *InventoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Inventories.Stats(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req createInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	inv, err := h.Inventories.Create(r.Context(), identity, service.InventoryInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Tags:         req.Tags,
		CustomFields: req.CustomFields,
	})
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Inventories.Get(r.Context(), chi.URLParam(r, "inventoryId"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req updateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	inv, err := h.Inventories.Update(r.Context(), chi.URLParam(r, "inventoryId"), identity, service.InventoryPatch{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Tags:         req.Tags,
		CustomFields: req.CustomFields,
	})
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	if err := h.Inventories.Delete(r.Context(), chi.URLParam(r, "inventoryId"), identity); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Inventory deleted successfully")
}
