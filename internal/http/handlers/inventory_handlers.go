package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"home-inventory/internal/auth"
	"home-inventory/internal/models"
	"home-inventory/internal/repo"
)

// InstallationFromRequest resolves the calling installation from either a
// Bearer session token or the raw X-Installation-Id header.
func InstallationFromRequest(r *http.Request) (uuid.UUID, bool) {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		id, err := auth.InstallationFromToken(strings.TrimPrefix(authz, "Bearer "))
		if err == nil {
			return id, true
		}
		return uuid.Nil, false
	}

	if header := r.Header.Get("X-Installation-Id"); header != "" {
		id, err := uuid.Parse(header)
		if err == nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

// GetInventoryItemsHandler godoc
// @Summary List inventory items for the calling installation
// @Tags inventory
// @Produce json
// @Success 200 {array} models.InventoryItem
// @Failure 500 {string} string "Internal error"
// @Router /inventory/items [get]
// @Security InstallationAuth
func GetInventoryItemsHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	items, err := inventoryRepo.GetAllByInstallation(installationID)
	if err != nil {
		http.Error(w, "could not fetch inventory items", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// GetInventoryItemByIDHandler godoc
// @Summary Get a single inventory item by id
// @Tags inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.InventoryItem
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /inventory/{id} [get]
// @Security InstallationAuth
func GetInventoryItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	item, err := inventoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// AddInventoryItemHandler godoc
// @Summary Add an item to the inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body CreateInventoryItemRequest true "Item to add"
// @Success 201 {object} models.InventoryItem
// @Failure 400 {object} []ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /inventory [post]
func AddInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	installationID := req.InstallationID
	if installationID == uuid.Nil {
		installationID, _ = InstallationFromRequest(r)
	}
	if installationID == uuid.Nil {
		http.Error(w, "missing installation id", http.StatusBadRequest)
		return
	}

	validationErrors := validateCreateItem(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	now := time.Now().UTC()
	item := models.InventoryItem{
		InstallationID: installationID,
		ProductID:      req.ProductID,
		ProductName:    req.ProductName,
		Quantity:       req.Quantity,
		BestBefore:     req.BestBefore,
		Location:       req.Location,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := inventoryRepo.Create(item)
	if err != nil {
		http.Error(w, "could not add inventory item", http.StatusInternalServerError)
		return
	}

	log.Printf("new item added to inventory: id=%d, product=%s", created.ID, created.ProductName)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateInventoryItemHandler godoc
// @Summary Update an inventory item by product
// @Tags inventory
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param updates body UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} models.InventoryItem
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /inventory/{productId} [put]
// @Security InstallationAuth
func UpdateInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req UpdateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		http.Error(w, "quantity cannot be negative", http.StatusBadRequest)
		return
	}

	item, err := inventoryRepo.GetByInstallationAndProduct(installationID, productID)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.BestBefore != nil {
		item.BestBefore = req.BestBefore
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	updated, err := inventoryRepo.Update(item)
	if err != nil {
		http.Error(w, "could not update item", http.StatusInternalServerError)
		return
	}

	log.Printf("item updated: installation=%s, product=%d", installationID, productID)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteInventoryItemHandler godoc
// @Summary Delete an inventory item by product
// @Tags inventory
// @Param productId path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /inventory/{productId} [delete]
// @Security InstallationAuth
func DeleteInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := inventoryRepo.Delete(installationID, productID); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}

	log.Printf("item deleted: installation=%s, product=%d", installationID, productID)
	w.WriteHeader(http.StatusNoContent)
}
