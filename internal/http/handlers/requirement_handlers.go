package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"home-inventory/internal/models"
	"home-inventory/internal/repo"
)

// GetRequirementsHandler godoc
// @Summary List minimum-stock requirements
// @Tags requirements
// @Produce json
// @Success 200 {array} models.InventoryRequirement
// @Failure 500 {string} string "Internal error"
// @Router /inventory/requirements/items [get]
// @Security InstallationAuth
func GetRequirementsHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	reqs, err := requirementRepo.GetAllByInstallation(installationID)
	if err != nil {
		http.Error(w, "could not fetch requirements", http.StatusInternalServerError)
		return
	}
	if reqs == nil {
		reqs = []models.InventoryRequirement{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

// UpsertRequirementHandler godoc
// @Summary Create or replace a requirement for a product
// @Tags requirements
// @Accept json
// @Produce json
// @Param requirement body RequirementRequest true "Requirement"
// @Success 201 {object} models.InventoryRequirement
// @Failure 400 {object} []ValidationError
// @Router /inventory/requirements [post]
// @Security InstallationAuth
func UpsertRequirementHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	var req RequirementRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateRequirement(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	saved, err := requirementRepo.Upsert(newRequirement(installationID, req))
	if err != nil {
		http.Error(w, "could not save requirement", http.StatusInternalServerError)
		return
	}

	log.Printf("requirement saved: installation=%s, product=%s", installationID, saved.ProductName)
	writeJSON(w, http.StatusCreated, saved)
}

// AddRequirementsBatchHandler godoc
// @Summary Create several requirements at once
// @Tags requirements
// @Accept json
// @Produce json
// @Param requirements body []RequirementRequest true "Requirements"
// @Success 201 {array} models.InventoryRequirement
// @Failure 400 {object} []ValidationError
// @Router /inventory/requirements/batch [post]
// @Security InstallationAuth
func AddRequirementsBatchHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	var reqs []RequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := []ValidationError{}
	for _, req := range reqs {
		validationErrors = append(validationErrors, validateRequirement(req)...)
	}
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	entities := make([]models.InventoryRequirement, len(reqs))
	for i, req := range reqs {
		entities[i] = newRequirement(installationID, req)
	}

	saved, err := requirementRepo.CreateBatch(entities)
	if err != nil {
		http.Error(w, "could not save requirements", http.StatusInternalServerError)
		return
	}

	log.Printf("batch added %d requirements for installation %s", len(saved), installationID)
	writeJSON(w, http.StatusCreated, saved)
}

// UpdateRequirementHandler godoc
// @Summary Update a requirement's minimum quantity
// @Tags requirements
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param updates body UpdateRequirementRequest true "Fields to update"
// @Success 200 {object} models.InventoryRequirement
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /inventory/requirements/{productId} [put]
// @Security InstallationAuth
func UpdateRequirementHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req UpdateRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.MinimumQuantity == nil {
		writeJSON(w, http.StatusBadRequest, []ValidationError{
			{Field: "MinimumQuantity", Description: "MinimumQuantity is required"},
		})
		return
	}
	if *req.MinimumQuantity <= 0 {
		writeJSON(w, http.StatusBadRequest, []ValidationError{
			{Field: "MinimumQuantity", Description: "MinimumQuantity must be greater than zero"},
		})
		return
	}

	updated, err := requirementRepo.UpdateMinimum(installationID, productID, *req.MinimumQuantity)
	if err != nil {
		if errors.Is(err, repo.ErrRequirementNotFound) {
			http.Error(w, "requirement not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update requirement", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteRequirementHandler godoc
// @Summary Delete a requirement by product
// @Tags requirements
// @Param productId path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /inventory/requirements/{productId} [delete]
// @Security InstallationAuth
func DeleteRequirementHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := requirementRepo.Delete(installationID, productID); err != nil {
		if errors.Is(err, repo.ErrRequirementNotFound) {
			http.Error(w, "requirement not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete requirement", http.StatusInternalServerError)
		return
	}

	log.Printf("requirement deleted: installation=%s, product=%d", installationID, productID)
	w.WriteHeader(http.StatusNoContent)
}

// GetShoppingListHandler godoc
// @Summary Derived shopping list: requirement minus current stock
// @Tags requirements
// @Produce json
// @Success 200 {array} models.ShoppingListItem
// @Failure 500 {string} string "Internal error"
// @Router /inventory/requirements/shopping-list [get]
// @Security InstallationAuth
func GetShoppingListHandler(w http.ResponseWriter, r *http.Request) {
	installationID, _ := InstallationFromRequest(r)

	reqs, err := requirementRepo.GetAllByInstallation(installationID)
	if err != nil {
		http.Error(w, "could not fetch requirements", http.StatusInternalServerError)
		return
	}
	items, err := inventoryRepo.GetAllByInstallation(installationID)
	if err != nil {
		http.Error(w, "could not fetch inventory items", http.StatusInternalServerError)
		return
	}

	stock := make(map[int64]int)
	for _, item := range items {
		stock[item.ProductID] += item.Quantity
	}

	list := []models.ShoppingListItem{}
	for _, req := range reqs {
		current := stock[req.ProductID]
		missing := req.MinimumQuantity - current
		if missing > 0 {
			list = append(list, models.ShoppingListItem{
				ProductID:       req.ProductID,
				ProductName:     req.ProductName,
				CurrentQuantity: current,
				MinimumQuantity: req.MinimumQuantity,
				MissingQuantity: missing,
			})
		}
	}
	writeJSON(w, http.StatusOK, list)
}

func newRequirement(installationID uuid.UUID, req RequirementRequest) models.InventoryRequirement {
	now := time.Now().UTC()
	return models.InventoryRequirement{
		InstallationID:  installationID,
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		MinimumQuantity: req.MinimumQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
