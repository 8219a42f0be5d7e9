package client

import (
	"context"
	"fmt"
	"net/http"

	"home-inventory/internal/models"
)

// RequirementsClient talks to the minimum-stock requirement endpoints.
type RequirementsClient struct {
	c *Client
}

func NewRequirementsClient(c *Client) *RequirementsClient {
	return &RequirementsClient{c: c}
}

type RequirementParams struct {
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	MinimumQuantity int    `json:"minimumQuantity"`
}

func (rc *RequirementsClient) List(ctx context.Context, sess *Session) ([]models.InventoryRequirement, error) {
	var reqs []models.InventoryRequirement
	if err := rc.c.call(ctx, "fetch requirements", http.MethodGet, "/inventory/requirements/items", sess, nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (rc *RequirementsClient) Upsert(ctx context.Context, sess *Session, params RequirementParams) (models.InventoryRequirement, error) {
	var req models.InventoryRequirement
	if err := rc.c.call(ctx, "save requirement", http.MethodPost, "/inventory/requirements", sess, params, &req); err != nil {
		return models.InventoryRequirement{}, err
	}
	return req, nil
}

func (rc *RequirementsClient) AddBatch(ctx context.Context, sess *Session, params []RequirementParams) ([]models.InventoryRequirement, error) {
	var reqs []models.InventoryRequirement
	if err := rc.c.call(ctx, "save requirements", http.MethodPost, "/inventory/requirements/batch", sess, params, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (rc *RequirementsClient) Update(ctx context.Context, sess *Session, productID int64, minimumQuantity int) (models.InventoryRequirement, error) {
	body := map[string]int{"minimumQuantity": minimumQuantity}
	var req models.InventoryRequirement
	path := fmt.Sprintf("/inventory/requirements/%d", productID)
	if err := rc.c.call(ctx, "update requirement", http.MethodPut, path, sess, body, &req); err != nil {
		return models.InventoryRequirement{}, err
	}
	return req, nil
}

func (rc *RequirementsClient) Delete(ctx context.Context, sess *Session, productID int64) error {
	path := fmt.Sprintf("/inventory/requirements/%d", productID)
	return rc.c.call(ctx, "delete requirement", http.MethodDelete, path, sess, nil, nil)
}

func (rc *RequirementsClient) ShoppingList(ctx context.Context, sess *Session) ([]models.ShoppingListItem, error) {
	var list []models.ShoppingListItem
	if err := rc.c.call(ctx, "fetch shopping list", http.MethodGet, "/inventory/requirements/shopping-list", sess, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
