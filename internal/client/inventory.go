package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

// InventoryClient talks to the inventory item endpoints.
type InventoryClient struct {
	c *Client
}

func NewInventoryClient(c *Client) *InventoryClient {
	return &InventoryClient{c: c}
}

// AddItemParams is the create payload. Optional fields are omitted from the
// JSON body entirely when empty, never sent as empty strings.
type AddItemParams struct {
	InstallationID uuid.UUID  `json:"installationId"`
	ProductID      int64      `json:"productId"`
	ProductName    string     `json:"productName"`
	Quantity       int        `json:"quantity"`
	BestBefore     *time.Time `json:"bestBefore,omitempty"`
	Location       string     `json:"location,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// ItemUpdate is a partial update; nil fields are left untouched server-side.
type ItemUpdate struct {
	Quantity   *int       `json:"quantity,omitempty"`
	BestBefore *time.Time `json:"bestBefore,omitempty"`
	Location   *string    `json:"location,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

func (ic *InventoryClient) List(ctx context.Context, sess *Session) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := ic.c.call(ctx, "fetch inventory", http.MethodGet, "/inventory/items", sess, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (ic *InventoryClient) Add(ctx context.Context, sess *Session, params AddItemParams) (models.InventoryItem, error) {
	if params.InstallationID == uuid.Nil && sess != nil {
		params.InstallationID = sess.InstallationID
	}
	var item models.InventoryItem
	if err := ic.c.call(ctx, "add inventory item", http.MethodPost, "/inventory", sess, params, &item); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (ic *InventoryClient) Update(ctx context.Context, sess *Session, productID int64, update ItemUpdate) (models.InventoryItem, error) {
	var item models.InventoryItem
	path := fmt.Sprintf("/inventory/%d", productID)
	if err := ic.c.call(ctx, "update inventory item", http.MethodPut, path, sess, update, &item); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (ic *InventoryClient) Delete(ctx context.Context, sess *Session, productID int64) error {
	path := fmt.Sprintf("/inventory/%d", productID)
	return ic.c.call(ctx, "delete inventory item", http.MethodDelete, path, sess, nil, nil)
}
