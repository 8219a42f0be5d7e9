package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRequirement is a configured minimum desired quantity for a
// product within an installation.
type InventoryRequirement struct {
	ID              int64     `json:"id"`
	InstallationID  uuid.UUID `json:"installationId"`
	ProductID       int64     `json:"productId"`
	ProductName     string    `json:"productName"`
	MinimumQuantity int       `json:"minimumQuantity"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ShoppingListItem is a derived gap between a requirement and current
// stock. Rows with no gap are never produced.
type ShoppingListItem struct {
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	CurrentQuantity int    `json:"currentQuantity"`
	MinimumQuantity int    `json:"minimumQuantity"`
	MissingQuantity int    `json:"missingQuantity"`
}
