package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is one stocked product inside an installation. ProductName
// is denormalized from the catalog for display.
type InventoryItem struct {
	ID             int64      `json:"id"`
	InstallationID uuid.UUID  `json:"installationId"`
	ProductID      int64      `json:"productId"`
	ProductName    string     `json:"productName"`
	Quantity       int        `json:"quantity"`
	BestBefore     *time.Time `json:"bestBefore,omitempty"`
	Location       string     `json:"location,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
