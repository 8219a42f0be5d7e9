package handlers

import (
	"time"

	"github.com/google/uuid"
)

type CreateInventoryItemRequest struct {
	InstallationID uuid.UUID  `json:"installationId,omitempty"`
	ProductID      int64      `json:"productId"`
	ProductName    string     `json:"productName"`
	Quantity       int        `json:"quantity"`
	BestBefore     *time.Time `json:"bestBefore,omitempty"`
	Location       string     `json:"location,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// UpdateInventoryItemRequest carries a partial update; nil fields are left
// untouched.
type UpdateInventoryItemRequest struct {
	Quantity   *int       `json:"quantity,omitempty"`
	BestBefore *time.Time `json:"bestBefore,omitempty"`
	Location   *string    `json:"location,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

type RequirementRequest struct {
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	MinimumQuantity int    `json:"minimumQuantity"`
}

type UpdateRequirementRequest struct {
	MinimumQuantity *int `json:"minimumQuantity,omitempty"`
}

type ProductRequest struct {
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Barcode  string `json:"barcode,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type CreateInstallationResponse struct {
	InstallationID uuid.UUID `json:"installationId"`
	PairingCode    string    `json:"pairingCode"`
	ExpiresAt      time.Time `json:"expiresAt"`
	Token          string    `json:"token,omitempty"`
}

type JoinInstallationRequest struct {
	Code string `json:"code"`
}

type JoinInstallationResponse struct {
	InstallationID uuid.UUID `json:"installationId"`
	Token          string    `json:"token,omitempty"`
}

type NewPairingCodeRequest struct {
	InstallationID uuid.UUID `json:"installationId"`
}
