package repo

import (
	"errors"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

// ErrItemNotFound is returned when an inventory item is not found.
var ErrItemNotFound = errors.New("inventory item not found")

// InventoryRepository defines the interface for inventory item data operations.
type InventoryRepository interface {
	Create(item models.InventoryItem) (models.InventoryItem, error)
	GetByID(id int64) (models.InventoryItem, error)
	GetAllByInstallation(installationID uuid.UUID) ([]models.InventoryItem, error)
	GetByInstallationAndProduct(installationID uuid.UUID, productID int64) (models.InventoryItem, error)
	Update(item models.InventoryItem) (models.InventoryItem, error)
	Delete(installationID uuid.UUID, productID int64) error
}
