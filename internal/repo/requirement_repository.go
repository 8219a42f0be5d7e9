package repo

import (
	"errors"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

// ErrRequirementNotFound is returned when a requirement is not found.
var ErrRequirementNotFound = errors.New("requirement not found")

// RequirementRepository defines the interface for minimum-stock requirement
// data operations. Upsert is keyed by (installation, product).
type RequirementRepository interface {
	Upsert(req models.InventoryRequirement) (models.InventoryRequirement, error)
	CreateBatch(reqs []models.InventoryRequirement) ([]models.InventoryRequirement, error)
	GetAllByInstallation(installationID uuid.UUID) ([]models.InventoryRequirement, error)
	GetByInstallationAndProduct(installationID uuid.UUID, productID int64) (models.InventoryRequirement, error)
	UpdateMinimum(installationID uuid.UUID, productID int64, minimumQuantity int) (models.InventoryRequirement, error)
	Delete(installationID uuid.UUID, productID int64) error
}
