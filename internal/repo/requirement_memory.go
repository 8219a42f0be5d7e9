package repo

import (
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

// InMemoryRequirementRepository is an in-memory implementation of RequirementRepository.
type InMemoryRequirementRepository struct {
	requirements []models.InventoryRequirement
	nextID       int64
}

// NewInMemoryRequirementRepository creates a new instance of InMemoryRequirementRepository.
func NewInMemoryRequirementRepository() *InMemoryRequirementRepository {
	return &InMemoryRequirementRepository{
		requirements: []models.InventoryRequirement{},
		nextID:       1,
	}
}

func (r *InMemoryRequirementRepository) Upsert(req models.InventoryRequirement) (models.InventoryRequirement, error) {
	for i, existing := range r.requirements {
		if existing.InstallationID == req.InstallationID && existing.ProductID == req.ProductID {
			existing.ProductName = req.ProductName
			existing.MinimumQuantity = req.MinimumQuantity
			existing.UpdatedAt = time.Now().UTC()
			r.requirements[i] = existing
			return existing, nil
		}
	}
	req.ID = r.nextID
	r.nextID++
	r.requirements = append(r.requirements, req)
	return req, nil
}

func (r *InMemoryRequirementRepository) CreateBatch(reqs []models.InventoryRequirement) ([]models.InventoryRequirement, error) {
	saved := make([]models.InventoryRequirement, 0, len(reqs))
	for _, req := range reqs {
		s, err := r.Upsert(req)
		if err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, nil
}

func (r *InMemoryRequirementRepository) GetAllByInstallation(installationID uuid.UUID) ([]models.InventoryRequirement, error) {
	var reqs []models.InventoryRequirement
	for _, req := range r.requirements {
		if req.InstallationID == installationID {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

func (r *InMemoryRequirementRepository) GetByInstallationAndProduct(installationID uuid.UUID, productID int64) (models.InventoryRequirement, error) {
	for _, req := range r.requirements {
		if req.InstallationID == installationID && req.ProductID == productID {
			return req, nil
		}
	}
	return models.InventoryRequirement{}, ErrRequirementNotFound
}

func (r *InMemoryRequirementRepository) UpdateMinimum(installationID uuid.UUID, productID int64, minimumQuantity int) (models.InventoryRequirement, error) {
	for i, req := range r.requirements {
		if req.InstallationID == installationID && req.ProductID == productID {
			req.MinimumQuantity = minimumQuantity
			req.UpdatedAt = time.Now().UTC()
			r.requirements[i] = req
			return req, nil
		}
	}
	return models.InventoryRequirement{}, ErrRequirementNotFound
}

func (r *InMemoryRequirementRepository) Delete(installationID uuid.UUID, productID int64) error {
	for i, req := range r.requirements {
		if req.InstallationID == installationID && req.ProductID == productID {
			r.requirements = append(r.requirements[:i], r.requirements[i+1:]...)
			return nil
		}
	}
	return ErrRequirementNotFound
}

func (r *InMemoryRequirementRepository) Clear() {
	r.requirements = []models.InventoryRequirement{}
}
