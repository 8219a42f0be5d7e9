package repo

import (
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of InventoryRepository.
type InMemoryInventoryRepository struct {
	items  []models.InventoryItem
	nextID int64
}

// NewInMemoryInventoryRepository creates a new instance of InMemoryInventoryRepository.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{
		items:  []models.InventoryItem{},
		nextID: 1,
	}
}

func (r *InMemoryInventoryRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryInventoryRepository) GetByID(id int64) (models.InventoryItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryInventoryRepository) GetAllByInstallation(installationID uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	for _, it := range r.items {
		if it.InstallationID == installationID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *InMemoryInventoryRepository) GetByInstallationAndProduct(installationID uuid.UUID, productID int64) (models.InventoryItem, error) {
	for _, it := range r.items {
		if it.InstallationID == installationID && it.ProductID == productID {
			return it, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryInventoryRepository) Update(item models.InventoryItem) (models.InventoryItem, error) {
	for i, it := range r.items {
		if it.ID == item.ID {
			item.UpdatedAt = time.Now().UTC()
			r.items[i] = item
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryInventoryRepository) Delete(installationID uuid.UUID, productID int64) error {
	for i, it := range r.items {
		if it.InstallationID == installationID && it.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryInventoryRepository) Clear() {
	r.items = []models.InventoryItem{}
}
