package repo

import (
	"errors"

	"home-inventory/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product catalog operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int64) (models.Product, error)
	GetByBarcode(barcode string) (models.Product, error)
}
