package client

import (
	"context"
	"fmt"
	"net/http"

	"home-inventory/internal/models"
)

// ProductClient talks to the product catalog endpoints.
type ProductClient struct {
	c *Client
}

func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

type CreateProductParams struct {
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Barcode  string `json:"barcode,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (pc *ProductClient) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := pc.c.call(ctx, "fetch products", http.MethodGet, "/product/items", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (pc *ProductClient) Get(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	path := fmt.Sprintf("/product/%d", id)
	if err := pc.c.call(ctx, "fetch product", http.MethodGet, path, nil, nil, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (pc *ProductClient) GetByBarcode(ctx context.Context, barcode string) (models.Product, error) {
	var product models.Product
	if err := pc.c.call(ctx, "fetch product by barcode", http.MethodGet, "/product/barcode/"+barcode, nil, nil, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (pc *ProductClient) Create(ctx context.Context, params CreateProductParams) (models.Product, error) {
	var product models.Product
	if err := pc.c.call(ctx, "create product", http.MethodPost, "/product", nil, params, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}
