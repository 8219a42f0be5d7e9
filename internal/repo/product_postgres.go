package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"home-inventory/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, brand, barcode, category, image_url, official, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		p.Name, nullIfEmpty(p.Brand), nullIfEmpty(p.Barcode), nullIfEmpty(p.Category),
		nullIfEmpty(p.ImageURL), p.Official, p.CreatedAt).Scan(&p.ID)
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := selectProductColumns + ` ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int64) (models.Product, error) {
	query := selectProductColumns + ` WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetByBarcode(barcode string) (models.Product, error) {
	query := selectProductColumns + ` WHERE barcode = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, barcode))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

const selectProductColumns = `SELECT id, name, brand, barcode, category, image_url, official, created_at FROM products`

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var brand, barcode, category, imageURL sql.NullString
	err := row.Scan(&p.ID, &p.Name, &brand, &barcode, &category, &imageURL, &p.Official, &p.CreatedAt)
	p.Brand = brand.String
	p.Barcode = barcode.String
	p.Category = category.String
	p.ImageURL = imageURL.String
	return p, err
}
