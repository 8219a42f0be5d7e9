package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

type PostgresInventoryRepository struct {
	db *sql.DB
}

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

func (r *PostgresInventoryRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	query := `INSERT INTO inventory_items (installation_id, product_id, product_name, quantity, best_before, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		item.InstallationID, item.ProductID, item.ProductName, item.Quantity,
		item.BestBefore, nullIfEmpty(item.Location), nullIfEmpty(item.Notes),
		item.CreatedAt, item.UpdatedAt).Scan(&item.ID)
	return item, err
}

func (r *PostgresInventoryRepository) GetByID(id int64) (models.InventoryItem, error) {
	query := selectItemColumns + ` WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return item, err
}

func (r *PostgresInventoryRepository) GetAllByInstallation(installationID uuid.UUID) ([]models.InventoryItem, error) {
	query := selectItemColumns + ` WHERE installation_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, installationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresInventoryRepository) GetByInstallationAndProduct(installationID uuid.UUID, productID int64) (models.InventoryItem, error) {
	query := selectItemColumns + ` WHERE installation_id = $1 AND product_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, installationID, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return item, err
}

func (r *PostgresInventoryRepository) Update(item models.InventoryItem) (models.InventoryItem, error) {
	query := `UPDATE inventory_items
		SET quantity = $1, best_before = $2, location = $3, notes = $4, updated_at = $5
		WHERE id = $6`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		item.Quantity, item.BestBefore, nullIfEmpty(item.Location), nullIfEmpty(item.Notes),
		item.UpdatedAt, item.ID)
	if err != nil {
		return models.InventoryItem{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return item, nil
}

func (r *PostgresInventoryRepository) Delete(installationID uuid.UUID, productID int64) error {
	query := `DELETE FROM inventory_items WHERE installation_id = $1 AND product_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, installationID, productID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

const selectItemColumns = `SELECT id, installation_id, product_id, product_name, quantity, best_before, location, notes, created_at, updated_at FROM inventory_items`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.InventoryItem, error) {
	var item models.InventoryItem
	var location, notes sql.NullString
	err := row.Scan(&item.ID, &item.InstallationID, &item.ProductID, &item.ProductName,
		&item.Quantity, &item.BestBefore, &location, &notes, &item.CreatedAt, &item.UpdatedAt)
	item.Location = location.String
	item.Notes = notes.String
	return item, err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
