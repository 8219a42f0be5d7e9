package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

type PostgresRequirementRepository struct {
	db *sql.DB
}

func NewPostgresRequirementRepository(db *sql.DB) *PostgresRequirementRepository {
	return &PostgresRequirementRepository{db: db}
}

func (r *PostgresRequirementRepository) Upsert(req models.InventoryRequirement) (models.InventoryRequirement, error) {
	query := `INSERT INTO inventory_requirements (installation_id, product_id, product_name, minimum_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (installation_id, product_id)
		DO UPDATE SET product_name = EXCLUDED.product_name, minimum_quantity = EXCLUDED.minimum_quantity, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		req.InstallationID, req.ProductID, req.ProductName, req.MinimumQuantity,
		req.CreatedAt, req.UpdatedAt).Scan(&req.ID, &req.CreatedAt)
	return req, err
}

func (r *PostgresRequirementRepository) CreateBatch(reqs []models.InventoryRequirement) ([]models.InventoryRequirement, error) {
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

func (r *PostgresRequirementRepository) GetAllByInstallation(installationID uuid.UUID) ([]models.InventoryRequirement, error) {
	query := selectRequirementColumns + ` WHERE installation_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, installationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []models.InventoryRequirement
	for rows.Next() {
		var req models.InventoryRequirement
		if err := rows.Scan(&req.ID, &req.InstallationID, &req.ProductID, &req.ProductName,
			&req.MinimumQuantity, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *PostgresRequirementRepository) GetByInstallationAndProduct(installationID uuid.UUID, productID int64) (models.InventoryRequirement, error) {
	query := selectRequirementColumns + ` WHERE installation_id = $1 AND product_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var req models.InventoryRequirement
	err := r.db.QueryRowContext(ctx, query, installationID, productID).
		Scan(&req.ID, &req.InstallationID, &req.ProductID, &req.ProductName,
			&req.MinimumQuantity, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryRequirement{}, ErrRequirementNotFound
	}
	return req, err
}

func (r *PostgresRequirementRepository) UpdateMinimum(installationID uuid.UUID, productID int64, minimumQuantity int) (models.InventoryRequirement, error) {
	query := `UPDATE inventory_requirements
		SET minimum_quantity = $1, updated_at = $2
		WHERE installation_id = $3 AND product_id = $4
		RETURNING id, installation_id, product_id, product_name, minimum_quantity, created_at, updated_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var req models.InventoryRequirement
	err := r.db.QueryRowContext(ctx, query, minimumQuantity, time.Now().UTC(), installationID, productID).
		Scan(&req.ID, &req.InstallationID, &req.ProductID, &req.ProductName,
			&req.MinimumQuantity, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryRequirement{}, ErrRequirementNotFound
	}
	return req, err
}

func (r *PostgresRequirementRepository) Delete(installationID uuid.UUID, productID int64) error {
	query := `DELETE FROM inventory_requirements WHERE installation_id = $1 AND product_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, installationID, productID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrRequirementNotFound
	}
	return nil
}

const selectRequirementColumns = `SELECT id, installation_id, product_id, product_name, minimum_quantity, created_at, updated_at FROM inventory_requirements`
