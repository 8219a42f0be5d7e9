package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

type PostgresInstallationRepository struct {
	db *sql.DB
}

func NewPostgresInstallationRepository(db *sql.DB) *PostgresInstallationRepository {
	return &PostgresInstallationRepository{db: db}
}

func (r *PostgresInstallationRepository) Create(installation models.Installation) (models.Installation, error) {
	query := `INSERT INTO installations (id, created_at) VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, installation.ID, installation.CreatedAt)
	return installation, err
}

func (r *PostgresInstallationRepository) Exists(id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM installations WHERE id = $1)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}
