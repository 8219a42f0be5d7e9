package repo

import (
	"errors"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

// ErrInstallationNotFound is returned when an installation does not exist.
var ErrInstallationNotFound = errors.New("installation not found")

// InstallationRepository defines the interface for installation data operations.
type InstallationRepository interface {
	Create(installation models.Installation) (models.Installation, error)
	Exists(id uuid.UUID) (bool, error)
}
