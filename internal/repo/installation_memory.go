package repo

import (
	"github.com/google/uuid"

	"home-inventory/internal/models"
)

// InMemoryInstallationRepository is an in-memory implementation of InstallationRepository.
type InMemoryInstallationRepository struct {
	installations map[uuid.UUID]models.Installation
}

// NewInMemoryInstallationRepository creates a new instance of InMemoryInstallationRepository.
func NewInMemoryInstallationRepository() *InMemoryInstallationRepository {
	return &InMemoryInstallationRepository{
		installations: map[uuid.UUID]models.Installation{},
	}
}

func (r *InMemoryInstallationRepository) Create(installation models.Installation) (models.Installation, error) {
	r.installations[installation.ID] = installation
	return installation, nil
}

func (r *InMemoryInstallationRepository) Exists(id uuid.UUID) (bool, error) {
	_, ok := r.installations[id]
	return ok, nil
}

func (r *InMemoryInstallationRepository) Clear() {
	r.installations = map[uuid.UUID]models.Installation{}
}
