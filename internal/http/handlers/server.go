package handlers

import (
	"time"

	"home-inventory/internal/pairing"
	"home-inventory/internal/repo"
)

var (
	inventoryRepo    repo.InventoryRepository
	productRepo      repo.ProductRepository
	requirementRepo  repo.RequirementRepository
	installationRepo repo.InstallationRepository

	pairingStore   pairing.Store
	pairingCodeTTL = 15 * time.Minute
)

func SetInventoryRepo(r repo.InventoryRepository) {
	inventoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetRequirementRepo(r repo.RequirementRepository) {
	requirementRepo = r
}

func SetInstallationRepo(r repo.InstallationRepository) {
	installationRepo = r
}

func SetPairingStore(s pairing.Store) {
	pairingStore = s
}

func SetPairingCodeTTL(ttl time.Duration) {
	if ttl > 0 {
		pairingCodeTTL = ttl
	}
}
