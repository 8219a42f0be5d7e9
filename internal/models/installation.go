package models

import (
	"time"

	"github.com/google/uuid"
)

// Installation is one household's logical account.
type Installation struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// PairingCode is a short-lived human-shareable code used to join an
// existing installation from another device.
type PairingCode struct {
	Code           string    `json:"code"`
	InstallationID uuid.UUID `json:"installationId"`
	ExpiresAt      time.Time `json:"expiresAt"`
}
