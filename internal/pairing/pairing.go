// Package pairing stores short-lived pairing codes that let a second device
// join an existing installation.
package pairing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

var (
	// ErrCodeNotFound is returned when a pairing code does not exist.
	ErrCodeNotFound = errors.New("pairing code not found")
	// ErrCodeExpired is returned when a pairing code exists but its TTL has passed.
	ErrCodeExpired = errors.New("pairing code expired")
)

// Store holds at most one active pairing code per installation.
type Store interface {
	Save(code models.PairingCode) error
	Find(code string) (models.PairingCode, error)
}

// NewCode issues a fresh pairing code for an installation, valid for ttl.
func NewCode(installationID uuid.UUID, ttl time.Duration) models.PairingCode {
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return models.PairingCode{
		Code:           code,
		InstallationID: installationID,
		ExpiresAt:      time.Now().UTC().Add(ttl),
	}
}
