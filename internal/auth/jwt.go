package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtSecret = []byte("super-secret-key")

// SetSecret replaces the signing secret. Called once at startup from config.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// GenerateInstallationToken mints a session token carrying the installation
// id, handed out at installation create/join so clients may authenticate
// with a Bearer token instead of the raw id header.
func GenerateInstallationToken(installationID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"installation_id": installationID.String(),
		"exp":             time.Now().Add(30 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// InstallationFromToken parses a session token and returns the installation
// id it was minted for.
func InstallationFromToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}
	raw, ok := claims["installation_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("token has no installation id")
	}
	return uuid.Parse(raw)
}
