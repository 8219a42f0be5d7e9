package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// InstallationClient talks to the installation/pairing endpoints.
type InstallationClient struct {
	c *Client
}

func NewInstallationClient(c *Client) *InstallationClient {
	return &InstallationClient{c: c}
}

type CreateInstallationResult struct {
	InstallationID uuid.UUID `json:"installationId"`
	PairingCode    string    `json:"pairingCode"`
	ExpiresAt      time.Time `json:"expiresAt"`
	Token          string    `json:"token,omitempty"`
}

type JoinResult struct {
	InstallationID uuid.UUID `json:"installationId"`
	Token          string    `json:"token,omitempty"`
}

// Create registers a new household and returns its id, a shareable pairing
// code and a session token.
func (ic *InstallationClient) Create(ctx context.Context) (CreateInstallationResult, error) {
	var result CreateInstallationResult
	if err := ic.c.call(ctx, "create installation", http.MethodPost, "/installations", nil, nil, &result); err != nil {
		return CreateInstallationResult{}, err
	}
	return result, nil
}

// Join exchanges a pairing code for the installation id it belongs to.
func (ic *InstallationClient) Join(ctx context.Context, code string) (JoinResult, error) {
	body := map[string]string{"code": code}
	var result JoinResult
	if err := ic.c.call(ctx, "join installation", http.MethodPost, "/installations/join", nil, body, &result); err != nil {
		return JoinResult{}, err
	}
	return result, nil
}

// NewPairingCode asks for a fresh pairing code for an existing installation.
func (ic *InstallationClient) NewPairingCode(ctx context.Context, installationID uuid.UUID) (CreateInstallationResult, error) {
	body := map[string]uuid.UUID{"installationId": installationID}
	var result CreateInstallationResult
	if err := ic.c.call(ctx, "issue pairing code", http.MethodPost, "/installations/paircode", nil, body, &result); err != nil {
		return CreateInstallationResult{}, err
	}
	return result, nil
}
