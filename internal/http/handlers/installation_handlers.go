package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"home-inventory/internal/auth"
	"home-inventory/internal/models"
	"home-inventory/internal/pairing"
)

// CreateInstallationHandler godoc
// @Summary Create a new installation
// @Description Creates a household account and returns its id, a pairing code and a session token
// @Tags installations
// @Produce json
// @Success 201 {object} CreateInstallationResponse
// @Failure 500 {string} string "Internal error"
// @Router /installations [post]
func CreateInstallationHandler(w http.ResponseWriter, r *http.Request) {
	installation := models.Installation{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := installationRepo.Create(installation); err != nil {
		http.Error(w, "could not create installation", http.StatusInternalServerError)
		return
	}

	code := pairing.NewCode(installation.ID, pairingCodeTTL)
	if err := pairingStore.Save(code); err != nil {
		http.Error(w, "could not issue pairing code", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateInstallationToken(installation.ID)
	if err != nil {
		log.Printf("could not mint session token for %s: %v", installation.ID, err)
	}

	log.Printf("new installation created: %s, pairing code %s", installation.ID, code.Code)
	writeJSON(w, http.StatusCreated, CreateInstallationResponse{
		InstallationID: installation.ID,
		PairingCode:    code.Code,
		ExpiresAt:      code.ExpiresAt,
		Token:          token,
	})
}

// JoinInstallationHandler godoc
// @Summary Join an installation using a pairing code
// @Tags installations
// @Accept json
// @Produce json
// @Param join body JoinInstallationRequest true "Pairing code"
// @Success 200 {object} JoinInstallationResponse
// @Failure 400 {string} string "Invalid pairing code"
// @Failure 410 {string} string "Pairing code expired"
// @Router /installations/join [post]
func JoinInstallationHandler(w http.ResponseWriter, r *http.Request) {
	var req JoinInstallationRequest
	if err := readJSON(w, r, &req); err != nil || req.Code == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	code, err := pairingStore.Find(req.Code)
	if err != nil {
		if errors.Is(err, pairing.ErrCodeExpired) {
			http.Error(w, "pairing code expired", http.StatusGone)
			return
		}
		if errors.Is(err, pairing.ErrCodeNotFound) {
			http.Error(w, "invalid pairing code", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not verify pairing code", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateInstallationToken(code.InstallationID)
	if err != nil {
		log.Printf("could not mint session token for %s: %v", code.InstallationID, err)
	}

	log.Printf("device joined installation %s with code %s", code.InstallationID, req.Code)
	writeJSON(w, http.StatusOK, JoinInstallationResponse{
		InstallationID: code.InstallationID,
		Token:          token,
	})
}

// NewPairingCodeHandler godoc
// @Summary Issue a fresh pairing code for an existing installation
// @Tags installations
// @Accept json
// @Produce json
// @Param installation body NewPairingCodeRequest true "Installation id"
// @Success 200 {object} CreateInstallationResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Installation not found"
// @Router /installations/paircode [post]
func NewPairingCodeHandler(w http.ResponseWriter, r *http.Request) {
	var req NewPairingCodeRequest
	if err := readJSON(w, r, &req); err != nil || req.InstallationID == uuid.Nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	exists, err := installationRepo.Exists(req.InstallationID)
	if err != nil {
		http.Error(w, "could not verify installation", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "installation not found", http.StatusNotFound)
		return
	}

	code := pairing.NewCode(req.InstallationID, pairingCodeTTL)
	if err := pairingStore.Save(code); err != nil {
		http.Error(w, "could not issue pairing code", http.StatusInternalServerError)
		return
	}

	log.Printf("new pairing code %s for installation %s", code.Code, req.InstallationID)
	writeJSON(w, http.StatusOK, CreateInstallationResponse{
		InstallationID: req.InstallationID,
		PairingCode:    code.Code,
		ExpiresAt:      code.ExpiresAt,
	})
}

// PairingCodeQRHandler godoc
// @Summary Render a pairing code as a QR image
// @Tags installations
// @Produce png
// @Param code path string true "Pairing code"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid pairing code"
// @Failure 410 {string} string "Pairing code expired"
// @Router /installations/paircode/{code}/qr [get]
func PairingCodeQRHandler(w http.ResponseWriter, r *http.Request) {
	codeStr := chi.URLParam(r, "code")

	if _, err := pairingStore.Find(codeStr); err != nil {
		if errors.Is(err, pairing.ErrCodeExpired) {
			http.Error(w, "pairing code expired", http.StatusGone)
			return
		}
		http.Error(w, "invalid pairing code", http.StatusBadRequest)
		return
	}

	png, err := qrcode.Encode(codeStr, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "could not render QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
