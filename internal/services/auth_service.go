package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassphrase = errors.New("invalid passphrase")

// AuthService checks the shared passphrase against the settings hash. There
// are no accounts: one passphrase gates the whole app.
type AuthService struct {
	settings *SettingsService
}

func NewAuthService(settings *SettingsService) *AuthService {
	return &AuthService{settings: settings}
}

func (service *AuthService) VerifyPassphrase(raw string) error {
	passphrase := strings.TrimSpace(raw)
	if passphrase == "" {
		return ErrInvalidPassphrase
	}

	settings, err := service.settings.Get()
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(settings.PasswordHash), []byte(passphrase)) != nil {
		return ErrInvalidPassphrase
	}
	return nil
}
