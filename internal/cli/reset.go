package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ohmyyasu0122/health-management-app/internal/db"
	"github.com/ohmyyasu0122/health-management-app/internal/security"
	"github.com/ohmyyasu0122/health-management-app/internal/services"
	"golang.org/x/crypto/bcrypt"
)

// RunResetPassphraseCommand replaces the login passphrase. It prompts for a
// new one with echo disabled; an empty prompt (or no usable terminal) falls
// back to a generated temporary passphrase printed once.
func RunResetPassphraseCommand(dbPath string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	store := db.NewSettingsRepository(database)
	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	passphrase, generated, err := promptOrGeneratePassphrase()
	if err != nil {
		return err
	}

	passphraseHash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash passphrase: %w", err)
	}

	settings.PasswordHash = string(passphraseHash)
	if err := store.Save(&settings); err != nil {
		return fmt.Errorf("update passphrase: %w", err)
	}

	fmt.Println("✅ Passphrase reset successful")
	if generated {
		fmt.Printf("Temporary passphrase: %s\n", passphrase)
		fmt.Println("Change it from the settings page after logging in.")
	}

	return nil
}

func promptOrGeneratePassphrase() (string, bool, error) {
	fmt.Print("New passphrase (leave empty to generate): ")
	entered, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err == nil {
		if passphrase := strings.TrimSpace(string(entered)); passphrase != "" {
			return passphrase, false, nil
		}
	}

	generatedPassphrase, err := generateTemporaryPassphrase(12)
	if err != nil {
		return "", false, fmt.Errorf("generate temporary passphrase: %w", err)
	}
	return generatedPassphrase, true, nil
}

func readTrimmedLine(stdin io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func generateTemporaryPassphrase(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
