package i18n

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	LangJA = "ja"
	LangEN = "en"
)

// Manager holds the message catalogs loaded from a locales directory, one
// JSON file per language. Both ja and en must be present.
type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
}

func NewManager(defaultLanguage string, localesDir string) (*Manager, error) {
	entries, err := os.ReadDir(localesDir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	manager := &Manager{locales: map[string]map[string]string{}}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		language := strings.ToLower(strings.TrimSuffix(entry.Name(), ".json"))
		messages, err := loadLocaleFile(filepath.Join(localesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", language, err)
		}
		manager.locales[language] = messages
		manager.supported = append(manager.supported, language)
	}

	for _, required := range []string{LangJA, LangEN} {
		if _, ok := manager.locales[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing from %s", required, localesDir)
		}
	}

	slices.Sort(manager.supported)
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func loadLocaleFile(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	messages := map[string]string{}
	if err := json.Unmarshal(content, &messages); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages")
	}
	return messages, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	return slices.Clone(manager.supported)
}

// NormalizeLanguage maps a raw language tag (ja-JP, EN_us) onto a supported
// language, falling back to the default for anything unrecognized.
func (manager *Manager) NormalizeLanguage(raw string) string {
	if base := baseLanguageTag(raw); manager.isSupported(base) {
		return base
	}
	return manager.defaultLanguage
}

func (manager *Manager) DetectFromAcceptLanguage(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		token, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if base := baseLanguageTag(token); manager.isSupported(base) {
			return base
		}
	}
	return manager.defaultLanguage
}

// Messages merges the requested locale over the default one, so a key
// missing from a translation still renders in the default language.
func (manager *Manager) Messages(language string) map[string]string {
	defaultMessages := manager.locales[manager.defaultLanguage]
	targetMessages := manager.locales[manager.NormalizeLanguage(language)]

	result := make(map[string]string, len(defaultMessages))
	maps.Copy(result, defaultMessages)
	maps.Copy(result, targetMessages)
	return result
}

func (manager *Manager) Translate(language string, key string) string {
	if value, ok := manager.Messages(language)[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

func (manager *Manager) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(language, key), args...)
}

func (manager *Manager) isSupported(language string) bool {
	if language == "" {
		return false
	}
	_, ok := manager.locales[language]
	return ok
}

func baseLanguageTag(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	language = strings.ReplaceAll(language, "_", "-")
	base, _, _ := strings.Cut(language, "-")
	return base
}
