package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/ohmyyasu0122/health-management-app/internal/api"
	"github.com/ohmyyasu0122/health-management-app/internal/cli"
	"github.com/ohmyyasu0122/health-management-app/internal/db"
	"github.com/ohmyyasu0122/health-management-app/internal/i18n"
	"github.com/ohmyyasu0122/health-management-app/internal/recipes"
)

func main() {
	_ = godotenv.Load()

	dbPath := getEnv("DB_PATH", filepath.Join("data", "health.db"))

	if len(os.Args) > 1 && os.Args[1] == "reset-passphrase" {
		if err := cli.RunResetPassphraseCommand(dbPath); err != nil {
			log.Fatalf("reset passphrase failed: %v", err)
		}
		return
	}

	location := mustLoadLocation(getEnv("TZ", "Asia/Tokyo"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	port := getEnv("PORT", "8080")
	defaultLanguage := getEnv("DEFAULT_LANGUAGE", "ja")
	cookieSecure := getEnvBool("COOKIE_SECURE", false)

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	i18nManager, err := i18n.NewManager(defaultLanguage, filepath.Join("internal", "i18n", "locales"))
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	handler, err := api.NewHandler(database, secretKey, filepath.Join("internal", "templates"), location, i18nManager, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	if searcher := recipes.NewGoogleSearcher(os.Getenv("GOOGLE_SEARCH_API_KEY"), os.Getenv("GOOGLE_SEARCH_ENGINE_ID")); searcher != nil {
		handler.WithRecipeSearcher(searcher)
	}

	app := fiber.New(fiber.Config{
		AppName:               "HealthApp",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("HealthApp listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "health_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

var insecureSecretPlaceholders = []string{
	"change_me_in_production",
	"replace_with_at_least_32_random_characters",
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	for _, placeholder := range insecureSecretPlaceholders {
		if secret == placeholder {
			return "", fmt.Errorf("SECRET_KEY must not use the placeholder value %q", placeholder)
		}
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
