package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/db"
	"github.com/ohmyyasu0122/health-management-app/internal/i18n"
	"github.com/ohmyyasu0122/health-management-app/internal/recipes"
	"github.com/ohmyyasu0122/health-management-app/internal/services"
	"gorm.io/gorm"
)

// Handler owns the HTTP surface: parsed page templates, the session secret,
// and the services everything is routed through.
type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	templates    map[string]*template.Template

	repositories    *db.Repositories
	recipeSearcher  recipes.Searcher
	authService     *services.AuthService
	recordService   *services.RecordService
	settingsService *services.SettingsService
	adviceService   *services.AdviceService
}

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	templates, err := parsePageTemplates(templateDir)
	if err != nil {
		return nil, err
	}

	return &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		templates:    templates,
	}, nil
}

func parsePageTemplates(templateDir string) (map[string]*template.Template, error) {
	pages := []string{"login", "dashboard", "input", "settings"}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(templateFuncs()).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatFloat": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"t": translateMessage,
		"tf": func(messages map[string]string, key string, args ...any) string {
			return fmt.Sprintf(translateMessage(messages, key), args...)
		},
		"isActiveRoute": isActiveRoute,
		"toJSON": func(value any) template.JS {
			serialized, _ := json.Marshal(value)
			return template.JS(serialized)
		},
	}
}

func isActiveRoute(currentPath string, route string) bool {
	path := strings.TrimSpace(currentPath)
	if path == "" {
		return route == "/"
	}
	if route == "/" {
		return path == "/" || strings.HasPrefix(path, "/?")
	}
	return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
}
